package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// loginPrompt is printed when a protected command runs without a session,
// standing in for the dashboard's redirect to the login page.
const loginPrompt = "Please login first (type 'login')"

func (a *App) getStatus() string {
	if email, ok := a.service.CurrentUser(); ok {
		return fmt.Sprintf("(%s)", email)
	}
	return ""
}

// Root runs the read–eval–print loop. Commands other than help, login and
// exit require an authenticated session. The loop exits on EOF or when the
// user types "exit"/"quit".
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "lendboard admin console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "lendboard %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "login":
			a.Login(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			if !a.isLoggedIn() {
				fmt.Fprintln(a.out, loginPrompt)
				continue
			}
			a.dispatch(ctx, cmd, args)
		}
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "u", "users":
		a.Users(ctx, args)

	case "show":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: show <id>")
			return
		}
		a.Show(ctx, args[0])

	case "stats":
		a.Stats(ctx)

	case "orgs":
		a.Orgs(ctx)

	case "activate":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: activate <id>")
			return
		}
		a.SetStatus(ctx, args[0], "active")

	case "blacklist":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: blacklist <id>")
			return
		}
		a.SetStatus(ctx, args[0], "blacklisted")

	case "logout":
		a.Logout(ctx)

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: (u)sers [org= user= email= phone= status= date= page= per=], show <id>, stats, orgs, activate <id>, blacklist <id>, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, exit")
	}
}
