package cli

import (
	"context"
	"fmt"

	"github.com/kehindeadewusi/lendboard/internal/query"
)

// genericError is shown when a facade call fails unexpectedly; details go
// to the log, not the screen.
const genericError = "Something went wrong, please try again."

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	res, err := a.service.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, genericError)
		return
	}
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return
	}
	fmt.Fprintf(a.out, "Welcome, %s\n", email)
}

func (a *App) Logout(ctx context.Context) {
	if err := a.service.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, genericError)
		return
	}
	fmt.Fprintln(a.out, "Logged out")
}

// Users renders one page of the (optionally filtered) user table. The
// facade returns the full collection; filtering and pagination happen
// client-side in the query engine, exactly like the dashboard view.
func (a *App) Users(ctx context.Context, args []string) {
	q, err := parseListArgs(args)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	users, err := a.service.GetUsers(ctx)
	if err != nil {
		fmt.Fprintln(a.out, genericError)
		return
	}

	filtered := query.Filter(users, q.filter)
	if len(filtered) == 0 {
		fmt.Fprintln(a.out, "No users found")
		return
	}

	page := query.Paginate(filtered, q.page, q.perPage)
	a.renderUsers(page, q, len(filtered))
}

func (a *App) Show(ctx context.Context, id string) {
	u, ok, err := a.service.GetUserByID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, genericError)
		return
	}
	if !ok {
		fmt.Fprintf(a.out, "No user with id %s\n", id)
		return
	}
	a.renderUserDetails(u)
}

func (a *App) Stats(ctx context.Context) {
	stats, err := a.service.GetDashboardStats(ctx)
	if err != nil {
		fmt.Fprintln(a.out, genericError)
		return
	}
	a.renderStats(stats)
}

// Orgs prints the distinct organizations in the collection, the values the
// organization filter accepts.
func (a *App) Orgs(ctx context.Context) {
	users, err := a.service.GetUsers(ctx)
	if err != nil {
		fmt.Fprintln(a.out, genericError)
		return
	}
	for _, org := range query.Organizations(users) {
		fmt.Fprintln(a.out, org)
	}
}

// SetStatus flips a user's status, backing the activate and blacklist
// actions of the table's action menu.
func (a *App) SetStatus(ctx context.Context, id, status string) {
	u, ok, err := a.service.GetUserByID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, genericError)
		return
	}
	if !ok {
		fmt.Fprintf(a.out, "No user with id %s\n", id)
		return
	}

	u.Status = statusFromString(status)
	updated, err := a.service.UpdateUser(ctx, *u)
	if err != nil {
		fmt.Fprintln(a.out, genericError)
		return
	}
	if !updated {
		fmt.Fprintf(a.out, "No user with id %s\n", id)
		return
	}
	fmt.Fprintf(a.out, "User %s is now %s\n", id, status)
}
