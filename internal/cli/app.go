// Package cli is the presentation boundary of lendboard: a small REPL that
// renders the user table, the detail view and the dashboard cards on top of
// the data access facade. All data and auth operations go through
// api.Service; this package only parses input and formats output.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/kehindeadewusi/lendboard/internal/api"
	"github.com/kehindeadewusi/lendboard/internal/config"
	"github.com/kehindeadewusi/lendboard/internal/logging"
	"github.com/kehindeadewusi/lendboard/internal/storage"

	_ "modernc.org/sqlite"
)

// defaultPerPage is the page size the users table starts with.
const defaultPerPage = 10

type App struct {
	config  *config.Config
	service api.Service
	store   storage.Store
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store, err := storage.Open(ctx, cfg.DatabasePath, log)
	if err != nil {
		return nil, err
	}

	svc := api.New(store, log,
		api.WithSeedCount(cfg.SeedCount),
		api.WithLatency(cfg.SimulatedLatency),
		api.WithSigningSecret([]byte(cfg.TokenSecret)),
	)

	return &App{
		config:  cfg,
		service: svc,
		store:   store,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

// isLoggedIn is the route guard predicate: commands that render protected
// views check it before running.
func (a *App) isLoggedIn() bool {
	return a.service.IsAuthenticated()
}
