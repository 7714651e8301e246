package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/demomarket/internal/config"
	"github.com/dmitrijs2005/demomarket/internal/logging"
	"github.com/dmitrijs2005/demomarket/internal/models"
	"github.com/dmitrijs2005/demomarket/internal/passwd"
	"github.com/dmitrijs2005/demomarket/internal/services"
	"github.com/dmitrijs2005/demomarket/internal/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	market *services.Market
	reader *bufio.Reader
	out    io.Writer
	closer io.Closer
	user   *models.User
}

// NewApp opens the configured backend and prepares the services. The
// caller must eventually call Run or Close to release the backend.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	kv, closer, err := openStore(ctx, c)
	if err != nil {
		logger.Error(ctx, "error opening storage", "backend", c.Storage, "error", err)
		return nil, err
	}
	logger.Info(ctx, "storage opened", "backend", c.Storage)

	app, err := newApp(ctx, kv, c, logger)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	app.closer = closer
	return app, nil
}

func newApp(ctx context.Context, kv storage.KV, c *config.Config, logger logging.Logger) (*App, error) {
	hasher, err := passwd.New(c.PasswordHasher)
	if err != nil {
		return nil, err
	}

	market := services.NewMarket(storage.NewAdapter(kv, logger), hasher, logger)

	if c.SeedDemoData {
		if err := market.Catalog.SeedIfEmpty(ctx); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}

	a := &App{
		config: c,
		logger: logger,
		market: market,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	if err := a.refreshUser(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// Run starts the REPL and closes the backend when it returns.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.logger.Warn(ctx, "error closing storage", "error", err)
		}
	}()

	printlnFn("Welcome to demomarket (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the backend, if it holds any resources.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// refreshUser re-reads the session. The session lives in the store, so a
// login from an earlier run is picked up at startup.
func (a *App) refreshUser(ctx context.Context) error {
	u, err := a.market.Identity.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.user = u
	return nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return "guest"
	}
	return a.user.Email
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
