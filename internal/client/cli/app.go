package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/santosysantos/prodgate/internal/client/client"
	"github.com/santosysantos/prodgate/internal/client/config"
	"github.com/santosysantos/prodgate/internal/client/services"
	"github.com/santosysantos/prodgate/internal/filex"
	"github.com/santosysantos/prodgate/internal/logging"
)

// View names the screen the REPL is currently showing.
type View string

const (
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
)

// now is a test seam for the wall clock used when rendering durations.
var now = time.Now

type App struct {
	config      *config.Config
	authService services.AuthService
	db          *sql.DB
	logger      logging.Logger
	reader      *bufio.Reader
}

// NewApp opens the session database, builds the login transport for the
// configured endpoint and wraps both in an auth gate.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	loginURL, err := c.LoginURL()
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(loginURL, nil)
	if err != nil {
		return nil, err
	}

	dbPath, err := filex.EnsureParentDir(c.DatabasePath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	as := services.NewAuthService(apiClient, db, logger,
		services.WithSessionDuration(c.SessionDuration))

	logger.Debug(ctx, "client initialized", "login_url", loginURL, "database", dbPath)

	return &App{
		config:      c,
		authService: as,
		db:          db,
		logger:      logger,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run shows the view matching the current session and starts the REPL.
// Resources are released when the user leaves.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(ctx); err != nil {
			a.logger.Error(ctx, "shutdown", "error", err)
		}
	}()
	a.Root(ctx)
}

// Close releases the login transport and the session database.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.authService != nil {
		errs = append(errs, a.authService.Close(ctx))
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsLoggedIn(ctx)
}

// view polls the gate; it is the only place the current screen is decided.
func (a *App) view(ctx context.Context) View {
	if a.isLoggedIn(ctx) {
		return ViewDashboard
	}
	return ViewLogin
}
