// Package devauth runs a local stand-in for the production login API so the
// prodgate client can be exercised end to end. It serves the same form-post
// contract on /user/login and adds /user/register for creating accounts.
package devauth

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/santosysantos/prodgate/internal/devauth/config"
	"github.com/santosysantos/prodgate/internal/devauth/httpapi"
	"github.com/santosysantos/prodgate/internal/devauth/users"
	"github.com/santosysantos/prodgate/internal/logging"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	us := users.NewService(users.NewMemoryRepository(), c.BcryptCost)

	if c.SeedFile != "" {
		n, err := us.Seed(ctx, c.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("seed init error: %w", err)
		}
		logger.Info(ctx, "Seeded users", "count", n, "file", c.SeedFile)
	}

	return &App{config: c, logger: logger, userService: us}, nil
}

// initSignalHandler cancels on SIGINT/SIGTERM. The returned stop releases
// the signal subscription and its goroutine.
func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()

	return func() {
		signal.Stop(sigs)
		cancelFunc()
		<-done
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	h := httpapi.NewHandler(app.userService, app.logger, app.config.SecretKey, app.config.TokenValidityDuration)
	s := httpapi.NewServer(app.config.EndpointAddr, h.Routes(), app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, SIGINT/SIGTERM arrives or the listener
// fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	stopSignals := app.initSignalHandler(ctx, cancelFunc)
	defer stopSignals()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
