// Package client holds the CLI application core: configuration, the HTTP
// client talking to the Catalog Service, and the context plumbing used by
// cobra commands.
package client

import (
	"context"
	"errors"

	"librarydesk/internal/app/client/config"

	"golang.org/x/exp/slog"
)

// App bundles everything a command needs to talk to the service.
type App struct {
	Config *config.Config
	HTTP   *HTTPClient
	Log    *slog.Logger
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	return &App{
		Config: cfg,
		HTTP:   NewHTTPClient(cfg, log),
		Log:    log,
	}, nil
}

type ctxKey struct{}

// NewContext attaches the app to a context for cobra commands.
func NewContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, app)
}

// FromContext retrieves the app installed by the root command.
func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(ctxKey{}).(*App)
	if !ok || app == nil {
		return nil, errors.New("application is not initialized")
	}
	return app, nil
}
