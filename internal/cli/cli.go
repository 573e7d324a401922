// Package cli holds what the tramo subcommands share: the application
// context, output formatting and exit code mapping.
package cli

import (
	"context"

	"github.com/thenoetrevino/tramo/internal/app"
)

type appKey struct{}

// WithApp returns a context carrying a, which NewCLI uses instead of
// opening the user's configuration and library
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// CLI represents the CLI application context
type CLI struct {
	App   *app.App
	owned bool
}

// NewCLI returns the application from ctx, or opens it
func NewCLI(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	a, err := app.Open(ctx)
	if err != nil {
		return nil, err
	}
	return &CLI{App: a, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
