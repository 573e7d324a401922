package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tramo/internal/app"
	"github.com/thenoetrevino/tramo/internal/logging"
	projectservice "github.com/thenoetrevino/tramo/internal/services/project"
	"github.com/thenoetrevino/tramo/internal/tui/core"
	"github.com/thenoetrevino/tramo/internal/tui/theme"
)

// Launch starts the terminal editor, on the project file at path when it
// is not empty and on a new project otherwise
func Launch(path string) error {
	// Initialize logging to file before anything else
	closer, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	application, err := app.Open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing project library", "error", err)
		}
	}()

	var session projectservice.Service
	if path != "" {
		session, err = application.OpenSession(path)
	} else {
		session, err = application.NewSession(0)
	}
	if err != nil {
		return err
	}

	theme.Init(application.Config.Theme)

	slog.Info("starting editor", "file", path, "periods", session.Project().Duration)
	p := tea.NewProgram(core.New(ctx, session, application.Config), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
