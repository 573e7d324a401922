// Package app wires configuration, the project library and the editing
// session together for the command line and the terminal editor.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tramo/internal/config"
	"github.com/thenoetrevino/tramo/internal/database"
	projectservice "github.com/thenoetrevino/tramo/internal/services/project"
)

// App holds all application services and provides dependency injection.
type App struct {
	Config  *config.Config
	Library database.Library

	db *sql.DB
}

// New creates an App around an already opened library database. db may be
// nil, in which case library operations are unavailable.
func New(cfg *config.Config, db *sql.DB) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{Config: cfg, db: db}
	if db != nil {
		a.Library = database.NewLibrary(db)
	}
	return a
}

// Open loads the configuration and opens the project library. A library
// that cannot be opened is logged and left unavailable rather than failing
// file-based work.
func Open(ctx context.Context, opts ...Option) (*App, error) {
	o := &appConfig{}
	for _, opt := range opts {
		opt(o)
	}

	cfg := o.config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	if o.withoutLibrary {
		return New(cfg, nil), nil
	}

	path := o.libraryPath
	if path == "" {
		defaultPath, err := database.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	db, err := database.InitDB(ctx, path)
	if err != nil {
		slog.Warn("project library unavailable", "path", path, "error", err)
		return New(cfg, nil), nil
	}
	return New(cfg, db), nil
}

// NewSession starts an editing session on an empty project. A zero
// duration uses the configured default.
func (a *App) NewSession(duration int) (projectservice.Service, error) {
	if duration == 0 {
		duration = a.Config.Project.DefaultDuration
	}

	opts := projectservice.Options{
		MaxDuration: a.Config.Project.MaxDuration,
		Palette:     a.Config.Theme.Palette(),
		CompressPDF: a.Config.Export.CompressPDFStreams(),
	}
	return projectservice.NewService(a.Library, duration, opts)
}

// OpenSession starts an editing session on the project file at path
func (a *App) OpenSession(path string) (projectservice.Service, error) {
	svc, err := a.NewSession(0)
	if err != nil {
		return nil, err
	}
	if err := svc.Open(path); err != nil {
		return nil, err
	}
	return svc, nil
}

// Close releases the library database
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
