// Package project implements the editing session shared by the command
// line and the terminal editor: one open project, its file path, and the
// save, export and library operations around it.
package project

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/tramo/internal/database"
	"github.com/thenoetrevino/tramo/internal/export"
	"github.com/thenoetrevino/tramo/internal/models"
	"github.com/thenoetrevino/tramo/internal/services/table"
	"github.com/thenoetrevino/tramo/internal/storage"
	"github.com/thenoetrevino/tramo/internal/summary"
	"github.com/thenoetrevino/tramo/internal/validation"
)

// Service defines all session operations
type Service interface {
	// Session lifecycle
	New(duration int) error
	Open(path string) error
	Save(path string) error
	ChangeDuration(duration int) error

	// Exports
	ExportCSV(path string) error
	ExportPDF(path string, includeStartEnd bool) error

	// Library
	SaveToLibrary(ctx context.Context, name string) (database.Entry, error)
	OpenFromLibrary(ctx context.Context, name string) error
	ListLibrary(ctx context.Context) ([]database.Entry, error)
	DeleteFromLibrary(ctx context.Context, name string) error

	// State
	Table() *table.Table
	Project() *models.Project
	Summary() []int
	Path() string
	Dirty() bool
}

// Options configures a Service
type Options struct {
	// MaxDuration bounds New and ChangeDuration; zero means no bound
	MaxDuration int

	// Palette colours the PDF export
	Palette export.Palette

	// CompressPDF compresses PDF streams
	CompressPDF bool
}

// service implements Service around a single table
type service struct {
	lib   database.Library
	opts  Options
	table *table.Table
	path  string
	saved *models.Project
}

// NewService creates a session holding an empty project of the given
// duration. lib may be nil, in which case library operations fail with
// ErrNoLibrary.
func NewService(lib database.Library, duration int, opts Options) (Service, error) {
	s := &service{lib: lib, opts: opts}
	if err := s.New(duration); err != nil {
		return nil, err
	}
	return s, nil
}

// New replaces the session with an empty project
func (s *service) New(duration int) error {
	if err := s.checkDuration(duration); err != nil {
		return err
	}
	t, err := table.New(duration)
	if err != nil {
		return err
	}
	s.replace(t, "")
	slog.Debug("new project", "duration", duration)
	return nil
}

// Open loads a project file. On failure the current session is kept.
func (s *service) Open(path string) error {
	p, err := storage.LoadFile(path)
	if err != nil {
		slog.Error("failed to open project", "path", path, "error", err)
		return err
	}
	t, err := table.FromProject(p)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	s.replace(t, path)
	slog.Info("opened project", "path", path, "tasks", t.Len(), "duration", t.Duration())
	return nil
}

// Save writes the project file. An empty path reuses the last one.
func (s *service) Save(path string) error {
	if path == "" {
		path = s.path
	}
	if path == "" {
		return ErrNoPath
	}

	p := s.table.Project()
	if err := storage.SaveFile(path, p); err != nil {
		slog.Error("failed to save project", "path", path, "error", err)
		return err
	}
	s.path = path
	s.saved = p
	slog.Info("saved project", "path", path, "tasks", len(p.Tasks))
	return nil
}

// ChangeDuration rebuilds the project with a new duration, clamping spans
func (s *service) ChangeDuration(duration int) error {
	if err := s.checkDuration(duration); err != nil {
		return err
	}
	next, err := s.table.Project().WithDuration(duration)
	if err != nil {
		return err
	}
	t, err := table.FromProject(next)
	if err != nil {
		return err
	}
	s.table = t
	slog.Info("changed duration", "duration", duration)
	return nil
}

// ExportCSV writes the spreadsheet export
func (s *service) ExportCSV(path string) error {
	data, err := export.CSV(s.table.Project())
	if err != nil {
		return err
	}
	if err := storage.WriteFile(path, data); err != nil {
		slog.Error("failed to export csv", "path", path, "error", err)
		return err
	}
	slog.Info("exported csv", "path", path)
	return nil
}

// ExportPDF writes the PDF chart
func (s *service) ExportPDF(path string, includeStartEnd bool) error {
	data, err := export.PDF(s.table.Project(), export.PDFOptions{
		IncludeStartEnd: includeStartEnd,
		Palette:         s.opts.Palette,
		Title:           strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Uncompressed:    !s.opts.CompressPDF,
	})
	if err != nil {
		return err
	}
	if err := storage.WriteFile(path, data); err != nil {
		slog.Error("failed to export pdf", "path", path, "error", err)
		return err
	}
	slog.Info("exported pdf", "path", path, "start_end", includeStartEnd)
	return nil
}

// SaveToLibrary stores the project under name. The session's file path
// and dirty state are unaffected.
func (s *service) SaveToLibrary(ctx context.Context, name string) (database.Entry, error) {
	if s.lib == nil {
		return database.Entry{}, ErrNoLibrary
	}
	return s.lib.SaveProject(ctx, name, s.table.Project())
}

// OpenFromLibrary replaces the session with a stored project. The session
// has no file path afterwards.
func (s *service) OpenFromLibrary(ctx context.Context, name string) error {
	if s.lib == nil {
		return ErrNoLibrary
	}
	p, err := s.lib.GetProject(ctx, name)
	if err != nil {
		return err
	}
	t, err := table.FromProject(p)
	if err != nil {
		return err
	}
	s.replace(t, "")
	slog.Info("opened project from library", "name", name)
	return nil
}

// ListLibrary returns the stored projects
func (s *service) ListLibrary(ctx context.Context) ([]database.Entry, error) {
	if s.lib == nil {
		return nil, ErrNoLibrary
	}
	return s.lib.ListProjects(ctx)
}

// DeleteFromLibrary removes a stored project
func (s *service) DeleteFromLibrary(ctx context.Context, name string) error {
	if s.lib == nil {
		return ErrNoLibrary
	}
	return s.lib.DeleteProject(ctx, name)
}

// Table returns the live table; edits made through it mark the session dirty
func (s *service) Table() *table.Table { return s.table }

// Project returns a snapshot of the current project
func (s *service) Project() *models.Project { return s.table.Project() }

// Summary returns the per-period counts of the current project
func (s *service) Summary() []int { return summary.Compute(s.table.Project()) }

// Path returns the file the project was last opened from or saved to
func (s *service) Path() string { return s.path }

// Dirty reports whether the project differs from what was last opened or saved
func (s *service) Dirty() bool {
	return !s.table.Project().Equal(s.saved)
}

func (s *service) replace(t *table.Table, path string) {
	s.table = t
	s.path = path
	s.saved = t.Project()
}

func (s *service) checkDuration(duration int) error {
	if err := validation.ValidateDuration(duration); err != nil {
		return err
	}
	if s.opts.MaxDuration > 0 && duration > s.opts.MaxDuration {
		return fmt.Errorf("%w: %d > %d", ErrDurationTooLong, duration, s.opts.MaxDuration)
	}
	return nil
}
