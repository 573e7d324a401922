// Package testutil provides shared helpers for tests
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tramo/internal/app"
	"github.com/thenoetrevino/tramo/internal/config"
	"github.com/thenoetrevino/tramo/internal/models"
	"github.com/thenoetrevino/tramo/internal/storage"
)

// NewTestApp creates an App with default config and an in-memory library
func NewTestApp(t *testing.T) *app.App {
	t.Helper()
	a, err := app.Open(context.Background(),
		app.WithConfig(config.Default()),
		app.WithLibraryPath(":memory:"),
	)
	require.NoError(t, err)
	require.NotNil(t, a.Library, "in-memory library should open")
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// ScenarioProject returns Design 1..3 and the Build work package 4..8
// over 10 periods
func ScenarioProject() *models.Project {
	return &models.Project{Duration: 10, Tasks: []models.Task{
		{Name: "Design", Start: 1, End: 3},
		{Name: "Build", Start: 4, End: 8, WorkPackage: true},
	}}
}

// WriteProject saves p to name inside a temp dir and returns the path
func WriteProject(t *testing.T, name string, p *models.Project) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, storage.SaveFile(path, p))
	return path
}

// ReadProject loads the project file at path
func ReadProject(t *testing.T, path string) *models.Project {
	t.Helper()
	p, err := storage.LoadFile(path)
	require.NoError(t, err)
	return p
}
