package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tramo/internal/models"
	"github.com/thenoetrevino/tramo/internal/validation"
)

// ============================================================================
// SETUP HELPERS
// ============================================================================

// setupTestLibrary creates an in-memory library with a fixed clock
func setupTestLibrary(t *testing.T) *LibraryRepo {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewLibrary(db)
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return repo
}

func sampleProject() *models.Project {
	return &models.Project{Duration: 10, Tasks: []models.Task{
		{Name: "Design", Start: 1, End: 3},
		{Name: "Build", Start: 4, End: 8, WorkPackage: true},
		{Name: "typing", Start: 2},
		{},
	}}
}

// ============================================================================
// TESTS
// ============================================================================

func TestSaveAndGetProject(t *testing.T) {
	repo := setupTestLibrary(t)
	ctx := context.Background()

	entry, err := repo.SaveProject(ctx, "roadmap", sampleProject())
	require.NoError(t, err)

	_, err = uuid.Parse(entry.ID)
	assert.NoError(t, err, "entries are identified by uuid")
	assert.Equal(t, "roadmap", entry.Name)
	assert.Equal(t, 4, entry.TaskCount)

	got, err := repo.GetProject(ctx, "roadmap")
	require.NoError(t, err)
	assert.True(t, sampleProject().Equal(got), "got %+v", got)
	assert.Equal(t, validation.Unset, got.Tasks[2].End)
}

func TestSaveProject_ReplacesExisting(t *testing.T) {
	repo := setupTestLibrary(t)
	ctx := context.Background()

	first, err := repo.SaveProject(ctx, "roadmap", sampleProject())
	require.NoError(t, err)

	smaller := &models.Project{Duration: 4, Tasks: []models.Task{{Name: "Only", Start: 2, End: 4}}}
	second, err := repo.SaveProject(ctx, " roadmap ", smaller)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	got, err := repo.GetProject(ctx, "roadmap")
	require.NoError(t, err)
	assert.True(t, smaller.Equal(got))

	entries, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].TaskCount)
}

func TestSaveProject_Rejects(t *testing.T) {
	repo := setupTestLibrary(t)
	ctx := context.Background()

	_, err := repo.SaveProject(ctx, "  ", sampleProject())
	assert.ErrorIs(t, err, ErrEmptyName)

	bad := &models.Project{Duration: 3, Tasks: []models.Task{{Name: "x", Start: 2, End: 9}}}
	_, err = repo.SaveProject(ctx, "bad", bad)
	assert.ErrorIs(t, err, validation.ErrOutOfRange)

	entries, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetProject_NotFound(t *testing.T) {
	repo := setupTestLibrary(t)

	_, err := repo.GetProject(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestGetProject_CorruptRowsAreRejected(t *testing.T) {
	repo := setupTestLibrary(t)
	ctx := context.Background()

	entry, err := repo.SaveProject(ctx, "roadmap", sampleProject())
	require.NoError(t, err)

	_, err = repo.db.ExecContext(ctx, `UPDATE tasks SET start_period = 9, end_period = 2 WHERE project_id = ? AND position = 0`, entry.ID)
	require.NoError(t, err)

	_, err = repo.GetProject(ctx, "roadmap")
	assert.ErrorIs(t, err, ErrCorruptProject)
	assert.ErrorIs(t, err, validation.ErrInvertedSpan)
}

func TestListProjects_OrderedByName(t *testing.T) {
	repo := setupTestLibrary(t)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := repo.SaveProject(ctx, name, sampleProject())
		require.NoError(t, err)
	}

	entries, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, []string{entries[0].Name, entries[1].Name, entries[2].Name})
	assert.Equal(t, 10, entries[0].Duration)
	assert.Equal(t, 4, entries[0].TaskCount)
}

func TestDeleteProject(t *testing.T) {
	repo := setupTestLibrary(t)
	ctx := context.Background()

	entry, err := repo.SaveProject(ctx, "roadmap", sampleProject())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteProject(ctx, "roadmap"))

	var orphans int
	require.NoError(t, repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE project_id = ?`, entry.ID).Scan(&orphans))
	assert.Zero(t, orphans, "tasks are removed with their project")

	assert.ErrorIs(t, repo.DeleteProject(ctx, "roadmap"), ErrProjectNotFound)
}

func TestInitDB_PersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "library.db")

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	_, err = NewLibrary(db).SaveProject(ctx, "roadmap", sampleProject())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewLibrary(db).GetProject(ctx, "roadmap")
	require.NoError(t, err)
	assert.Len(t, got.Tasks, 4)
}
