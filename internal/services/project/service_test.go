package project

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tramo/internal/database"
	"github.com/thenoetrevino/tramo/internal/storage"
	"github.com/thenoetrevino/tramo/internal/validation"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupService creates a session backed by an in-memory library
func setupService(t *testing.T, duration int) Service {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc, err := NewService(database.NewLibrary(db), duration, Options{MaxDuration: 365, CompressPDF: true})
	require.NoError(t, err)
	return svc
}

// fillScenario enters Design 1..3 and the Build work package 4..8
func fillScenario(t *testing.T, svc Service) {
	t.Helper()
	tbl := svc.Table()

	i, err := tbl.InsertBlankAfter(-1)
	require.NoError(t, err)
	require.NoError(t, tbl.SetName(i, "Design"))
	require.NoError(t, tbl.SetSpan(i, 1, 3))

	i, err = tbl.InsertBlankAfter(i)
	require.NoError(t, err)
	require.NoError(t, tbl.SetName(i, "Build"))
	require.NoError(t, tbl.SetSpan(i, 4, 8))
	require.NoError(t, tbl.ToggleWorkPackage(i))
}

// ============================================================================
// SESSION TESTS
// ============================================================================

func TestNewService(t *testing.T) {
	svc := setupService(t, 10)

	assert.Equal(t, 10, svc.Table().Duration())
	assert.Zero(t, svc.Table().Len())
	assert.Empty(t, svc.Path())
	assert.False(t, svc.Dirty())
	assert.Equal(t, make([]int, 10), svc.Summary())
}

func TestNewService_InvalidDuration(t *testing.T) {
	_, err := NewService(nil, 0, Options{})
	assert.ErrorIs(t, err, validation.ErrInvalidDuration)

	_, err = NewService(nil, 400, Options{MaxDuration: 365})
	assert.ErrorIs(t, err, ErrDurationTooLong)
}

func TestEditsMarkDirtyAndSaveClears(t *testing.T) {
	svc := setupService(t, 10)
	fillScenario(t, svc)
	assert.True(t, svc.Dirty())

	path := filepath.Join(t.TempDir(), "plan.csv")
	require.NoError(t, svc.Save(path))
	assert.False(t, svc.Dirty())
	assert.Equal(t, path, svc.Path())

	require.NoError(t, svc.Table().SetName(0, "Research"))
	assert.True(t, svc.Dirty())

	require.NoError(t, svc.Save(""), "empty path reuses the last one")
	assert.False(t, svc.Dirty())

	loaded, err := storage.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Research", loaded.Tasks[0].Name)
}

func TestSave_WithoutPath(t *testing.T) {
	svc := setupService(t, 5)
	assert.ErrorIs(t, svc.Save(""), ErrNoPath)
}

func TestOpen_RoundTrip(t *testing.T) {
	svc := setupService(t, 10)
	fillScenario(t, svc)
	path := filepath.Join(t.TempDir(), "plan.csv")
	require.NoError(t, svc.Save(path))

	other := setupService(t, 3)
	require.NoError(t, other.Open(path))

	assert.True(t, svc.Project().Equal(other.Project()))
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1, 0, 0}, other.Summary())
	assert.False(t, other.Dirty())
	assert.Equal(t, path, other.Path())
}

func TestOpen_FailureKeepsSession(t *testing.T) {
	svc := setupService(t, 10)
	fillScenario(t, svc)
	before := svc.Project()
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("duration,5\nname,start,end,is_work_package\nx,4,9,0\n"), 0o644))

	assert.Error(t, svc.Open(filepath.Join(dir, "missing.csv")))
	err := svc.Open(bad)
	assert.ErrorIs(t, err, storage.ErrInvariantViolation)

	assert.True(t, before.Equal(svc.Project()))
	assert.Empty(t, svc.Path())
}

func TestChangeDuration(t *testing.T) {
	svc := setupService(t, 10)
	fillScenario(t, svc)

	require.NoError(t, svc.ChangeDuration(6))
	assert.Equal(t, 6, svc.Table().Duration())
	build, err := svc.Table().Task(1)
	require.NoError(t, err)
	assert.Equal(t, 4, build.Start)
	assert.Equal(t, 6, build.End)

	assert.ErrorIs(t, svc.ChangeDuration(0), validation.ErrInvalidDuration)
	assert.ErrorIs(t, svc.ChangeDuration(366), ErrDurationTooLong)
	assert.Equal(t, 6, svc.Table().Duration())
}

// ============================================================================
// EXPORT TESTS
// ============================================================================

func TestExportCSV(t *testing.T) {
	svc := setupService(t, 10)
	fillScenario(t, svc)
	path := filepath.Join(t.TempDir(), "out", "plan-export.csv")

	require.NoError(t, svc.ExportCSV(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Build,4,8,,,,W,W,W,W,W,,")
	assert.True(t, svc.Dirty(), "exports do not count as saving")
}

func TestExportPDF(t *testing.T) {
	svc := setupService(t, 10)
	fillScenario(t, svc)
	path := filepath.Join(t.TempDir(), "plan.pdf")

	require.NoError(t, svc.ExportPDF(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

// ============================================================================
// LIBRARY TESTS
// ============================================================================

func TestLibraryRoundTrip(t *testing.T) {
	svc := setupService(t, 10)
	fillScenario(t, svc)
	ctx := context.Background()

	entry, err := svc.SaveToLibrary(ctx, "roadmap")
	require.NoError(t, err)
	assert.Equal(t, 2, entry.TaskCount)
	assert.True(t, svc.Dirty(), "library saves leave the file state alone")

	require.NoError(t, svc.New(4))
	require.NoError(t, svc.OpenFromLibrary(ctx, "roadmap"))
	assert.Equal(t, 10, svc.Table().Duration())
	assert.Equal(t, 2, svc.Table().Len())
	assert.Empty(t, svc.Path())

	entries, err := svc.ListLibrary(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, svc.DeleteFromLibrary(ctx, "roadmap"))
	assert.ErrorIs(t, svc.OpenFromLibrary(ctx, "roadmap"), database.ErrProjectNotFound)
	assert.Equal(t, 2, svc.Table().Len(), "failed open keeps the session")
}

func TestLibrary_Unavailable(t *testing.T) {
	svc, err := NewService(nil, 5, Options{})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.SaveToLibrary(ctx, "x")
	assert.ErrorIs(t, err, ErrNoLibrary)
	assert.ErrorIs(t, svc.OpenFromLibrary(ctx, "x"), ErrNoLibrary)
	_, err = svc.ListLibrary(ctx)
	assert.ErrorIs(t, err, ErrNoLibrary)
	assert.ErrorIs(t, svc.DeleteFromLibrary(ctx, "x"), ErrNoLibrary)
}

func TestProjectIsSnapshot(t *testing.T) {
	svc := setupService(t, 10)
	fillScenario(t, svc)

	p := svc.Project()
	p.Tasks[0].Name = "mutated"

	task, err := svc.Table().Task(0)
	require.NoError(t, err)
	assert.Equal(t, "Design", task.Name)
}
