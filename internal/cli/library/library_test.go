package library

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tramo/internal/app"
	"github.com/thenoetrevino/tramo/internal/cli"
	"github.com/thenoetrevino/tramo/internal/config"
	"github.com/thenoetrevino/tramo/internal/testutil"
	testutilcli "github.com/thenoetrevino/tramo/internal/testutil/cli"
)

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *cli.CodedError
	require.True(t, errors.As(err, &exitErr), "expected an exit error, got %v", err)
	return exitErr.Code
}

func TestSaveAndOpen(t *testing.T) {
	a := testutil.NewTestApp(t)
	src := testutil.WriteProject(t, "plan.csv", testutil.ScenarioProject())

	out, err := testutilcli.ExecuteCLICommand(t, a, SaveCmd(), []string{src, "Roadmap"})
	require.NoError(t, err, out.Stderr)
	assert.Contains(t, out.Stdout, `Saved "Roadmap"`)

	dst := filepath.Join(t.TempDir(), "copy.csv")
	out, err = testutilcli.ExecuteCLICommand(t, a, OpenCmd(), []string{"Roadmap", dst, "--quiet"})
	require.NoError(t, err, out.Stderr)
	assert.Equal(t, dst+"\n", out.Stdout)
	assert.True(t, testutil.ScenarioProject().Equal(testutil.ReadProject(t, dst)))
}

func TestOpen_RefusesToOverwrite(t *testing.T) {
	a := testutil.NewTestApp(t)
	src := testutil.WriteProject(t, "plan.csv", testutil.ScenarioProject())
	_, err := testutilcli.ExecuteCLICommand(t, a, SaveCmd(), []string{src, "Roadmap"})
	require.NoError(t, err)

	_, err = testutilcli.ExecuteCLICommand(t, a, OpenCmd(), []string{"Roadmap", src})
	assert.ErrorIs(t, err, cli.ErrFileExists)

	_, err = testutilcli.ExecuteCLICommand(t, a, OpenCmd(), []string{"Roadmap", src, "--force"})
	assert.NoError(t, err)
}

func TestOpen_NotFound(t *testing.T) {
	a := testutil.NewTestApp(t)
	dst := filepath.Join(t.TempDir(), "copy.csv")

	out, err := testutilcli.ExecuteCLICommand(t, a, OpenCmd(), []string{"Missing", dst, "--json"})
	assert.Equal(t, cli.ExitNotFound, exitCode(t, err))
	assert.NoFileExists(t, dst)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out.Stdout), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "PROJECT_NOT_FOUND", resp.Error.Code)
}

func TestSave_EmptyName(t *testing.T) {
	a := testutil.NewTestApp(t)
	src := testutil.WriteProject(t, "plan.csv", testutil.ScenarioProject())

	_, err := testutilcli.ExecuteCLICommand(t, a, SaveCmd(), []string{src, "  "})
	assert.Equal(t, cli.ExitValidation, exitCode(t, err))
}

func TestListAndDelete(t *testing.T) {
	a := testutil.NewTestApp(t)
	src := testutil.WriteProject(t, "plan.csv", testutil.ScenarioProject())
	for _, name := range []string{"Beta", "Alpha"} {
		_, err := testutilcli.ExecuteCLICommand(t, a, SaveCmd(), []string{src, name})
		require.NoError(t, err)
	}

	out, err := testutilcli.ExecuteCLICommand(t, a, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	var resp struct {
		Data []EntryView `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out.Stdout), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Alpha", resp.Data[0].Name)
	assert.Equal(t, 10, resp.Data[0].Duration)
	assert.Equal(t, 2, resp.Data[0].TaskCount)

	_, err = testutilcli.ExecuteCLICommand(t, a, DeleteCmd(), []string{"Alpha"})
	require.NoError(t, err)

	out, err = testutilcli.ExecuteCLICommand(t, a, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "Beta\n", out.Stdout)

	_, err = testutilcli.ExecuteCLICommand(t, a, DeleteCmd(), []string{"Alpha"})
	assert.Equal(t, cli.ExitNotFound, exitCode(t, err))
}

func TestList_Empty(t *testing.T) {
	a := testutil.NewTestApp(t)

	out, err := testutilcli.ExecuteCLICommand(t, a, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, out.Stdout, "No projects in the library")
}

func TestLibraryUnavailable(t *testing.T) {
	a, err := app.Open(context.Background(), app.WithConfig(config.Default()), app.WithoutLibrary())
	require.NoError(t, err)

	out, err := testutilcli.ExecuteCLICommand(t, a, ListCmd(), nil)
	assert.Equal(t, cli.ExitError, exitCode(t, err))
	assert.Contains(t, out.Stderr, "Suggestion:")
}
