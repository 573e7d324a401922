package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tramo/internal/cli"
	"github.com/thenoetrevino/tramo/internal/testutil"
	testutilcli "github.com/thenoetrevino/tramo/internal/testutil/cli"
)

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *cli.CodedError
	require.True(t, errors.As(err, &exitErr), "expected an exit error, got %v", err)
	return exitErr.Code
}

func TestNewCommand(t *testing.T) {
	app := testutil.NewTestApp(t)
	path := filepath.Join(t.TempDir(), "plan.csv")

	out, err := testutilcli.ExecuteCLICommand(t, app, NewCmd(), []string{path, "--duration", "12", "--quiet"})
	require.NoError(t, err, out.Stderr)
	assert.Equal(t, path+"\n", out.Stdout)

	p := testutil.ReadProject(t, path)
	assert.Equal(t, 12, p.Duration)
	assert.Empty(t, p.Tasks)

	_, err = testutilcli.ExecuteCLICommand(t, app, NewCmd(), []string{path})
	assert.ErrorIs(t, err, cli.ErrFileExists)

	_, err = testutilcli.ExecuteCLICommand(t, app, NewCmd(), []string{path, "--force"})
	require.NoError(t, err)
	assert.Equal(t, 20, testutil.ReadProject(t, path).Duration, "default duration from config")
}

func TestNewCommand_InvalidDuration(t *testing.T) {
	app := testutil.NewTestApp(t)
	path := filepath.Join(t.TempDir(), "plan.csv")

	tests := []struct {
		name     string
		duration string
	}{
		{name: "negative", duration: "-1"},
		{name: "above max", duration: "400"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := testutilcli.ExecuteCLICommand(t, app, NewCmd(), []string{path, "--duration", tt.duration})
			assert.Equal(t, cli.ExitValidation, exitCode(t, err))
			assert.Contains(t, out.Stderr, "Error:")
			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestShowCommand(t *testing.T) {
	app := testutil.NewTestApp(t)
	path := testutil.WriteProject(t, "plan.csv", testutil.ScenarioProject())

	out, err := testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{path})
	require.NoError(t, err)
	assert.Contains(t, out.Stdout, "10 periods, 2 tasks")
	assert.Contains(t, out.Stdout, "Design")
	assert.Contains(t, out.Stdout, "Build")
	assert.Contains(t, out.Stdout, "Total")
}

func TestShowCommand_JSON(t *testing.T) {
	app := testutil.NewTestApp(t)
	path := testutil.WriteProject(t, "plan.csv", testutil.ScenarioProject())

	out, err := testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{path, "--json"})
	require.NoError(t, err)

	var resp struct {
		Success bool            `json:"success"`
		Data    cli.ProjectView `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out.Stdout), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 10, resp.Data.Duration)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1, 0, 0}, resp.Data.Summary)
	assert.Equal(t, 1, resp.Data.Peak)
	require.Len(t, resp.Data.Tasks, 2)
	assert.True(t, resp.Data.Tasks[1].WorkPackage)
	require.NotNil(t, resp.Data.Tasks[1].Start)
	assert.Equal(t, 4, *resp.Data.Tasks[1].Start)
}

func TestShowCommand_Markdown(t *testing.T) {
	app := testutil.NewTestApp(t)
	path := testutil.WriteProject(t, "plan.csv", testutil.ScenarioProject())

	out, err := testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{path, "--markdown"})
	require.NoError(t, err)
	assert.Contains(t, out.Stdout, "Design")
	assert.Contains(t, out.Stdout, "Build")
}

func TestShowCommand_Errors(t *testing.T) {
	app := testutil.NewTestApp(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("duration,x\n"), 0o644))

	tests := []struct {
		name string
		path string
		code int
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.csv"), code: cli.ExitNotFound},
		{name: "malformed file", path: bad, code: cli.ExitDataErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{tt.path})
			assert.Equal(t, tt.code, exitCode(t, err))
		})
	}
}

func TestSummaryCommand(t *testing.T) {
	app := testutil.NewTestApp(t)
	p := testutil.ScenarioProject()
	p.Tasks[1].Start = 2
	path := testutil.WriteProject(t, "plan.csv", p)

	out, err := testutilcli.ExecuteCLICommand(t, app, SummaryCmd(), []string{path, "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "2\n", out.Stdout)

	out, err = testutilcli.ExecuteCLICommand(t, app, SummaryCmd(), []string{path})
	require.NoError(t, err)
	assert.Contains(t, out.Stdout, "   2: 2\n")
	assert.Contains(t, out.Stdout, "peak: 2")
}

func TestExportCommand(t *testing.T) {
	app := testutil.NewTestApp(t)
	path := testutil.WriteProject(t, "plan.csv", testutil.ScenarioProject())
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "export.csv")
	pdfPath := filepath.Join(dir, "plan.pdf")

	out, err := testutilcli.ExecuteCLICommand(t, app, ExportCmd(), []string{path, "--csv", csvPath, "--pdf", pdfPath})
	require.NoError(t, err, out.Stderr)
	assert.Contains(t, out.Stdout, "Exported")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Design,1,3,X,X,X,,,,,,,")

	data, err = os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestExportCommand_NothingToExport(t *testing.T) {
	app := testutil.NewTestApp(t)
	path := testutil.WriteProject(t, "plan.csv", testutil.ScenarioProject())

	_, err := testutilcli.ExecuteCLICommand(t, app, ExportCmd(), []string{path})
	assert.Equal(t, cli.ExitValidation, exitCode(t, err))
}

func TestDurationCommand(t *testing.T) {
	app := testutil.NewTestApp(t)
	path := testutil.WriteProject(t, "plan.csv", testutil.ScenarioProject())

	_, err := testutilcli.ExecuteCLICommand(t, app, DurationCmd(), []string{path, "6"})
	require.NoError(t, err)

	p := testutil.ReadProject(t, path)
	assert.Equal(t, 6, p.Duration)
	assert.Equal(t, 6, p.Tasks[1].End)

	_, err = testutilcli.ExecuteCLICommand(t, app, DurationCmd(), []string{path, "zero"})
	assert.Equal(t, cli.ExitValidation, exitCode(t, err))
	assert.Equal(t, 6, testutil.ReadProject(t, path).Duration)
}
