package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAt_WritesToFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
	t.Setenv(LevelEnv, "info")

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := InitAt(dir)
	require.NoError(t, err)

	slog.Debug("hidden")
	slog.Info("saved project", "path", "plan.csv")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "tramo.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `msg="saved project" path=plan.csv`)
	assert.NotContains(t, string(data), "hidden")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelDebug,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}
