package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tramo/internal/services/table"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{in: "1", want: 0},
		{in: " 12 ", want: 11},
		{in: "0", wantErr: table.ErrRowOutOfRange},
		{in: "-3", wantErr: table.ErrRowOutOfRange},
		{in: "two", wantErr: ErrInvalidArgument},
		{in: "", wantErr: ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRow(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt("delta", "-2")
	require.NoError(t, err)
	assert.Equal(t, -2, n)

	_, err = ParseInt("delta", "2.5")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "delta")
}

func TestCheckOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.csv")
	assert.NoError(t, CheckOverwrite(path, false))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.ErrorIs(t, CheckOverwrite(path, false), ErrFileExists)
	assert.NoError(t, CheckOverwrite(path, true))
}
