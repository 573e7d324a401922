package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tramo/internal/database"
	"github.com/thenoetrevino/tramo/internal/models"
	projectservice "github.com/thenoetrevino/tramo/internal/services/project"
	"github.com/thenoetrevino/tramo/internal/services/table"
	"github.com/thenoetrevino/tramo/internal/storage"
	"github.com/thenoetrevino/tramo/internal/validation"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantName string
	}{
		{name: "nil", err: nil, wantCode: ExitSuccess, wantName: ""},
		{name: "missing file", err: fmt.Errorf("open: %w", os.ErrNotExist), wantCode: ExitNotFound, wantName: "FILE_NOT_FOUND"},
		{name: "missing library project", err: database.ErrProjectNotFound, wantCode: ExitNotFound, wantName: "PROJECT_NOT_FOUND"},
		{name: "parse error", err: &storage.ParseError{Line: 3, Err: errors.New("bad")}, wantCode: ExitDataErr, wantName: "INVALID_PROJECT_DATA"},
		{name: "corrupt library project", err: database.ErrCorruptProject, wantCode: ExitDataErr, wantName: "INVALID_PROJECT_DATA"},
		{name: "row out of range", err: table.ErrRowOutOfRange, wantCode: ExitValidation, wantName: "ROW_OUT_OF_RANGE"},
		{name: "inverted span", err: validation.ErrInvertedSpan, wantCode: ExitValidation, wantName: "VALIDATION_ERROR"},
		{name: "no span", err: models.ErrNoSpan, wantCode: ExitValidation, wantName: "VALIDATION_ERROR"},
		{name: "duration too long", err: projectservice.ErrDurationTooLong, wantCode: ExitValidation, wantName: "VALIDATION_ERROR"},
		{name: "bad argument", err: ErrInvalidArgument, wantCode: ExitValidation, wantName: "VALIDATION_ERROR"},
		{name: "file exists", err: ErrFileExists, wantCode: ExitError, wantName: "FILE_EXISTS"},
		{name: "no library", err: projectservice.ErrNoLibrary, wantCode: ExitError, wantName: "LIBRARY_UNAVAILABLE"},
		{name: "other", err: errors.New("disk on fire"), wantCode: ExitError, wantName: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, name := Classify(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestFail(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Out: &out, Err: &errOut}

	err := Fail(f, fmt.Errorf("row 5: %w", table.ErrRowOutOfRange))

	var exitErr *CodedError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitValidation, exitErr.Code)
	assert.ErrorIs(t, err, table.ErrRowOutOfRange)
	assert.Contains(t, errOut.String(), "Error: row 5")
	assert.Contains(t, errOut.String(), "Suggestion: Rows are numbered from 1")
}
