package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/tramo/internal/database"
	"github.com/thenoetrevino/tramo/internal/models"
	projectservice "github.com/thenoetrevino/tramo/internal/services/project"
	"github.com/thenoetrevino/tramo/internal/services/table"
	"github.com/thenoetrevino/tramo/internal/storage"
	"github.com/thenoetrevino/tramo/internal/validation"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: I/O errors, an unavailable library, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments, unknown flags.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Missing project files and library entries.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Project files that fail to parse or hold impossible spans.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Out-of-range periods, inverted spans, bad row numbers.
	ExitValidation = 5
)

var (
	// ErrInvalidArgument marks a command argument that could not be parsed
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFileExists is returned when a command would overwrite a file
	// without --force
	ErrFileExists = errors.New("file already exists")
)

// CodedError carries the process exit code for a failed command
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }

func (e *CodedError) Unwrap() error { return e.Err }

// Classify maps an error to an exit code and a machine-readable error code
func Classify(err error) (int, string) {
	var parseErr *storage.ParseError
	switch {
	case err == nil:
		return ExitSuccess, ""
	case errors.Is(err, os.ErrNotExist):
		return ExitNotFound, "FILE_NOT_FOUND"
	case errors.Is(err, database.ErrProjectNotFound):
		return ExitNotFound, "PROJECT_NOT_FOUND"
	case errors.As(err, &parseErr), errors.Is(err, database.ErrCorruptProject):
		return ExitDataErr, "INVALID_PROJECT_DATA"
	case errors.Is(err, table.ErrRowOutOfRange):
		return ExitValidation, "ROW_OUT_OF_RANGE"
	case errors.Is(err, validation.ErrOutOfRange),
		errors.Is(err, validation.ErrInvertedSpan),
		errors.Is(err, validation.ErrInvalidDuration),
		errors.Is(err, projectservice.ErrDurationTooLong),
		errors.Is(err, models.ErrNoSpan),
		errors.Is(err, models.ErrUnknownEdge),
		errors.Is(err, table.ErrAlreadyFirstRow),
		errors.Is(err, table.ErrAlreadyLastRow),
		errors.Is(err, database.ErrEmptyName),
		errors.Is(err, ErrInvalidArgument):
		return ExitValidation, "VALIDATION_ERROR"
	case errors.Is(err, ErrFileExists):
		return ExitError, "FILE_EXISTS"
	case errors.Is(err, projectservice.ErrNoLibrary):
		return ExitError, "LIBRARY_UNAVAILABLE"
	default:
		return ExitError, "ERROR"
	}
}

// suggestion returns a hint for the error class, if there is one
func suggestion(code string) string {
	switch code {
	case "FILE_NOT_FOUND":
		return "Create a project with 'tramo project new <file>'"
	case "PROJECT_NOT_FOUND":
		return "Use 'tramo library list' to see stored projects"
	case "FILE_EXISTS":
		return "Pass --force to overwrite it"
	case "LIBRARY_UNAVAILABLE":
		return "Check that ~/.tramo is writable"
	case "ROW_OUT_OF_RANGE":
		return "Rows are numbered from 1; use 'tramo project show <file>' to see them"
	default:
		return ""
	}
}

// Fail reports err through f and returns it wrapped with its exit code
func Fail(f *OutputFormatter, err error) error {
	code, name := Classify(err)
	if fmtErr := f.ErrorWithSuggestion(name, err.Error(), suggestion(name)); fmtErr != nil {
		return fmt.Errorf("%w (while reporting: %v)", err, fmtErr)
	}
	return &CodedError{Code: code, Err: err}
}
