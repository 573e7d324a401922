package validation

import "errors"

// Span validation errors. They are returned wrapped with the offending values,
// so callers should match them with errors.Is.
var (
	// ErrOutOfRange indicates a period before 1 or after the project duration
	ErrOutOfRange = errors.New("period out of range")

	// ErrInvertedSpan indicates a start period that comes after the end period
	ErrInvertedSpan = errors.New("start is after end")

	// ErrInvalidDuration indicates a project duration below one period
	ErrInvalidDuration = errors.New("duration must be at least 1 period")
)
