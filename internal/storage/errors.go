package storage

import (
	"errors"
	"fmt"
)

// Load errors. Any of them aborts the whole load.
var (
	// ErrMalformedRecord indicates a missing preamble or a row with the wrong field count
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidInteger indicates a duration, start or end that is not an integer
	ErrInvalidInteger = errors.New("invalid integer")

	// ErrInvariantViolation indicates values that parse but break the span rules
	ErrInvariantViolation = errors.New("invariant violation")
)

// ParseError locates a load failure in the input
type ParseError struct {
	Line int   // 1-based line of the offending record
	Err  error // wraps one of the sentinel errors above
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
