package table

import "errors"

// Row-addressing errors
var (
	// ErrRowOutOfRange indicates an index that does not address an existing row
	ErrRowOutOfRange = errors.New("row index out of range")

	// ErrAlreadyFirstRow indicates an attempt to move the top row up
	ErrAlreadyFirstRow = errors.New("row is already at the top of the table")

	// ErrAlreadyLastRow indicates an attempt to move the bottom row down
	ErrAlreadyLastRow = errors.New("row is already at the bottom of the table")
)
