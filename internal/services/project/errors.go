package project

import "errors"

// Domain errors for the editing session
var (
	// ErrNoPath is returned by Save when the session has never been saved
	// and no path was given
	ErrNoPath = errors.New("no file path for project")

	// ErrNoLibrary is returned by library operations when the session was
	// created without a project library
	ErrNoLibrary = errors.New("project library is not available")

	// ErrDurationTooLong is returned when a duration exceeds the configured maximum
	ErrDurationTooLong = errors.New("duration exceeds the configured maximum")
)
