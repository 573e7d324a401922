package database

import "errors"

var (
	// ErrProjectNotFound is returned when no library entry has the name
	ErrProjectNotFound = errors.New("project not found in library")

	// ErrEmptyName is returned when saving under a blank name
	ErrEmptyName = errors.New("library name cannot be empty")

	// ErrCorruptProject is returned when a stored project fails validation
	ErrCorruptProject = errors.New("stored project is invalid")
)
