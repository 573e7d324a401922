package models

import "errors"

var (
	// ErrUnknownEdge indicates an edge name other than "start" or "end"
	ErrUnknownEdge = errors.New("edge must be start or end")

	// ErrNoSpan indicates an operation that needs both edges set on a row that lacks them
	ErrNoSpan = errors.New("task has no start/end span")
)
