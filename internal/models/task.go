package models

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tramo/internal/validation"
)

// Task represents a single row of the plan.
// Start and End are 1-indexed periods; validation.Unset (zero) means the
// user has not supplied that edge yet.
type Task struct {
	Name        string
	Start       int
	End         int
	WorkPackage bool
}

// HasStart reports whether the start edge is set
func (t Task) HasStart() bool { return t.Start != validation.Unset }

// HasEnd reports whether the end edge is set
func (t Task) HasEnd() bool { return t.End != validation.Unset }

// HasSpan reports whether both edges are set
func (t Task) HasSpan() bool { return t.HasStart() && t.HasEnd() }

// IsBlank reports whether the row carries no data at all.
// The work-package flag alone does not make a row meaningful.
func (t Task) IsBlank() bool {
	return strings.TrimSpace(t.Name) == "" && !t.HasStart() && !t.HasEnd()
}

// NormalizeName turns carriage returns, alone or before a newline, into
// plain newlines. The project file reader folds "\r\n" inside a quoted
// field into "\n", so a name holding "\r" would not survive a save.
func NormalizeName(name string) string {
	return nameReplacer.Replace(name)
}

var nameReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Active reports whether the task occupies the given period
func (t Task) Active(period int) bool {
	return t.HasSpan() && t.Start <= period && period <= t.End
}

// Highlighted reports whether the row gets the work-package treatment.
// The editor colours, the export CSV marker and the PDF shading all go
// through this one predicate.
func (t Task) Highlighted() bool {
	return t.WorkPackage
}

// Marker returns the export CSV cell for a period: "W" or "X" when active,
// empty otherwise.
func (t Task) Marker(period int) string {
	if !t.Active(period) {
		return ""
	}
	if t.Highlighted() {
		return WorkPackageMarker
	}
	return ActiveMarker
}

// Edge names one side of a task bar
type Edge int

const (
	EdgeStart Edge = iota + 1
	EdgeEnd
)

// String returns the lowercase edge name
func (e Edge) String() string {
	switch e {
	case EdgeStart:
		return "start"
	case EdgeEnd:
		return "end"
	default:
		return fmt.Sprintf("edge(%d)", int(e))
	}
}

// ParseEdge maps "start"/"end" (case-insensitive) to an Edge
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "s":
		return EdgeStart, nil
	case "end", "e":
		return EdgeEnd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEdge, s)
	}
}
