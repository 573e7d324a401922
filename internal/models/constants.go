package models

// ============================================================================
// DURATION CONSTANTS
// ============================================================================

// DefaultDuration is the period count offered for a new project
const DefaultDuration = 20

// MaxDuration bounds the duration accepted by the interactive dialogs
const MaxDuration = 365

// ============================================================================
// EXPORT MARKERS
// ============================================================================

// Period markers used by the export CSV
const (
	ActiveMarker      = "X"
	WorkPackageMarker = "W"
)
