package state

import "charm.land/huh/v2"

// FormKind identifies which dialog FormState holds
type FormKind int

const (
	NoForm FormKind = iota
	NewProjectForm
	DurationForm
	ExportForm
	QuitForm
)

// FormState holds the open huh dialog and the values its fields write to.
// The form updates these fields in place through pointers.
type FormState struct {
	Kind FormKind
	Form *huh.Form

	Duration        string
	ExportFormat    string
	ExportPath      string
	IncludeStartEnd bool
	Confirm         bool
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{}
}

// Clear closes the dialog and resets its values
func (s *FormState) Clear() {
	*s = FormState{}
}
