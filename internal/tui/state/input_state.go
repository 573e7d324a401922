package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// InputPurpose says what the inline text input edits
type InputPurpose int

const (
	// RenameInput edits the selected task's name
	RenameInput InputPurpose = iota
	// StartInput edits the selected task's start period
	StartInput
	// EndInput edits the selected task's end period
	EndInput
	// SavePathInput asks for the file to save an unnamed project to
	SavePathInput
)

// InputState manages the single-line input used for cell edits.
// For multi-field dialogs, see FormState.
type InputState struct {
	Purpose InputPurpose
	Prompt  string
	Input   textinput.Model

	// initial holds the value the input opened with, for change detection
	initial string
}

// NewInputState creates an InputState with an unfocused input
func NewInputState() *InputState {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200
	return &InputState{Input: ti}
}

// Start opens the input for purpose with value prefilled and focused
func (s *InputState) Start(purpose InputPurpose, prompt, value string) tea.Cmd {
	s.Purpose = purpose
	s.Prompt = prompt
	s.initial = value
	s.Input.SetValue(value)
	s.Input.CursorEnd()
	return s.Input.Focus()
}

// Value returns the typed text without surrounding whitespace
func (s *InputState) Value() string {
	return strings.TrimSpace(s.Input.Value())
}

// HasChanges reports whether the text differs from what the input opened with
func (s *InputState) HasChanges() bool {
	return s.Input.Value() != s.initial
}

// Clear resets and blurs the input
func (s *InputState) Clear() {
	s.Input.Reset()
	s.Input.Blur()
	s.Prompt = ""
	s.initial = ""
}
