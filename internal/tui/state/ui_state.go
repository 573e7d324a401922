package state

// Mode represents the editor's current interaction mode
type Mode int

const (
	// NormalMode is grid navigation and single-key commands
	NormalMode Mode = iota
	// InputMode is inline text entry for a cell or a file path
	InputMode
	// FormMode shows one of the huh dialogs
	FormMode
	// HelpMode shows the key reference
	HelpMode
)

// String returns the mode name shown in the status bar
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case InputMode:
		return "INPUT"
	case FormMode:
		return "FORM"
	case HelpMode:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// UIState manages the user interface state: the current mode, the window
// size, the selected row and the vertical scroll position of the grid.
type UIState struct {
	mode           Mode
	width          int
	height         int
	selectedRow    int
	viewportOffset int
	periodOffset   int
}

// NewUIState creates a new UIState in NormalMode
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Mode returns the current mode
func (s *UIState) Mode() Mode { return s.mode }

// SetMode switches the current mode
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

// Width returns the terminal width
func (s *UIState) Width() int { return s.width }

// Height returns the terminal height
func (s *UIState) Height() int { return s.height }

// SetWindowSize records the terminal dimensions
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// SelectedRow returns the index of the selected row
func (s *UIState) SelectedRow() int { return s.selectedRow }

// SetSelectedRow moves the selection; negative values select row 0
func (s *UIState) SetSelectedRow(row int) {
	s.selectedRow = max(row, 0)
}

// ViewportOffset returns the first visible row
func (s *UIState) ViewportOffset() int { return s.viewportOffset }

// ClampSelection keeps the selection inside a table of rows rows
func (s *UIState) ClampSelection(rows int) {
	if s.selectedRow >= rows {
		s.selectedRow = max(rows-1, 0)
	}
}

// EnsureRowVisible scrolls the grid so the selected row falls inside a
// window of visible rows
func (s *UIState) EnsureRowVisible(visible int) {
	visible = max(visible, 1)
	if s.selectedRow < s.viewportOffset {
		s.viewportOffset = s.selectedRow
	}
	if s.selectedRow >= s.viewportOffset+visible {
		s.viewportOffset = s.selectedRow - visible + 1
	}
	s.viewportOffset = max(s.viewportOffset, 0)
}

// PeriodOffset returns the number of periods scrolled off the left edge
func (s *UIState) PeriodOffset() int { return s.periodOffset }

// ScrollPeriods moves the period window by delta, keeping visible periods
// of a duration-long project on screen
func (s *UIState) ScrollPeriods(delta, duration, visible int) {
	limit := max(duration-visible, 0)
	s.periodOffset = min(max(s.periodOffset+delta, 0), limit)
}
