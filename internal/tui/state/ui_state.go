package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	GrabMode                      // An issue is grabbed and moved with the keyboard
	IssueFormMode                 // Full issue form with huh
	DetailMode                    // Read-only issue detail with rendered markdown
	SearchMode                    // Vim-style search mode (/)
	DeleteConfirmMode             // Confirming issue deletion
	HelpMode                      // Displaying help screen
)

// UIState manages the user interface state.
// This includes navigation (column/issue selection), terminal dimensions,
// per-column scrolling, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedIssue is the index of the currently selected issue within the selected column
	selectedIssue int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// scrollOffsets tracks the vertical scroll offset for each column.
	// Key: status key, Value: index of first visible issue
	scrollOffsets map[string]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:          NormalMode,
		scrollOffsets: make(map[string]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedIssue returns the index of the currently selected issue.
func (s *UIState) SelectedIssue() int {
	return s.selectedIssue
}

// SetSelectedIssue updates the selected issue index.
func (s *UIState) SetSelectedIssue(index int) {
	s.selectedIssue = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ScrollOffset returns the vertical scroll offset for a column.
func (s *UIState) ScrollOffset(statusKey string) int {
	return s.scrollOffsets[statusKey]
}

// SetScrollOffset updates the vertical scroll offset for a column.
func (s *UIState) SetScrollOffset(statusKey string, offset int) {
	if offset < 0 {
		offset = 0
	}
	s.scrollOffsets[statusKey] = offset
}

// ResetSelection resets column and issue selection to the origin.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedIssue = 0
}

// ClampSelection keeps the selection within the given column and issue
// counts after the board changed under it.
func (s *UIState) ClampSelection(columnCount, issueCount int) {
	if s.selectedColumn >= columnCount {
		s.selectedColumn = max(columnCount-1, 0)
	}
	if s.selectedIssue >= issueCount {
		s.selectedIssue = max(issueCount-1, 0)
	}
}

// EnsureIssueVisible adjusts a column's scroll offset so the issue at
// the given index is inside the window of visibleCount issues.
func (s *UIState) EnsureIssueVisible(statusKey string, index, visibleCount int) {
	if visibleCount <= 0 {
		return
	}
	offset := s.scrollOffsets[statusKey]
	if index < offset {
		s.scrollOffsets[statusKey] = index
	} else if index >= offset+visibleCount {
		s.scrollOffsets[statusKey] = index - visibleCount + 1
	}
}
