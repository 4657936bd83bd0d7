package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nvelliott/flyt/internal/tui"
	"github.com/nvelliott/flyt/internal/tui/state"
)

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// HandleSearchMode handles keyboard input in search mode. The board
// filters live with every keystroke.
func HandleSearchMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		// Keep the filter and return to normal navigation
		m.SearchState.Activate()
		m.UiState.SetMode(state.NormalMode)
		return nil

	case "esc":
		m.SearchState.Clear()
		m.SearchState.Deactivate()
		m.UiState.SetMode(state.NormalMode)
		m.ReloadBoard()
		return nil

	case "backspace", "ctrl+h":
		if m.SearchState.Backspace() {
			executeSearch(m)
		}
		return nil

	default:
		key := msg.String()
		if len(key) == 1 {
			if m.SearchState.AppendChar(rune(key[0])) {
				executeSearch(m)
			}
		}
		return nil
	}
}

// executeSearch reloads the board with the live query applied
func executeSearch(m *tui.Model) {
	m.SearchState.Activate()
	m.ReloadBoard()
	m.UiState.SetSelectedIssue(0)
}
