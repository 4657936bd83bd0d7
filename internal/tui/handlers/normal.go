package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nvelliott/flyt/internal/dnd"
	"github.com/nvelliott/flyt/internal/tui"
	"github.com/nvelliott/flyt/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// HandleNormalMode dispatches key events in NormalMode to specific handlers.
func HandleNormalMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	// A keypress dismisses notifications ahead of their timer
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return nil
	case km.AddIssue:
		return handleAddIssue(m)
	case km.EditIssue:
		return handleEditIssue(m)
	case km.DeleteIssue:
		return handleDeleteIssue(m)
	case km.ViewIssue, "enter":
		return handleViewIssue(m)
	case km.Search:
		m.UiState.SetMode(state.SearchMode)
		return nil
	case km.GrabIssue:
		return handleGrabIssue(m)
	case km.PrevColumn, "left":
		return handleNavigateLeft(m)
	case km.NextColumn, "right":
		return handleNavigateRight(m)
	case km.NextIssue, "down":
		return handleNavigateDown(m)
	case km.PrevIssue, "up":
		return handleNavigateUp(m)
	case km.MoveIssueRight:
		return moveSelectedIssue(m, 1)
	case km.MoveIssueLeft:
		return moveSelectedIssue(m, -1)
	case km.MoveIssueUp:
		return reorderSelectedIssue(m, -1)
	case km.MoveIssueDown:
		return reorderSelectedIssue(m, 1)
	case "esc":
		if m.SearchState.IsActive {
			m.SearchState.Deactivate()
			m.SearchState.Clear()
			m.ReloadBoard()
		}
		return nil
	}
	return nil
}

// handleNavigateLeft moves the selection one column left
func handleNavigateLeft(m *tui.Model) tea.Cmd {
	if m.UiState.SelectedColumn() > 0 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
		m.UiState.SetSelectedIssue(0)
	}
	return nil
}

// handleNavigateRight moves the selection one column right
func handleNavigateRight(m *tui.Model) tea.Cmd {
	if m.UiState.SelectedColumn() < len(m.Board().Keys())-1 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
		m.UiState.SetSelectedIssue(0)
	}
	return nil
}

// handleNavigateDown moves the selection one issue down
func handleNavigateDown(m *tui.Model) tea.Cmd {
	issues := m.CurrentIssues()
	if m.UiState.SelectedIssue() < len(issues)-1 {
		m.UiState.SetSelectedIssue(m.UiState.SelectedIssue() + 1)
		m.UiState.EnsureIssueVisible(m.CurrentColumnKey(), m.UiState.SelectedIssue(), m.VisibleIssueCount())
	}
	return nil
}

// handleNavigateUp moves the selection one issue up
func handleNavigateUp(m *tui.Model) tea.Cmd {
	if m.UiState.SelectedIssue() > 0 {
		m.UiState.SetSelectedIssue(m.UiState.SelectedIssue() - 1)
		m.UiState.EnsureIssueVisible(m.CurrentColumnKey(), m.UiState.SelectedIssue(), m.VisibleIssueCount())
	}
	return nil
}

// handleGrabIssue grabs the selected issue for keyboard movement.
// The grab drives the same drag controller the mouse does, so drops
// get the same validation and the same rejection handling.
func handleGrabIssue(m *tui.Model) tea.Cmd {
	issue := m.CurrentIssue()
	if issue == nil {
		m.NotificationState.Add(state.LevelError, "No issue selected to move")
		return tui.ScheduleDismiss(m)
	}
	if !m.Drag.Start(issue.ID) {
		return nil
	}
	m.Drag.Over(issue.Status)
	m.UiState.SetMode(state.GrabMode)
	return nil
}

// moveSelectedIssue moves the selected issue one column in the given
// direction as a complete grab-and-drop in one keystroke.
func moveSelectedIssue(m *tui.Model, delta int) tea.Cmd {
	issue := m.CurrentIssue()
	if issue == nil {
		return nil
	}

	keys := m.Board().Keys()
	targetIdx := m.UiState.SelectedColumn() + delta
	if targetIdx < 0 || targetIdx >= len(keys) {
		return nil
	}

	if !m.Drag.Start(issue.ID) {
		return nil
	}
	outcome := m.Drag.End(keys[targetIdx])
	return finishMove(m, outcome, targetIdx)
}

// reorderSelectedIssue swaps the selected issue with its neighbor in
// the same column. Reorders skip validation and notification.
func reorderSelectedIssue(m *tui.Model, delta int) tea.Cmd {
	issue := m.CurrentIssue()
	if issue == nil {
		return nil
	}

	issues := m.CurrentIssues()
	neighborIdx := m.UiState.SelectedIssue() + delta
	if neighborIdx < 0 || neighborIdx >= len(issues) {
		return nil
	}

	if !m.Drag.Start(issue.ID) {
		return nil
	}
	outcome := m.Drag.End(issues[neighborIdx].ID)
	if outcome.Kind == dnd.OutcomeReorder {
		m.UiState.SetSelectedIssue(neighborIdx)
		m.UiState.EnsureIssueVisible(m.CurrentColumnKey(), neighborIdx, m.VisibleIssueCount())
	}
	return nil
}

// finishMove applies the selection follow-up for a completed drop and
// arms the dismiss timer when the drop raised notifications.
func finishMove(m *tui.Model, outcome dnd.Outcome, targetIdx int) tea.Cmd {
	switch outcome.Kind {
	case dnd.OutcomeMove:
		// Selection follows the moved issue to the end of its new column
		m.UiState.SetSelectedColumn(targetIdx)
		if _, idx, ok := m.Board().Locate(outcome.IssueID); ok {
			m.UiState.SetSelectedIssue(idx)
			m.UiState.EnsureIssueVisible(outcome.TargetKey, idx, m.VisibleIssueCount())
		}
		return nil
	case dnd.OutcomeRejected:
		return tui.ScheduleDismiss(m)
	}
	return nil
}
