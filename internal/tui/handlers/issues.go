package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nvelliott/flyt/internal/tui"
	"github.com/nvelliott/flyt/internal/tui/state"
)

// handleAddIssue opens an empty issue form
func handleAddIssue(m *tui.Model) tea.Cmd {
	return OpenIssueForm(m, nil)
}

// handleEditIssue opens the form pre-filled with the selected issue
func handleEditIssue(m *tui.Model) tea.Cmd {
	issue := m.CurrentIssue()
	if issue == nil {
		m.NotificationState.Add(state.LevelError, "No issue selected to edit")
		return tui.ScheduleDismiss(m)
	}

	// Load the full record; the board copy may be stale
	ctx, cancel := m.DbContext()
	defer cancel()
	full, err := m.App.IssueService.GetIssue(ctx, issue.ID)
	if err != nil {
		m.HandleServiceError(err, "Loading issue")
		return tui.ScheduleDismiss(m)
	}

	return OpenIssueForm(m, full)
}

// handleDeleteIssue asks for confirmation before deleting
func handleDeleteIssue(m *tui.Model) tea.Cmd {
	if m.CurrentIssue() == nil {
		m.NotificationState.Add(state.LevelError, "No issue selected to delete")
		return tui.ScheduleDismiss(m)
	}
	m.UiState.SetMode(state.DeleteConfirmMode)
	return nil
}

// handleViewIssue opens the read-only detail view
func handleViewIssue(m *tui.Model) tea.Cmd {
	issue := m.CurrentIssue()
	if issue == nil {
		return nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	full, err := m.App.IssueService.GetIssue(ctx, issue.ID)
	if err != nil {
		m.HandleServiceError(err, "Loading issue")
		return tui.ScheduleDismiss(m)
	}

	m.DetailIssue = full
	m.UiState.SetMode(state.DetailMode)
	return nil
}

// HandleDetailMode closes the detail view on any dismissal key
func HandleDetailMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "enter", "space":
		m.DetailIssue = nil
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// HandleDeleteConfirm handles the yes/no answer of the delete dialog
func HandleDeleteConfirm(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		issue := m.CurrentIssue()
		m.UiState.SetMode(state.NormalMode)
		if issue == nil {
			return nil
		}

		ctx, cancel := m.DbContext()
		defer cancel()
		if err := m.App.IssueService.DeleteIssue(ctx, issue.ID); err != nil {
			m.HandleServiceError(err, "Deleting issue")
			return tui.ScheduleDismiss(m)
		}
		m.ReloadBoard()
		return nil

	case "n", "N", "esc", "q":
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// HandleHelpMode closes the help screen on any key
func HandleHelpMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	m.UiState.SetMode(state.NormalMode)
	return nil
}
