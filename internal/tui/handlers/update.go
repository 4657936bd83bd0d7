// Package handlers implements the update half of the TUI's
// Model-View-Update loop: one dispatcher plus a handler per
// interaction mode.
package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nvelliott/flyt/internal/tui"
	"github.com/nvelliott/flyt/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and
// updates the model.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	// Start listening for broker events on the first update
	var cmd tea.Cmd
	if m.EventChan != nil && !m.SubscriptionStarted {
		m.SubscriptionStarted = true
		cmd = tui.SubscribeToEvents(m)
	}

	// The issue form needs every message, not just keys
	if m.UiState.Mode() == state.IssueFormMode {
		if formCmd := HandleFormMode(m, msg); formCmd != nil {
			return tea.Batch(cmd, formCmd)
		}
		return cmd
	}

	switch msg := msg.(type) {
	case tui.RefreshMsg:
		m.ReloadBoard()
		return tea.Batch(cmd, tui.SubscribeToEvents(m))

	case tui.DismissNotificationMsg:
		m.NotificationState.ClearIfToken(msg.Token)
		return cmd

	case tea.KeyMsg:
		return tea.Batch(cmd, HandleKeyMsg(m, msg))

	case tea.MouseClickMsg:
		return tea.Batch(cmd, HandleMousePress(m, msg))

	case tea.MouseMotionMsg:
		return tea.Batch(cmd, HandleMouseMotion(m, msg))

	case tea.MouseReleaseMsg:
		return tea.Batch(cmd, HandleMouseRelease(m, msg))

	case tea.MouseWheelMsg:
		return tea.Batch(cmd, HandleMouseWheel(m, msg))

	case tea.WindowSizeMsg:
		return tea.Batch(cmd, HandleWindowResize(m, msg))
	}

	return cmd
}

// HandleKeyMsg dispatches key messages to the appropriate mode handler.
func HandleKeyMsg(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return HandleNormalMode(m, msg)
	case state.GrabMode:
		return HandleGrabMode(m, msg)
	case state.DetailMode:
		return HandleDetailMode(m, msg)
	case state.SearchMode:
		return HandleSearchMode(m, msg)
	case state.DeleteConfirmMode:
		return HandleDeleteConfirm(m, msg)
	case state.HelpMode:
		return HandleHelpMode(m, msg)
	}
	return nil
}

// HandleWindowResize handles terminal resize events.
func HandleWindowResize(m *tui.Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	m.NotificationState.SetWindowSize(msg.Width, msg.Height)

	// Keep the selected issue on screen at the new column height
	if key := m.CurrentColumnKey(); key != "" {
		m.UiState.EnsureIssueVisible(key, m.UiState.SelectedIssue(), m.VisibleIssueCount())
	}
	return nil
}
