// Package render implements the view half of the TUI's
// Model-View-Update loop: the board, the modal layers, and the
// floating notification banners composed onto one canvas.
package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nvelliott/flyt/internal/tui"
	"github.com/nvelliott/flyt/internal/tui/notifications"
	"github.com/nvelliott/flyt/internal/tui/state"
)

// View is the main view dispatcher that renders the current state of
// the application.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true
	// Cell-motion reporting delivers the move events the drag gesture
	// tracks while the button is held
	view.MouseMode = tea.MouseModeCellMotion

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// The board is always the base layer; modals float above it
	boardLayers := []*lipgloss.Layer{
		lipgloss.NewLayer(ViewBoard(m)),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.IssueFormMode:
		modalLayer = RenderIssueFormLayer(m)
	case state.DetailMode:
		modalLayer = RenderDetailLayer(m)
	case state.DeleteConfirmMode:
		modalLayer = RenderDeleteConfirmLayer(m)
	case state.HelpMode:
		modalLayer = RenderHelpLayer(m)
	}
	if modalLayer != nil {
		boardLayers = append(boardLayers, modalLayer)
	}

	// Notifications float over everything in the top-right corner
	boardLayers = append(boardLayers,
		m.NotificationState.GetLayers(notifications.RenderFromState)...)

	canvas := lipgloss.NewCanvas(boardLayers...)
	view.Content = canvas.Render()
	return view
}
