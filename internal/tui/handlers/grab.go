package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nvelliott/flyt/internal/tui"
	"github.com/nvelliott/flyt/internal/tui/state"
)

// ============================================================================
// GRAB MODE HANDLERS
// ============================================================================

// HandleGrabMode moves a grabbed issue with the keyboard. Left/right
// change the hovered target column (live validity shows on its
// border), enter drops, esc cancels without side effects.
func HandleGrabMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case "esc", km.Quit:
		m.Drag.Cancel()
		m.UiState.SetMode(state.NormalMode)
		return nil

	case km.PrevColumn, "left", km.MoveIssueLeft:
		hoverGrabTarget(m, -1)
		return nil

	case km.NextColumn, "right", km.MoveIssueRight:
		hoverGrabTarget(m, 1)
		return nil

	case "enter", km.GrabIssue:
		return dropGrabbedIssue(m)
	}
	return nil
}

// grabTargetIndex returns the column index the grab currently hovers:
// the hover key's column, or the dragged issue's own column before any
// movement.
func grabTargetIndex(m *tui.Model) int {
	keys := m.Board().Keys()
	hoverKey := m.Drag.Session().HoverKey
	if hoverKey == "" {
		if issue, ok := m.Board().Find(m.Drag.Session().IssueID); ok {
			hoverKey = issue.Status
		}
	}
	for i, key := range keys {
		if key == hoverKey {
			return i
		}
	}
	return m.UiState.SelectedColumn()
}

// hoverGrabTarget shifts the hovered target column by delta
func hoverGrabTarget(m *tui.Model, delta int) {
	keys := m.Board().Keys()
	if len(keys) == 0 {
		return
	}
	idx := grabTargetIndex(m) + delta
	if idx < 0 || idx >= len(keys) {
		return
	}
	m.Drag.Over(keys[idx])
}

// dropGrabbedIssue ends the grab on the hovered column
func dropGrabbedIssue(m *tui.Model) tea.Cmd {
	targetIdx := grabTargetIndex(m)
	targetKey := m.Drag.Session().HoverKey
	if targetKey == "" {
		// Never hovered away from the source column: a no-op drop
		m.Drag.Cancel()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	outcome := m.Drag.End(targetKey)
	m.UiState.SetMode(state.NormalMode)
	return finishMove(m, outcome, targetIdx)
}
