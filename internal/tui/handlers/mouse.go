package handlers

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nvelliott/flyt/internal/tui"
	"github.com/nvelliott/flyt/internal/tui/state"
)

// ============================================================================
// MOUSE HANDLERS
// ============================================================================
//
// A press is not a drag yet. The gesture becomes a drag once the cursor
// travels the configured distance while the button is held; a release
// before that, inside the click duration, is a plain click that only
// selects. This keeps sloppy clicks from moving issues.

// HandleMousePress records the start of a mouse gesture and moves the
// selection to the pressed cell.
func HandleMousePress(m *tui.Model, msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button != tea.MouseLeft {
		return nil
	}
	if m.UiState.Mode() != state.NormalMode {
		return nil
	}

	m.NotificationState.Clear()

	hit, ok := m.HitTest(msg.X, msg.Y)
	if !ok {
		return nil
	}

	m.MouseState.Press(msg.X, msg.Y, hit.IssueID, time.Now())
	return nil
}

// HandleMouseMotion promotes a held press to a drag once it crosses the
// movement threshold and updates the hovered drop target while dragging.
func HandleMouseMotion(m *tui.Model, msg tea.MouseMotionMsg) tea.Cmd {
	if !m.MouseState.Pressed {
		return nil
	}

	m.MouseState.Track(msg.X, msg.Y)

	if !m.Drag.Dragging() {
		if m.MouseState.PressedIssueID == "" {
			return nil
		}
		if m.MouseState.MovedCells < m.Thresholds.MinDragCells {
			return nil
		}
		if !m.Drag.Start(m.MouseState.PressedIssueID) {
			return nil
		}
	}

	if target := m.DropTargetAt(msg.X, msg.Y); target != "" {
		m.Drag.Over(target)
	}
	return nil
}

// HandleMouseRelease finishes the gesture: drops an active drag, or
// treats a short still press as the click it was.
func HandleMouseRelease(m *tui.Model, msg tea.MouseReleaseMsg) tea.Cmd {
	if !m.MouseState.Pressed {
		return nil
	}

	held := m.MouseState.Held(time.Now())
	moved := m.MouseState.MovedCells
	m.MouseState.Release()

	if m.Drag.Dragging() {
		target := m.DropTargetAt(msg.X, msg.Y)
		targetIdx := m.UiState.SelectedColumn()
		if hit, ok := m.HitTest(msg.X, msg.Y); ok {
			targetIdx = hit.ColumnIndex
		}
		outcome := m.Drag.End(target)
		return finishMove(m, outcome, targetIdx)
	}

	// A short, still press is a click: move the selection there
	if m.Thresholds.IsClick(moved, held) {
		if hit, ok := m.HitTest(msg.X, msg.Y); ok {
			m.UiState.SetSelectedColumn(hit.ColumnIndex)
			if hit.IssueIndex >= 0 {
				m.UiState.SetSelectedIssue(hit.IssueIndex)
			} else {
				m.UiState.SetSelectedIssue(0)
			}
			m.ClampSelection()
		}
	}
	return nil
}

// HandleMouseWheel scrolls the hovered column
func HandleMouseWheel(m *tui.Model, msg tea.MouseWheelMsg) tea.Cmd {
	if m.UiState.Mode() != state.NormalMode {
		return nil
	}

	hit, ok := m.HitTest(msg.X, msg.Y)
	if !ok {
		return nil
	}

	offset := m.UiState.ScrollOffset(hit.ColumnKey)
	issueCount := len(m.Board().Column(hit.ColumnKey))
	maxOffset := max(issueCount-m.VisibleIssueCount(), 0)

	switch msg.Button {
	case tea.MouseWheelUp:
		m.UiState.SetScrollOffset(hit.ColumnKey, offset-1)
	case tea.MouseWheelDown:
		m.UiState.SetScrollOffset(hit.ColumnKey, min(offset+1, maxOffset))
	}
	return nil
}
