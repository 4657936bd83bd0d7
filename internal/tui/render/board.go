package render

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nvelliott/flyt/internal/tui"
	"github.com/nvelliott/flyt/internal/tui/components"
	"github.com/nvelliott/flyt/internal/tui/state"
)

// ViewBoard renders the kanban board with the status bar pinned to the
// bottom row.
func ViewBoard(m *tui.Model) string {
	keys := m.Board().Keys()
	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:       m.UiState.Width(),
		Searching:   m.UiState.Mode() == state.SearchMode,
		SearchQuery: m.SearchState.Query,
		Grabbing:    m.UiState.Mode() == state.GrabMode,
	})

	if len(keys) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			"",
			"No workflow statuses configured. Run `flyt init` to create a workflow file.",
			"",
			footer,
		)
	}

	columnHeight := m.ColumnHeight()
	session := m.Drag.Session()
	hoverValid, hoverActive := m.Drag.HoverValidity()

	var columns []string
	for i, key := range keys {
		issues := m.Board().Column(key)
		status, _ := m.Workflow().FindStatus(key)

		selected := i == m.UiState.SelectedColumn()
		selectedIssueIdx := -1
		if selected {
			selectedIssueIdx = m.UiState.SelectedIssue()
		}

		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Status:           status,
			Issues:           issues,
			Selected:         selected,
			SelectedIssueIdx: selectedIssueIdx,
			DraggingIssueID:  session.IssueID,
			DropTarget:       hoverActive && session.HoverKey == key,
			DropValid:        hoverValid,
			Height:           columnHeight,
			ScrollOffset:     m.UiState.ScrollOffset(key),
		}))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(columns)...)

	// Constrain the board to the rows above the footer
	contentLines := strings.Split(board, "\n")
	maxContentLines := max(m.UiState.Height()-1, 1)
	if len(contentLines) > maxContentLines {
		contentLines = contentLines[:maxContentLines]
	}
	for len(contentLines) < maxContentLines {
		contentLines = append(contentLines, "")
	}

	return strings.Join(contentLines, "\n") + "\n" + footer
}

// joinWithGap interleaves the column gap between rendered columns
func joinWithGap(columns []string) []string {
	gap := strings.Repeat(" ", components.ColumnGap)
	parts := make([]string, 0, len(columns)*2)
	for i, col := range columns {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, col)
	}
	return parts
}
