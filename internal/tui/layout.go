package tui

import (
	"github.com/nvelliott/flyt/internal/tui/components"
)

// The board occupies the terminal from the top-left corner; the status
// bar is the last row. Column i spans
// x in [i*(ColumnOuterWidth+ColumnGap), +ColumnOuterWidth) and its
// cards start ColumnHeaderLines rows below the board top, CardHeight
// rows each. The renderer and this hit-tester share the constants in
// components, so a change to the card geometry moves both.

// BoardTop is the y coordinate of the first board row
const BoardTop = 0

// Hit describes what lies under a screen coordinate
type Hit struct {
	// ColumnIndex and ColumnKey identify the column ("" / -1 when the
	// coordinate is outside every column)
	ColumnIndex int
	ColumnKey   string

	// IssueIndex and IssueID identify the card ("" / -1 when the
	// coordinate is inside a column but not on a card)
	IssueIndex int
	IssueID    string
}

// HitTest maps a terminal cell coordinate to the column and card under
// it. The second return is false when the coordinate misses the board.
func (m *Model) HitTest(x, y int) (Hit, bool) {
	hit := Hit{ColumnIndex: -1, IssueIndex: -1}

	keys := m.Board().Keys()
	if len(keys) == 0 || y < BoardTop {
		return hit, false
	}

	stride := components.ColumnOuterWidth + components.ColumnGap
	colIdx := x / stride
	if colIdx < 0 || colIdx >= len(keys) {
		return hit, false
	}
	if x-colIdx*stride >= components.ColumnOuterWidth {
		// In the gap between columns
		return hit, false
	}
	if y >= BoardTop+m.ColumnHeight() {
		return hit, false
	}

	hit.ColumnIndex = colIdx
	hit.ColumnKey = keys[colIdx]

	// Card rows start below the column's top border, header, and
	// scroll indicator line
	relY := y - BoardTop - components.ColumnHeaderLines
	if relY < 0 {
		return hit, true
	}

	issues := m.Board().Column(hit.ColumnKey)
	slot := relY / components.CardHeight
	if slot >= m.VisibleIssueCount() {
		return hit, true
	}

	idx := m.UiState.ScrollOffset(hit.ColumnKey) + slot
	if idx < 0 || idx >= len(issues) {
		return hit, true
	}

	hit.IssueIndex = idx
	hit.IssueID = issues[idx].ID
	return hit, true
}

// DropTargetAt resolves a screen coordinate to a drop-target id for the
// drag controller: the card under the cursor when there is one, else
// the hovered column's status key. Empty when outside the board.
func (m *Model) DropTargetAt(x, y int) string {
	hit, ok := m.HitTest(x, y)
	if !ok {
		return ""
	}
	if hit.IssueID != "" {
		return hit.IssueID
	}
	return hit.ColumnKey
}
