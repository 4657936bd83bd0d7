package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nvelliott/flyt/internal/models"
	"github.com/nvelliott/flyt/internal/tui/theme"
)

// ColumnProps controls how a column and its cards are drawn
type ColumnProps struct {
	// Status is the workflow status this column shows
	Status models.StatusDefinition

	// Issues are the issues in this column, in board order
	Issues []models.Issue

	// Selected marks the keyboard-selected column
	Selected bool

	// SelectedIssueIdx is the index of the selected issue in this
	// column (-1 when the selection is elsewhere)
	SelectedIssueIdx int

	// DraggingIssueID is the id of the issue held by an active drag
	// gesture ("" when idle)
	DraggingIssueID string

	// DropTarget marks this column as the hovered drop target
	DropTarget bool

	// DropValid is the live validity of the hovered drop (only
	// meaningful when DropTarget is set)
	DropValid bool

	// Height is the fixed outer height of the column box
	Height int

	// ScrollOffset is the index of the first visible issue
	ScrollOffset int
}

// VisibleCardCount returns how many cards fit in a column of the given
// outer height. The hit-tester uses the same arithmetic.
func VisibleCardCount(height int) int {
	return max((height-ColumnOverhead)/CardHeight, 1)
}

// RenderColumn renders a complete column with its title and issue cards
//
// Layout:
//
//	{Status Name} ({count})
//	▲ more above (when scrolled)
//	{Card 1}
//	{Card 2}
//	...
//	▼ more below (when more below)
func RenderColumn(props ColumnProps) string {
	header := fmt.Sprintf("%s (%d)", props.Status.Name, len(props.Issues))
	content := TitleStyle.Render(header) + "\n"

	if len(props.Issues) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No issues")
	} else {
		maxVisible := VisibleCardCount(props.Height)

		// Always reserve the top indicator row so cards start at a
		// fixed offset regardless of scrolling
		if props.ScrollOffset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		endIdx := min(props.ScrollOffset+maxVisible, len(props.Issues))
		visible := props.Issues[props.ScrollOffset:endIdx]

		for i, issue := range visible {
			actualIdx := props.ScrollOffset + i
			content += RenderCard(issue, CardProps{
				Selected: props.Selected && actualIdx == props.SelectedIssueIdx,
				Dragging: issue.ID == props.DraggingIssueID,
			})
			content += "\n"
		}

		// Fill remaining rows so the bottom indicator sits flush
		usedLines := 2 + len(visible)*CardHeight
		hasBottomIndicator := endIdx < len(props.Issues)
		bottomLines := 0
		if hasBottomIndicator {
			bottomLines = 1
		}
		remaining := (props.Height - 2) - usedLines - bottomLines
		if remaining > 0 {
			content += strings.Repeat("\n", remaining)
		}
		if hasBottomIndicator {
			content += IndicatorStyle.Render("▼ more below")
		}
	}

	// The drop-target border doubles as the validity affordance
	style := ColumnStyle
	switch {
	case props.DropTarget && props.DropValid:
		style = DropOKColumnStyle
	case props.DropTarget && !props.DropValid:
		style = DropBlockedColumnStyle
	case props.Selected:
		style = ColumnStyle.BorderForeground(lipgloss.Color(theme.Highlight))
	}

	return style.Height(props.Height - 2).Render(content)
}
