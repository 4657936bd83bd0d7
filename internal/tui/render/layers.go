package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nvelliott/flyt/internal/tui"
	"github.com/nvelliott/flyt/internal/tui/components"
	"github.com/nvelliott/flyt/internal/tui/layers"
	"github.com/nvelliott/flyt/internal/tui/theme"
)

// RenderIssueFormLayer renders the issue create/edit form modal as a layer
func RenderIssueFormLayer(m *tui.Model) *lipgloss.Layer {
	if m.FormState.IssueForm == nil {
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	var formTitle string
	if m.FormState.EditingIssueID == "" {
		formTitle = titleStyle.Render("New Issue")
	} else {
		formTitle = titleStyle.Render("Edit Issue")
	}

	formBox := components.FormBoxStyle.
		Width(m.UiState.Width() * 3 / 4).
		Height(m.UiState.Height() * 3 / 4).
		Render(formTitle + "\n\n" + m.FormState.IssueForm.View())

	return layers.CreateCenteredLayer(formBox, m.UiState.Width(), m.UiState.Height())
}

// RenderDetailLayer renders the read-only issue detail modal
func RenderDetailLayer(m *tui.Model) *lipgloss.Layer {
	issue := m.DetailIssue
	if issue == nil {
		return nil
	}

	boxWidth := m.UiState.Width() * 3 / 4
	innerWidth := boxWidth - 4

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	statusName := issue.Status
	if status, ok := m.Workflow().FindStatus(issue.Status); ok {
		statusName = status.Name
	}

	sections := []string{
		titleStyle.Render(issue.Title),
		subtleStyle.Render(fmt.Sprintf("%s · %d pts", statusName, issue.StoryPoints)),
		"",
		components.RenderDescription(components.DescriptionProps{
			Description: issue.Description,
			Width:       innerWidth,
		}),
	}

	if fieldLines := renderFieldLines(m, innerWidth); len(fieldLines) > 0 {
		sections = append(sections, "", titleStyle.Render("Fields"))
		sections = append(sections, fieldLines...)
	}

	sections = append(sections, "", subtleStyle.Render("esc close"))

	detailBox := components.DetailBoxStyle.
		Width(boxWidth).
		Render(strings.Join(sections, "\n"))

	return layers.CreateCenteredLayer(detailBox, m.UiState.Width(), m.UiState.Height())
}

// renderFieldLines renders one "Name: value" line per populated custom field
func renderFieldLines(m *tui.Model, width int) []string {
	issue := m.DetailIssue
	var lines []string
	for _, def := range m.Workflow().Fields() {
		v := issue.Field(def.Key)
		if v.IsEmpty() {
			continue
		}
		line := fmt.Sprintf("%s: %s", def.Name, v.Display())
		lines = append(lines, lipgloss.NewStyle().Width(width).Render(line))
	}
	return lines
}

// RenderDeleteConfirmLayer renders the delete confirmation dialog
func RenderDeleteConfirmLayer(m *tui.Model) *lipgloss.Layer {
	issue := m.CurrentIssue()
	if issue == nil {
		return nil
	}

	confirmBox := components.DeleteConfirmBoxStyle.
		Width(50).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", issue.Title))

	return layers.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

// RenderHelpLayer renders the keyboard shortcuts help screen
func RenderHelpLayer(m *tui.Model) *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.
		Width(50).
		Render(generateHelpText(m))

	return layers.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}

// generateHelpText creates help text based on current key mappings
func generateHelpText(m *tui.Model) string {
	km := m.Config.KeyMappings
	return fmt.Sprintf(`FLYT - Keyboard Shortcuts

ISSUES
  %s     Add new issue
  %s     Edit selected issue
  %s     Delete selected issue
  %s     View issue details

MOVING
  %s     Grab issue (then h/l to pick, enter to drop)
  %s     Move issue to previous column
  %s     Move issue to next column
  %s     Move issue up in column
  %s     Move issue down in column

  Drops are validated against the workflow: closed issues
  cannot move, and required fields gate their target status.

NAVIGATION
  %s     Move to previous column
  %s     Move to next column
  %s     Move to previous issue
  %s     Move to next issue
  %s     Search issues

OTHER
  %s     Show this help
  %s     Quit

Press any key to close`,
		km.AddIssue,
		km.EditIssue,
		km.DeleteIssue,
		km.ViewIssue,
		km.GrabIssue,
		km.MoveIssueLeft,
		km.MoveIssueRight,
		km.MoveIssueUp,
		km.MoveIssueDown,
		km.PrevColumn,
		km.NextColumn,
		km.PrevIssue,
		km.NextIssue,
		km.Search,
		km.ShowHelp,
		km.Quit,
	)
}
