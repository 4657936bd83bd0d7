package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nvelliott/flyt/internal/models"
	"github.com/nvelliott/flyt/internal/tui/theme"
)

// CardProps controls how one issue card is drawn
type CardProps struct {
	// Selected marks the keyboard-selected card
	Selected bool

	// Dragging marks the card currently held by a drag gesture
	Dragging bool
}

// RenderCard renders a single issue as a fixed-size card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Issue Title}            ┃
//	┃ {points · field summary} ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━┛
func RenderCard(issue models.Issue, props CardProps) string {
	bg := theme.CardBg
	if props.Selected || props.Dragging {
		bg = theme.SelectedBg
	}

	title := renderCardTitle(issue, bg)
	meta := renderCardMeta(issue, bg)
	content := title + "\n" + meta

	style := CardStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if props.Dragging {
		style = style.BorderForeground(lipgloss.Color(theme.Highlight))
	} else if props.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.Highlight))
	}

	return style.Render(content)
}

func renderCardTitle(issue models.Issue, bg string) string {
	title := issue.Title
	if len(title) > cardTitleMaxLength {
		title = title[:cardTitleMaxLength] + "…"
	}
	// Pad so the background fills the full card width
	if len(title) < CardContentWidth-2 {
		title += strings.Repeat(" ", CardContentWidth-2-len(title))
	}

	return lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(" " + title)
}

// renderCardMeta renders story points and a compact custom field summary
func renderCardMeta(issue models.Issue, bg string) string {
	parts := []string{}
	if issue.StoryPoints > 0 {
		parts = append(parts, fmt.Sprintf("%d pts", issue.StoryPoints))
	}
	if n := populatedFieldCount(issue); n > 0 {
		parts = append(parts, fmt.Sprintf("%d fields", n))
	}

	meta := strings.Join(parts, " · ")
	if meta == "" {
		meta = "—"
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Width(CardContentWidth).
		Render(" " + meta)
}

func populatedFieldCount(issue models.Issue) int {
	n := 0
	for _, v := range issue.Fields {
		if !v.IsEmpty() {
			n++
		}
	}
	return n
}
