// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/nvelliott/flyt/internal/config"
	"github.com/nvelliott/flyt/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// DropOKColumnStyle is ColumnStyle with the valid-drop-target border
	DropOKColumnStyle lipgloss.Style

	// DropBlockedColumnStyle is ColumnStyle with the blocked-drop-target border
	DropBlockedColumnStyle lipgloss.Style

	// CardStyle defines the appearance of individual issues as cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// FormBoxStyle defines the base style for issue forms
	FormBoxStyle lipgloss.Style

	// DetailBoxStyle defines the base style for the issue detail view
	DetailBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for the help screen
	HelpBoxStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given theme
func InitStyles(t config.Theme) {
	// Initialize theme colors
	theme.Init(t)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(ColumnContentWidth)

	DropOKColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(theme.DropOK))

	DropBlockedColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(theme.DropBlocked))

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		BorderBackground(lipgloss.Color(theme.CardBg)).
		Background(lipgloss.Color(theme.CardBg)).
		Width(CardContentWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(1, 2)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.DropBlocked)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))
}
