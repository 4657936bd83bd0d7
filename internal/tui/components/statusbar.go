package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nvelliott/flyt/internal/tui/theme"
)

// StatusBarProps controls the bottom status bar content
type StatusBarProps struct {
	Width       int
	SearchQuery string
	Searching   bool
	Grabbing    bool
}

// RenderStatusBar renders the single-line bar at the bottom of the
// board: the app name on the left, a mode hint on the right.
func RenderStatusBar(props StatusBarProps) string {
	left := " flyt"
	right := "? help "

	switch {
	case props.Searching:
		left = " / " + props.SearchQuery + "█"
		right = "esc clear · enter keep "
	case props.SearchQuery != "":
		left = " / " + props.SearchQuery
		right = "esc clear · ? help "
	case props.Grabbing:
		left = " moving issue"
		right = "h/l pick column · enter drop · esc cancel "
	}

	gap := props.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	return StatusBarStyle.
		Width(props.Width).
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(bar)
}
