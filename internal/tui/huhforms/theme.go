package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/nvelliott/flyt/internal/config"
)

// CreateFlytTheme creates a custom huh theme matching flyt's color scheme
func CreateFlytTheme(t config.Theme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		s := huh.ThemeBase(isDark)

		accent := lipgloss.Color(t.Accent)
		subtle := lipgloss.Color(t.Subtle)
		errorColor := lipgloss.Color(t.ErrorFg)

		// Focused field styles
		s.Focused.Base = s.Focused.Base.BorderForeground(accent)
		s.Focused.Title = s.Focused.Title.Foreground(accent).Bold(true)
		s.Focused.Description = s.Focused.Description.Foreground(subtle)
		s.Focused.ErrorIndicator = s.Focused.ErrorIndicator.Foreground(errorColor)
		s.Focused.ErrorMessage = s.Focused.ErrorMessage.Foreground(errorColor)
		s.Focused.SelectSelector = s.Focused.SelectSelector.Foreground(accent)
		s.Focused.SelectedOption = s.Focused.SelectedOption.Foreground(accent)
		s.Focused.SelectedPrefix = s.Focused.SelectedPrefix.Foreground(accent)
		s.Focused.UnselectedPrefix = s.Focused.UnselectedPrefix.Foreground(subtle)
		s.Focused.FocusedButton = s.Focused.FocusedButton.
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Bold(true)

		// TextInput styles
		s.Focused.TextInput.Cursor = s.Focused.TextInput.Cursor.Foreground(accent)
		s.Focused.TextInput.Placeholder = s.Focused.TextInput.Placeholder.Foreground(subtle)
		s.Focused.TextInput.Prompt = s.Focused.TextInput.Prompt.Foreground(accent)

		// Blurred field styles (inherit from focused but with hidden border)
		s.Blurred = s.Focused
		s.Blurred.Base = s.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		s.Blurred.Title = s.Blurred.Title.Foreground(subtle)

		return s
	})
}
