package theme

import "github.com/nvelliott/flyt/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight   string
	Subtle      string
	CardBg      string
	SelectedBg  string
	Border      string
	DropOK      string
	DropBlocked string
	InfoFg      string
	InfoBg      string
	ErrorFg     string
	ErrorBg     string
)

// Init initializes the theme colors from the given theme config
func Init(t config.Theme) {
	Highlight = t.Accent
	Subtle = t.Subtle
	CardBg = t.CardBg
	SelectedBg = t.SelectedBg
	Border = t.Border
	DropOK = t.DropOK
	DropBlocked = t.DropBlocked
	InfoFg = t.InfoFg
	InfoBg = t.InfoBg
	ErrorFg = t.ErrorFg
	ErrorBg = t.ErrorBg
}
