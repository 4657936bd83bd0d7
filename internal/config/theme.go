package config

// Theme holds the configurable colors for the board.
// Values are hex strings consumed by lipgloss.
type Theme struct {
	Accent        string `yaml:"accent"`
	Subtle        string `yaml:"subtle"`
	CardBg        string `yaml:"card_bg"`
	SelectedBg    string `yaml:"selected_bg"`
	Border        string `yaml:"border"`
	DropOK        string `yaml:"drop_ok"`
	DropBlocked   string `yaml:"drop_blocked"`
	ErrorFg       string `yaml:"error_fg"`
	ErrorBg       string `yaml:"error_bg"`
	InfoFg        string `yaml:"info_fg"`
	InfoBg        string `yaml:"info_bg"`
}

// DefaultTheme returns the default color scheme
func DefaultTheme() Theme {
	return Theme{
		Accent:      "#7AA2F7",
		Subtle:      "#565F89",
		CardBg:      "#1F2335",
		SelectedBg:  "#2A2F4A",
		Border:      "#3B4261",
		DropOK:      "#9ECE6A",
		DropBlocked: "#F7768E",
		ErrorFg:     "#F7768E",
		ErrorBg:     "#2D202A",
		InfoFg:      "#7AA2F7",
		InfoBg:      "#1F2335",
	}
}

// MergeFrom overlays non-empty values from another theme
func (t *Theme) MergeFrom(other Theme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&t.Accent, other.Accent)
	merge(&t.Subtle, other.Subtle)
	merge(&t.CardBg, other.CardBg)
	merge(&t.SelectedBg, other.SelectedBg)
	merge(&t.Border, other.Border)
	merge(&t.DropOK, other.DropOK)
	merge(&t.DropBlocked, other.DropBlocked)
	merge(&t.ErrorFg, other.ErrorFg)
	merge(&t.ErrorBg, other.ErrorBg)
	merge(&t.InfoFg, other.InfoFg)
	merge(&t.InfoBg, other.InfoBg)
}
