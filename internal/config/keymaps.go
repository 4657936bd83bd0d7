package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Issues
	AddIssue    string `yaml:"add_issue"`
	EditIssue   string `yaml:"edit_issue"`
	DeleteIssue string `yaml:"delete_issue"`
	ViewIssue   string `yaml:"view_issue"`

	// Keyboard grab-and-move (same validation path as mouse drag)
	GrabIssue      string `yaml:"grab_issue"`
	MoveIssueLeft  string `yaml:"move_issue_left"`
	MoveIssueRight string `yaml:"move_issue_right"`
	MoveIssueUp    string `yaml:"move_issue_up"`
	MoveIssueDown  string `yaml:"move_issue_down"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevIssue  string `yaml:"prev_issue"`
	NextIssue  string `yaml:"next_issue"`

	// Other
	Search   string `yaml:"search"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddIssue:    "a",
		EditIssue:   "e",
		DeleteIssue: "d",
		ViewIssue:   "space",

		GrabIssue:      "g",
		MoveIssueLeft:  "H",
		MoveIssueRight: "L",
		MoveIssueUp:    "K",
		MoveIssueDown:  "J",

		PrevColumn: "h",
		NextColumn: "l",
		PrevIssue:  "k",
		NextIssue:  "j",

		Search:   "/",
		ShowHelp: "?",
		Quit:     "q",
	}
}
