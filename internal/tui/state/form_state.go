package state

import (
	"charm.land/huh/v2"
)

// FormState manages the issue form state: the huh form instance, the
// identity of the issue being edited, and the value buffers the form
// fields write into. Custom field values are kept as string/bool
// buffers and parsed into typed values on submit.
type FormState struct {
	// IssueForm is the active huh form instance (nil when no form is open)
	IssueForm *huh.Form

	// EditingIssueID is the id of the issue being edited ("" for a new issue)
	EditingIssueID string

	// Scalar field buffers
	Title       string
	Description string
	StoryPoints string

	// Custom field buffers, keyed by field key. Text, textarea, number
	// and date fields share the string buffers; booleans get their own.
	TextBuffers map[string]*string
	BoolBuffers map[string]*bool

	// Confirm is the submit/cancel confirmation value
	Confirm bool
}

// NewFormState creates a new FormState with default values.
func NewFormState() *FormState {
	return &FormState{
		TextBuffers: make(map[string]*string),
		BoolBuffers: make(map[string]*bool),
		Confirm:     true,
	}
}

// Reset clears the form state after submit or discard.
func (s *FormState) Reset() {
	s.IssueForm = nil
	s.EditingIssueID = ""
	s.Title = ""
	s.Description = ""
	s.StoryPoints = ""
	s.TextBuffers = make(map[string]*string)
	s.BoolBuffers = make(map[string]*bool)
	s.Confirm = true
}
