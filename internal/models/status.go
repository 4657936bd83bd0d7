package models

// StatusType classifies a workflow status for transition rules.
// Closed issues may only move between closed-type statuses.
type StatusType string

const (
	StatusOpen       StatusType = "open"
	StatusInProgress StatusType = "in_progress"
	StatusClosed     StatusType = "closed"
)

// IsValid reports whether the status type is one of the known values
func (t StatusType) IsValid() bool {
	switch t {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// StatusDefinition describes one workflow status (e.g., "To Do")
// The Key is the stable identifier issues reference; Name is for display.
// Definition order is column/display order on the board.
type StatusDefinition struct {
	Key  string
	Name string
	Type StatusType
}
