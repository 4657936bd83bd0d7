package models

import "time"

// Issue represents a single issue on the kanban board.
// The board treats an Issue as an immutable snapshot per render cycle:
// state rebuilds replace issues wholesale rather than mutating in place.
type Issue struct {
	ID          string // uuid
	Title       string
	Description string // markdown
	Status      string // key into the workflow statuses
	StoryPoints int
	Fields      map[string]FieldValue // custom field key -> value
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Field returns the value for a custom field key.
// A missing key reads as the zero FieldValue, which is empty.
func (i Issue) Field(key string) FieldValue {
	if i.Fields == nil {
		return FieldValue{}
	}
	return i.Fields[key]
}

// WithStatus returns a copy of the issue with a new status key.
// Fields are shared, not copied; the board never mutates them.
func (i Issue) WithStatus(status string) Issue {
	i.Status = status
	return i
}
