package dnd

import "time"

// Session is the ephemeral record of one drag gesture. It exists only
// between Start and End/Cancel and is never persisted.
type Session struct {
	IssueID  string
	HoverKey string // candidate target status key; empty when the hover would not change status
}

// Thresholds separates a click from a drag. A pointer gesture that
// moved fewer cells than MinDragCells and lasted less than
// MaxClickDuration counts as a click, not a drag.
type Thresholds struct {
	MinDragCells     int
	MaxClickDuration time.Duration
}

// DefaultThresholds returns the gesture thresholds used when the
// config file does not override them.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinDragCells:     1,
		MaxClickDuration: 300 * time.Millisecond,
	}
}

// IsClick reports whether a completed pointer gesture should be treated
// as a click rather than a drag.
func (t Thresholds) IsClick(movedCells int, held time.Duration) bool {
	return movedCells < t.MinDragCells && held < t.MaxClickDuration
}
