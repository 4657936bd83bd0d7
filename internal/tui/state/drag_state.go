package state

import "time"

// DragState tracks the raw mouse gesture so the press can be classified
// as a click or a drag once it either crosses the movement threshold or
// the button is released.
type DragState struct {
	// Pressed is true between mouse press and release
	Pressed bool

	// PressX and PressY are the cell coordinates of the initial press
	PressX int
	PressY int

	// PressedAt is when the button went down
	PressedAt time.Time

	// PressedIssueID is the issue under the cursor at press time
	PressedIssueID string

	// MovedCells is the largest axis distance travelled since the press
	MovedCells int
}

// NewDragState creates an idle DragState.
func NewDragState() *DragState {
	return &DragState{}
}

// Press records the start of a mouse gesture over an issue.
func (s *DragState) Press(x, y int, issueID string, at time.Time) {
	s.Pressed = true
	s.PressX = x
	s.PressY = y
	s.PressedAt = at
	s.PressedIssueID = issueID
	s.MovedCells = 0
}

// Track updates the travelled distance for a motion event.
func (s *DragState) Track(x, y int) {
	if !s.Pressed {
		return
	}
	dx := abs(x - s.PressX)
	dy := abs(y - s.PressY)
	if dx > s.MovedCells {
		s.MovedCells = dx
	}
	if dy > s.MovedCells {
		s.MovedCells = dy
	}
}

// Held returns how long the button has been down.
func (s *DragState) Held(now time.Time) time.Duration {
	return now.Sub(s.PressedAt)
}

// Release resets the gesture.
func (s *DragState) Release() {
	*s = DragState{}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
