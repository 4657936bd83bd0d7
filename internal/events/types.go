package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventIssueMoved   EventType = "issue_moved"
	EventBoardChanged EventType = "board_changed"
	EventPing         EventType = "ping"
	EventPong         EventType = "pong"
)

// Event represents a board change notification
type Event struct {
	Type       EventType
	IssueID    string    // Which issue moved (empty for coalesced board_changed events)
	StatusKey  string    // The status the issue landed in
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// Message wraps events and control messages for wire protocol
type Message struct {
	Type  string // "event", "ping", "pong"
	Event *Event `json:",omitempty"`
}
