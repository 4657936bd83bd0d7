package tui

import "github.com/nvelliott/flyt/internal/events"

// RefreshMsg signals that another flyt instance changed the board and
// the local copy should be reloaded.
type RefreshMsg struct {
	Event events.Event
}

// DismissNotificationMsg fires when a notification's auto-dismiss timer
// elapses. Token identifies the notification set the timer was armed
// for; a stale token is ignored.
type DismissNotificationMsg struct {
	Token int
}
