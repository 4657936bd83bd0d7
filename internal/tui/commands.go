package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// SubscribeToEvents returns a command that waits for the next event
// from the broker. Re-issued after every received event.
func SubscribeToEvents(m *Model) tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ch := m.EventChan
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return RefreshMsg{Event: event}
	}
}

// ScheduleDismiss arms the auto-dismiss timer for the current
// notification set. Returns nil when nothing is showing.
func ScheduleDismiss(m *Model) tea.Cmd {
	if !m.NotificationState.HasAny() {
		return nil
	}
	token := m.NotificationState.Token()
	return tea.Tick(m.Config.DismissAfter(), func(time.Time) tea.Msg {
		return DismissNotificationMsg{Token: token}
	})
}
