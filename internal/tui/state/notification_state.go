package state

import "charm.land/lipgloss/v2"

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (blue, bell icon)
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications (red, error icon)
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState manages notification display state.
// Notifications clear on the next keypress or when their auto-dismiss
// timer fires, whichever comes first. The token distinguishes a live
// timer from one whose notifications were already replaced.
type NotificationState struct {
	// notifications contains the list of current notifications to display
	notifications []Notification

	// token increments every time the notification set changes, so a
	// stale dismiss timer can be recognized and ignored
	token int

	// windowWidth tracks the current window width for positioning
	windowWidth int
	// windowHeight tracks the current window height for positioning
	windowHeight int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		notifications: []Notification{},
	}
}

// Add adds a new notification with the specified level and message.
// It returns the token identifying the current notification set, which
// a dismiss timer should carry back.
func (s *NotificationState) Add(level NotificationLevel, message string) int {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
	s.token++
	return s.token
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	if len(s.notifications) == 0 {
		return
	}
	s.notifications = []Notification{}
	s.token++
}

// ClearIfToken removes all notifications only if the given token still
// identifies the current set. Used by auto-dismiss timers.
func (s *NotificationState) ClearIfToken(token int) {
	if token == s.token {
		s.Clear()
	}
}

// Token returns the token of the current notification set.
func (s *NotificationState) Token() int {
	return s.token
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications.
// Notifications are stacked vertically in the top-right corner of the screen.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string) []*lipgloss.Layer {
	layers := []*lipgloss.Layer{}

	// If window dimensions not set, can't position properly
	if s.windowWidth == 0 {
		return layers
	}

	row := 0
	for _, notification := range s.notifications {
		notificationView := renderFunc(notification)
		notifWidth := lipgloss.Width(notificationView)
		notifHeight := lipgloss.Height(notificationView)

		col := s.windowWidth - notifWidth - 1 // 1 char padding from right edge
		if col < 0 {
			col = 0
		}
		if row+notifHeight >= s.windowHeight {
			// Don't render notifications that would go off screen
			break
		}

		layers = append(layers,
			lipgloss.NewLayer(notificationView).X(col).Y(row).Z(20))
		row += notifHeight + 1
	}

	return layers
}
