package events

import "context"

// Publisher defines the interface for sending and receiving board events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type Publisher interface {
	// Connect establishes a connection to the sync socket
	Connect(ctx context.Context) error

	// SendEvent queues an event to be sent to other instances
	SendEvent(event Event) error

	// Listen starts listening for events from other instances
	Listen(ctx context.Context) (<-chan Event, error)

	// Close closes the connection and stops all goroutines
	Close() error
}

// Compile-time verification that *Client implements Publisher
var _ Publisher = (*Client)(nil)
