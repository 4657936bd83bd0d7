package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Client is a connection to the flyt sync socket used to tell other
// running instances that the board changed. It handles event sending,
// coalescing, reconnection, and receiving.
type Client struct {
	socketPath string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex

	// Coalescing configuration
	eventQueue chan Event
	debounce   time.Duration
	closed     bool // Prevent double-close panics

	// Reconnection configuration
	maxRetries int
	baseDelay  time.Duration

	// Event tracking
	lastSequence int64

	// Context for graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc

	// Coalescing goroutine
	batcherStarted bool
	batcherDone    chan struct{}
}

// NewClient creates a new event client but does not connect.
// The socket path should be the full path to the Unix domain socket.
// The debounce duration controls event coalescing (default 100ms,
// overridable via FLYT_EVENT_DEBOUNCE_MS).
func NewClient(socketPath string) (*Client, error) {
	debounceMs := 100
	if envVal := os.Getenv("FLYT_EVENT_DEBOUNCE_MS"); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			debounceMs = parsed
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		socketPath:  socketPath,
		eventQueue:  make(chan Event, 100),
		debounce:    time.Duration(debounceMs) * time.Millisecond,
		maxRetries:  5,
		baseDelay:   1 * time.Second,
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}, nil
}

// Connect establishes a connection to the sync socket and starts the
// coalescing goroutine.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("nil event client")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial sync socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)

	if !c.batcherStarted {
		c.batcherStarted = true
		go c.startBatcher()
	}

	return nil
}

// SendEvent queues an event to be sent to other instances.
// Events are coalesced within the debounce window.
// Returns error if the queue is full (non-blocking send).
func (c *Client) SendEvent(event Event) error {
	if c == nil {
		return fmt.Errorf("nil event client")
	}

	select {
	case c.eventQueue <- event:
		return nil
	default:
		return fmt.Errorf("event queue full")
	}
}

// startBatcher runs in a goroutine and coalesces events from the queue.
// A single pending move goes out as issue_moved; several moves within
// the debounce window collapse into one board_changed event.
func (c *Client) startBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var pending bool
	var single Event
	var multiple bool

	flushPending := func() {
		if !pending {
			return
		}

		out := single
		if multiple {
			out = Event{Type: EventBoardChanged}
		}
		out.Timestamp = time.Now()

		if err := c.sendToSocket(out); err != nil {
			if !isConnectionError(err) {
				slog.Error("failed to send coalesced event", "error", err)
			}
		}
		pending = false
		multiple = false
	}

	for {
		select {
		case <-c.ctx.Done():
			flushPending()
			return

		case event, ok := <-c.eventQueue:
			if !ok {
				flushPending()
				return
			}

			if !pending {
				pending = true
				single = event
			} else {
				multiple = true
			}

			// Drain anything else queued during this window
		drainLoop:
			for {
				select {
				case _, ok := <-c.eventQueue:
					if !ok {
						break drainLoop
					}
					multiple = true
				default:
					break drainLoop
				}
			}

		case <-ticker.C:
			flushPending()
		}
	}
}

// sendToSocket writes one event to the sync socket.
func (c *Client) sendToSocket(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("not connected to sync socket")
	}

	// Short write deadline to detect dead connections
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}

	msg := Message{
		Type:  "event",
		Event: &event,
	}
	return c.encoder.Encode(msg)
}

// Listen starts listening for events from other instances.
// It returns a channel that receives events and handles reconnection
// automatically. The channel is closed when the context is done or
// reconnection fails.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	if c == nil {
		closed := make(chan Event)
		close(closed)
		return closed, fmt.Errorf("nil event client")
	}

	eventChan := make(chan Event, 10)
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

// listenLoop reads events from the socket and handles reconnection.
func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			err := c.readEvents(ctx, eventChan)
			if err != nil {
				slog.Info("sync connection lost, reconnecting", "error", err)

				if c.reconnect(ctx) {
					continue
				}

				slog.Warn("failed to reconnect to sync socket, giving up", "attempts", c.maxRetries)
				return
			}
		}
	}
}

// readEvents reads messages from the socket and sends them to the event channel.
func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		var msg Message

		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return fmt.Errorf("connection closed")
		}
		// Read deadline detects hung connections
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case "event":
			if msg.Event != nil {
				// Sequence check gives basic duplicate detection
				if msg.Event.SequenceID > c.lastSequence {
					c.lastSequence = msg.Event.SequenceID
					select {
					case eventChan <- *msg.Event:
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			}

		case "ping":
			if err := c.sendToSocket(Event{Type: EventPong}); err != nil {
				// Broken pipe is expected during disconnection
				if !isConnectionError(err) {
					slog.Error("failed to send pong", "error", err)
				}
			}
		}
	}
}

// isConnectionError checks if an error is a network connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "use of closed network connection")
}

// reconnect attempts to reconnect with exponential backoff.
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := 0; i < c.maxRetries; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
			c.mu.Lock()
			if c.conn != nil {
				if err := c.conn.Close(); err != nil {
					slog.Debug("error closing connection during reconnect", "error", err)
				}
			}
			c.mu.Unlock()

			if err := c.Connect(ctx); err == nil {
				slog.Info("reconnected to sync socket", "attempt", i+1)
				return true
			}

			delay *= 2 // 1s, 2s, 4s, 8s, 16s
		}
	}

	return false
}

// Close closes the connection and stops all goroutines.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	started := c.batcherStarted

	// Closing the queue lets the batcher flush pending events first
	if c.eventQueue != nil {
		close(c.eventQueue)
	}
	c.mu.Unlock()

	c.cancel()
	if started {
		<-c.batcherDone
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return c.conn.Close()
	}

	return nil
}
