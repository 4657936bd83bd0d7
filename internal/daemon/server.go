// Package daemon implements the flyt event broker: a small unix-socket
// server that relays board change events between running flyt instances
// so every open board refreshes when one of them writes.
package daemon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nvelliott/flyt/internal/events"
)

// client represents a connected flyt instance
type client struct {
	conn      net.Conn
	send      chan events.Message
	lastPong  time.Time
	mu        sync.Mutex // Protects lastPong
	closeOnce sync.Once  // Ensures send channel is closed only once
}

// Server is the flyt event broker
type Server struct {
	socketPath       string
	listener         net.Listener
	clients          map[*client]bool
	mu               sync.RWMutex
	ctx              context.Context
	cancel           context.CancelFunc
	broadcast        chan events.Event
	metrics          *Metrics
	sequenceCounter  atomic.Int64
	clientBufferSize int
	shutdownOnce     sync.Once
}

// getEnvInt reads an integer from an environment variable, returning defaultVal if not set or invalid
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

// NewServer creates a new broker listening on the given unix socket path
func NewServer(socketPath string) (*Server, error) {
	dir := filepath.Dir(socketPath)
	if dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	// Remove stale socket file if it exists
	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	broadcastBuffer := getEnvInt("FLYT_DAEMON_BROADCAST_BUFFER", 100)
	clientBuffer := getEnvInt("FLYT_DAEMON_CLIENT_BUFFER", 10)

	return &Server{
		socketPath:       socketPath,
		listener:         listener,
		clients:          make(map[*client]bool),
		ctx:              ctx,
		cancel:           cancel,
		broadcast:        make(chan events.Event, broadcastBuffer),
		metrics:          NewMetrics(),
		clientBufferSize: clientBuffer,
	}, nil
}

// Start runs the broker until the context is cancelled.
// It starts three goroutines: accept, broadcast, and health monitoring.
func (s *Server) Start(ctx context.Context) error {
	slog.Info("broker starting", "socket", s.socketPath)

	combinedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-s.ctx.Done()
		cancel()
	}()

	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- s.acceptLoop(combinedCtx)
	}()

	go s.broadcastLoop(combinedCtx)
	go s.monitorHealth(combinedCtx)

	select {
	case <-combinedCtx.Done():
		slog.Info("broker context cancelled, shutting down")
	case err := <-acceptErr:
		if err != nil {
			slog.Error("accept loop error", "error", err)
		}
	}

	return s.Shutdown()
}

// acceptLoop accepts incoming client connections
func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// Short deadline so context cancellation is noticed
		if err := s.listener.(*net.UnixListener).SetDeadline(time.Now().Add(1 * time.Second)); err != nil {
			slog.Warn("setting listener deadline failed", "error", err)
		}

		conn, err := s.listener.Accept()
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			conn:     conn,
			send:     make(chan events.Message, s.clientBufferSize),
			lastPong: time.Now(),
		}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()
		s.updateClientCount()

		slog.Info("client connected", "total", s.getClientCount())

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

// broadcastLoop distributes events to all connected clients
func (s *Server) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event := <-s.broadcast:
			event.SequenceID = s.sequenceCounter.Add(1)
			s.metrics.IncBroadcastsTotal()

			msg := events.Message{
				Type:  "event",
				Event: &event,
			}

			s.mu.RLock()
			for c := range s.clients {
				// Non-blocking send, a slow client drops the event
				if !s.sendToClient(c, msg) {
					slog.Warn("client send queue full, event dropped")
				}
			}
			s.mu.RUnlock()
		}
	}
}

// handleClient reads messages from a connected client
func (s *Server) handleClient(c *client) {
	defer func() {
		s.removeClient(c)
		slog.Info("client disconnected", "total", s.getClientCount())
	}()

	decoder := json.NewDecoder(c.conn)

	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "event":
			if msg.Event != nil {
				s.metrics.IncEventsReceived()
				select {
				case s.broadcast <- *msg.Event:
				default:
					slog.Warn("broadcast channel full")
				}
			}

		case "pong":
			c.mu.Lock()
			c.lastPong = time.Now()
			c.mu.Unlock()
		}
	}
}

// clientWriter sends queued messages to a client
func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)

	for msg := range c.send {
		if err := encoder.Encode(msg); err != nil {
			return
		}
	}
}

// monitorHealth sends ping messages and removes stale clients
func (s *Server) monitorHealth(ctx context.Context) {
	pingTicker := time.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	healthTicker := time.NewTicker(60 * time.Second)
	defer healthTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-pingTicker.C:
			s.mu.RLock()
			clients := make([]*client, 0, len(s.clients))
			for c := range s.clients {
				clients = append(clients, c)
			}
			s.mu.RUnlock()

			pingMsg := events.Message{
				Type: "ping",
				Event: &events.Event{
					Type: events.EventPing,
				},
			}

			for _, c := range clients {
				if !s.sendToClient(c, pingMsg) {
					slog.Warn("ping dropped, client queue full")
				}
			}

		case <-healthTicker.C:
			// Remove clients that haven't answered a ping in 90s.
			// Two-phase locking: collect under read lock, remove after.
			s.mu.RLock()
			staleClients := make([]*client, 0)
			now := time.Now()
			for c := range s.clients {
				c.mu.Lock()
				lastPong := c.lastPong
				c.mu.Unlock()

				if now.Sub(lastPong) > 90*time.Second {
					staleClients = append(staleClients, c)
				}
			}
			s.mu.RUnlock()

			for _, c := range staleClients {
				slog.Info("removing stale client", "last_pong_ago", now.Sub(c.lastPong))
				s.removeClient(c)
			}
		}
	}
}

// Broadcast queues an event for distribution (non-blocking)
func (s *Server) Broadcast(event events.Event) error {
	select {
	case s.broadcast <- event:
		return nil
	default:
		return fmt.Errorf("broadcast channel full")
	}
}

// Metrics returns the broker's metrics
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Shutdown gracefully shuts down the broker
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		slog.Info("shutting down broker")

		s.cancel()

		if s.listener != nil {
			if err := s.listener.Close(); err != nil {
				slog.Warn("closing listener failed", "error", err)
			}
		}

		s.mu.Lock()
		for c := range s.clients {
			if err := c.conn.Close(); err != nil {
				slog.Warn("closing client connection failed", "error", err)
			}
			c.closeOnce.Do(func() {
				close(c.send)
			})
		}
		s.clients = make(map[*client]bool)
		s.mu.Unlock()

		if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("removing socket file failed", "error", err)
		}

		close(s.broadcast)
	})

	return nil
}

func (s *Server) getClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) updateClientCount() {
	s.metrics.SetConnectedClients(int32(s.getClientCount()))
}

// removeClient safely removes a client from the broker
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()

	if err := c.conn.Close(); err != nil {
		slog.Debug("closing client connection", "error", err)
	}
	c.closeOnce.Do(func() {
		close(c.send)
	})

	s.updateClientCount()
}

// sendToClient attempts to queue a message for a client (non-blocking).
// Returns true if queued, false if the queue is full.
func (s *Server) sendToClient(c *client, msg events.Message) bool {
	select {
	case c.send <- msg:
		s.metrics.IncEventsSent()
		return true
	default:
		return false
	}
}
