package daemon

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nvelliott/flyt/internal/events"
)

func getTestSocketPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test-flyt.sock")
}

func setupTestDaemon(t *testing.T) (*Server, string) {
	t.Helper()
	socketPath := getTestSocketPath(t)

	server, err := NewServer(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test broker: %v", err)
	}

	t.Cleanup(func() {
		_ = server.Shutdown()
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() { _ = server.Start(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(socketPath); err == nil {
			time.Sleep(10 * time.Millisecond)
			return server, socketPath
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("Timeout waiting for broker socket")
	return nil, ""
}

func connectRawClient(t *testing.T, socketPath string) (net.Conn, *json.Encoder, *json.Decoder) {
	t.Helper()

	conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", socketPath)
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn, json.NewEncoder(conn), json.NewDecoder(conn)
}

func readEventMessage(t *testing.T, decoder *json.Decoder, timeout time.Duration) events.Message {
	t.Helper()

	type result struct {
		msg events.Message
		err error
	}
	ch := make(chan result, 1)
	go func() {
		var msg events.Message
		err := decoder.Decode(&msg)
		ch <- result{msg, err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			t.Fatalf("Failed to decode message: %v", r.err)
		}
		return r.msg
	case <-time.After(timeout):
		t.Fatal("Timeout waiting for message")
		return events.Message{}
	}
}

func TestBroadcastReachesAllClients(t *testing.T) {
	server, socketPath := setupTestDaemon(t)

	_, _, dec1 := connectRawClient(t, socketPath)
	_, _, dec2 := connectRawClient(t, socketPath)

	// Give the accept loop a moment to register both clients
	time.Sleep(50 * time.Millisecond)

	err := server.Broadcast(events.Event{
		Type:      events.EventIssueMoved,
		IssueID:   "issue-1",
		StatusKey: "done",
	})
	if err != nil {
		t.Fatalf("Broadcast() error = %v", err)
	}

	for i, dec := range []*json.Decoder{dec1, dec2} {
		msg := readEventMessage(t, dec, 2*time.Second)
		if msg.Type != "event" {
			t.Errorf("client %d: message type = %q, want event", i, msg.Type)
		}
		if msg.Event == nil || msg.Event.Type != events.EventIssueMoved {
			t.Errorf("client %d: unexpected event %+v", i, msg.Event)
		}
		if msg.Event.SequenceID == 0 {
			t.Errorf("client %d: SequenceID should be assigned by the broker", i)
		}
	}
}

func TestClientEventIsRelayed(t *testing.T) {
	_, socketPath := setupTestDaemon(t)

	_, enc1, _ := connectRawClient(t, socketPath)
	_, _, dec2 := connectRawClient(t, socketPath)

	time.Sleep(50 * time.Millisecond)

	msg := events.Message{
		Type: "event",
		Event: &events.Event{
			Type:      events.EventBoardChanged,
			Timestamp: time.Now(),
		},
	}
	if err := enc1.Encode(msg); err != nil {
		t.Fatalf("Failed to send event: %v", err)
	}

	got := readEventMessage(t, dec2, 2*time.Second)
	if got.Event == nil || got.Event.Type != events.EventBoardChanged {
		t.Errorf("relayed event = %+v, want board_changed", got.Event)
	}
}

func TestSequenceIDsIncrease(t *testing.T) {
	server, socketPath := setupTestDaemon(t)

	_, _, dec := connectRawClient(t, socketPath)
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 3; i++ {
		if err := server.Broadcast(events.Event{Type: events.EventBoardChanged}); err != nil {
			t.Fatalf("Broadcast() error = %v", err)
		}
	}

	var last int64
	for i := 0; i < 3; i++ {
		msg := readEventMessage(t, dec, 2*time.Second)
		if msg.Event.SequenceID <= last {
			t.Errorf("SequenceID %d not greater than previous %d", msg.Event.SequenceID, last)
		}
		last = msg.Event.SequenceID
	}
}

func TestShutdownRemovesSocket(t *testing.T) {
	server, socketPath := setupTestDaemon(t)

	if err := server.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if _, err := os.Stat(socketPath); !os.IsNotExist(err) {
		t.Errorf("socket file should be removed after shutdown, stat err = %v", err)
	}

	// Shutdown is idempotent
	if err := server.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}

func TestMetricsCountBroadcasts(t *testing.T) {
	server, socketPath := setupTestDaemon(t)

	_, _, dec := connectRawClient(t, socketPath)
	time.Sleep(50 * time.Millisecond)

	if err := server.Broadcast(events.Event{Type: events.EventBoardChanged}); err != nil {
		t.Fatalf("Broadcast() error = %v", err)
	}
	readEventMessage(t, dec, 2*time.Second)

	snap := server.Metrics().GetSnapshot()
	if snap.BroadcastsTotal != 1 {
		t.Errorf("BroadcastsTotal = %d, want 1", snap.BroadcastsTotal)
	}
	if snap.EventsSent < 1 {
		t.Errorf("EventsSent = %d, want >= 1", snap.EventsSent)
	}
	if snap.ConnectedClients != 1 {
		t.Errorf("ConnectedClients = %d, want 1", snap.ConnectedClients)
	}
}
