package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rmacedo/twenty48/game/service"
)

func TestNewHub(t *testing.T) {
	hub := NewHub()

	if hub == nil {
		t.Fatal("NewHub() returned nil")
	}

	if hub.watchers == nil {
		t.Error("Hub watchers map is nil")
	}

	if hub.events == nil {
		t.Error("Hub events channel is nil")
	}
}

func TestHubAttach(t *testing.T) {
	hub := NewHub()

	wt := &watcher{
		hub:     hub,
		session: "test-session",
		out:     make(chan []byte, outboundBuffer),
	}

	hub.attach(wt)

	if hub.watcherCount("test-session") != 1 {
		t.Errorf("Expected 1 watcher in session, got %d", hub.watcherCount("test-session"))
	}
}

func TestHubDetach(t *testing.T) {
	hub := NewHub()

	wt := &watcher{
		hub:     hub,
		session: "test-session",
		out:     make(chan []byte, outboundBuffer),
	}

	hub.attach(wt)
	hub.detach(wt)

	if hub.watcherCount("test-session") != 0 {
		t.Error("Session should be empty after last watcher detached")
	}

	// A second detach must not panic or double-close the channel
	hub.detach(wt)
}

func TestHubMultipleWatchers(t *testing.T) {
	hub := NewHub()
	sessionID := "multi-watcher-session"

	first := &watcher{
		hub:     hub,
		session: sessionID,
		out:     make(chan []byte, outboundBuffer),
	}
	second := &watcher{
		hub:     hub,
		session: sessionID,
		out:     make(chan []byte, outboundBuffer),
	}

	hub.attach(first)
	hub.attach(second)

	if hub.watcherCount(sessionID) != 2 {
		t.Errorf("Expected 2 watchers in session, got %d", hub.watcherCount(sessionID))
	}

	hub.detach(first)

	if hub.watcherCount(sessionID) != 1 {
		t.Errorf("Expected 1 watcher remaining, got %d", hub.watcherCount(sessionID))
	}

	select {
	case _, ok := <-second.out:
		if !ok {
			t.Error("Second watcher's channel should still be open")
		}
	default:
	}
}

func TestHubBroadcastToSession(t *testing.T) {
	hub := NewHub()
	sessionID := "broadcast-test"

	wt := &watcher{
		hub:     hub,
		session: sessionID,
		out:     make(chan []byte, outboundBuffer),
	}

	hub.attach(wt)

	state := &service.BoardState{
		Score:   128,
		MaxTile: 64,
		Moves:   17,
	}
	state.Grid[0][0] = 64
	state.Grid[0][1] = 2

	hub.BroadcastToSession(sessionID, state)

	select {
	case data := <-wt.out:
		var message Message
		err := json.Unmarshal(data, &message)
		if err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}

		if message.SessionID != sessionID {
			t.Errorf("Expected sessionID %s, got %s", sessionID, message.SessionID)
		}

		if message.Event != EventStateUpdate {
			t.Errorf("Expected event %q, got %q", EventStateUpdate, message.Event)
		}

		if message.State.Score != 128 || message.State.Grid[0][0] != 64 {
			t.Error("Board state not correctly transmitted")
		}

	case <-time.After(100 * time.Millisecond):
		t.Error("No message received within timeout")
	}
}

func TestHubBroadcastSkipsOtherSessions(t *testing.T) {
	hub := NewHub()

	wt := &watcher{
		hub:     hub,
		session: "watching",
		out:     make(chan []byte, outboundBuffer),
	}
	hub.attach(wt)

	hub.BroadcastToSession("other-session", &service.BoardState{Score: 4})

	select {
	case <-wt.out:
		t.Error("Watcher received a message for a session it is not watching")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubDropsStalledWatcher(t *testing.T) {
	hub := NewHub()
	sessionID := "stall-test"

	// Unbuffered channel with no reader: every send overflows
	wt := &watcher{
		hub:     hub,
		session: sessionID,
		out:     make(chan []byte),
	}
	hub.attach(wt)

	hub.BroadcastToSession(sessionID, &service.BoardState{Score: 8})

	if hub.watcherCount(sessionID) != 0 {
		t.Error("Expected stalled watcher to be dropped")
	}
}

func TestHubBroadcastEvent(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	wt := &watcher{
		hub:     hub,
		session: "event-test",
		out:     make(chan []byte, outboundBuffer),
	}
	hub.attach(wt)

	hub.BroadcastEvent("event-test", EventSessionDeleted, nil)

	select {
	case data := <-wt.out:
		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}
		if message.SessionID != "event-test" {
			t.Errorf("Expected sessionID 'event-test', got %s", message.SessionID)
		}
		if message.Event != EventSessionDeleted {
			t.Errorf("Expected event %q, got %q", EventSessionDeleted, message.Event)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("No event received within timeout")
	}
}

func TestWebSocketUpgrade(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session")
		if sessionID == "" {
			sessionID = "default"
		}
		hub.ServeWS(w, r, sessionID)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?session=ws-test"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	// Give some time for registration
	time.Sleep(50 * time.Millisecond)

	if hub.watcherCount("ws-test") != 1 {
		t.Errorf("Expected 1 watcher in session, got %d", hub.watcherCount("ws-test"))
	}

	conn.Close()

	// Give some time for unregistration
	time.Sleep(10 * time.Millisecond)

	if hub.watcherCount("ws-test") != 0 {
		t.Error("Session should have been cleaned up after WebSocket close")
	}
}

func TestWebSocketMessageReceive(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session")
		if sessionID == "" {
			sessionID = "default"
		}
		hub.ServeWS(w, r, sessionID)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?session=msg-test"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	// Give time for connection to establish
	time.Sleep(10 * time.Millisecond)

	state := &service.BoardState{
		Score:    512,
		MaxTile:  256,
		GameOver: false,
		Moves:    42,
	}
	state.Grid[3][3] = 256

	hub.BroadcastToSession("msg-test", state)

	conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	_, messageData, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read WebSocket message: %v", err)
	}

	var message Message
	err = json.Unmarshal(messageData, &message)
	if err != nil {
		t.Fatalf("Failed to unmarshal message: %v", err)
	}

	if message.SessionID != "msg-test" {
		t.Errorf("Expected sessionID 'msg-test', got %s", message.SessionID)
	}

	if message.State.Grid[3][3] != 256 {
		t.Error("Board grid not correctly received")
	}

	if message.State.Score != 512 || message.State.Moves != 42 {
		t.Error("Board score/moves not correctly received")
	}
}
