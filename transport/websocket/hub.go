package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rmacedo/twenty48/game/service"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Per-watcher outbound buffer. A watcher that falls this far behind
	// gets disconnected.
	outboundBuffer = 16
)

// Event names carried in Message.Event.
const (
	EventStateUpdate    = "state_update"
	EventSessionDeleted = "session_deleted"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// Message is the wire format pushed to watchers.
type Message struct {
	SessionID string              `json:"session_id"`
	State     *service.BoardState `json:"state,omitempty"`
	Event     string              `json:"event,omitempty"`
	Data      interface{}         `json:"data,omitempty"`
}

// watcher is one connected spectator of a session. Watchers are
// read-only; moves go through the REST API.
type watcher struct {
	hub     *Hub
	conn    *websocket.Conn
	out     chan []byte
	session string
}

// Hub fans board updates out to the watchers of each session. State
// updates are pushed synchronously from the API handlers; lifecycle
// events queue through the events channel and are drained by Run.
type Hub struct {
	mu       sync.RWMutex
	watchers map[string]map[*watcher]struct{}

	events chan Message
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		watchers: make(map[string]map[*watcher]struct{}),
		events:   make(chan Message, outboundBuffer),
	}
}

// Run drains queued events. It never returns.
func (h *Hub) Run() {
	for msg := range h.events {
		h.fanOut(&msg)
	}
}

// ServeWS upgrades an HTTP request and attaches the connection as a
// watcher of the given session.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, sessionID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	wt := &watcher{
		hub:     h,
		conn:    conn,
		out:     make(chan []byte, outboundBuffer),
		session: sessionID,
	}

	h.attach(wt)

	go wt.writeLoop()
	go wt.readLoop()
}

// BroadcastToSession pushes a board state to every watcher of a session.
func (h *Hub) BroadcastToSession(sessionID string, state *service.BoardState) {
	h.fanOut(&Message{
		SessionID: sessionID,
		State:     state,
		Event:     EventStateUpdate,
	})
}

// BroadcastEvent queues a lifecycle event for a session's watchers.
func (h *Hub) BroadcastEvent(sessionID string, event string, data interface{}) {
	h.events <- Message{
		SessionID: sessionID,
		Event:     event,
		Data:      data,
	}
}

// attach registers a watcher with its session.
func (h *Hub) attach(wt *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.watchers[wt.session] == nil {
		h.watchers[wt.session] = make(map[*watcher]struct{})
	}
	h.watchers[wt.session][wt] = struct{}{}

	log.Printf("Watcher attached to session %s (total: %d)", wt.session, len(h.watchers[wt.session]))
}

// detach removes a watcher and closes its outbound channel. Detaching a
// watcher twice is harmless; only the first call finds it in the map.
func (h *Hub) detach(wt *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.watchers[wt.session]
	if !ok {
		return
	}
	if _, ok := session[wt]; !ok {
		return
	}

	delete(session, wt)
	close(wt.out)
	if len(session) == 0 {
		delete(h.watchers, wt.session)
	}

	log.Printf("Watcher detached from session %s (remaining: %d)", wt.session, len(session))
}

// watcherCount reports how many watchers a session currently has.
func (h *Hub) watcherCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers[sessionID])
}

// fanOut marshals a message once and delivers it to every watcher of
// the target session. Watchers with a full buffer are dropped.
func (h *Hub) fanOut(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal WebSocket message: %v", err)
		return
	}

	var stale []*watcher

	h.mu.RLock()
	for wt := range h.watchers[msg.SessionID] {
		select {
		case wt.out <- data:
		default:
			stale = append(stale, wt)
		}
	}
	h.mu.RUnlock()

	for _, wt := range stale {
		h.detach(wt)
	}
}

// readLoop discards inbound frames and keeps the connection alive until
// the peer goes away.
func (wt *watcher) readLoop() {
	defer func() {
		wt.hub.detach(wt)
		wt.conn.Close()
	}()

	wt.conn.SetReadLimit(maxMessageSize)
	wt.conn.SetReadDeadline(time.Now().Add(pongWait))
	wt.conn.SetPongHandler(func(string) error {
		wt.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := wt.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}
	}
}

// writeLoop forwards outbound messages and pings the peer to keep the
// connection fresh.
func (wt *watcher) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wt.conn.Close()
	}()

	for {
		select {
		case data, ok := <-wt.out:
			wt.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Detached by the hub
				wt.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := wt.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			wt.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wt.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
