// Package websocket provides real-time board state broadcasting.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Automatic board state broadcasting on changes
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// pair of goroutines for reading and writing.
//
// Clients are watchers: moves are submitted through the REST API, and
// every state change is pushed to all clients connected to the same
// session. Incoming WebSocket messages only keep the connection alive.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a successful move
//	hub.BroadcastToSession(sessionID, state)
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=ab3f)
// when establishing the connection. State updates are broadcast only to
// clients connected to the same session.
package websocket
