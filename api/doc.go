// Package api provides the HTTP REST surface for the puzzle server.
//
// The api package implements:
//   - RESTful endpoints for board operations
//   - Session management endpoints
//   - Preset listing, loading, and creation
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional config_id in body)
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current board state
//   - POST /api/sessions/{id}/move - Execute one move {"direction": "left"}
//   - POST /api/sessions/{id}/bulk-move - Execute moves {"moves": ["left","up"]}
//   - POST /api/sessions/{id}/restart - Restart the board, keeping the RNG stream
//   - GET /api/sessions/{id}/history - Paginated move history
//
// Configuration:
//   - GET /api/configs - List available presets
//   - GET /api/configs/{name} - Get a preset
//   - POST /api/configs - Save a new preset
//
// Other:
//   - GET /ws?session={id} - WebSocket upgrade for state updates
//   - GET /health - Health check
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Errors are returned as JSON with
// appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
//
// A move with an unrecognized direction is not an error: the response is
// HTTP 200 with moved=false and an unchanged board, mirroring the
// engine's soft no-op semantics.
package api
