// Package mcp provides a Model Context Protocol interface to the puzzle server.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for board operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - board_state: Get current board with a text grid rendering
//   - move: Execute a single slide
//   - bulk_move: Execute multiple slides in sequence
//   - restart_game: Restart the board within the session
//   - move_history: Retrieve move history with pagination
//   - create_session: Create new game session with preset selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available presets
//   - game_instructions: Complete rules and strategy notes
//
// Architecture:
//
// The client is a thin proxy: every tool call translates into an HTTP
// request against the REST API, so the MCP surface and the REST surface
// can never disagree about game semantics.
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: POST /mcp endpoint on the main server
package mcp
