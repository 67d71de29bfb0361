// Package service provides the business logic layer for the puzzle server.
//
// The service package implements:
//   - Multi-session game management
//   - Move processing with the engine's no-op semantics preserved
//   - Cumulative per-session move history with pagination
//   - Preset loading for deterministic, seeded sessions
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. ConfigManager manages preset loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the game engine, providing session isolation and the external
// synchronization the engine requires: the engine itself assumes
// single-threaded ownership, so the service serializes every board
// operation behind one lock.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome, err := gameService.Move(ctx, info.ID, "left")
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain
// independent board state. Sessions live in memory for the process
// lifetime; there is no persistence across runs.
package service
