// Package engine implements the board mechanics for a 4x4 sliding-tile
// puzzle played by 2048 rules.
//
// The engine package implements:
//   - Slide/merge mechanics with a single merge per tile per move
//   - Tile spawning (2 with 90% probability, 4 with 10%) on empty cells
//   - Game-over detection (no empty cells and no equal adjacent pairs)
//   - Restart that reuses the existing random stream for reproducibility
//
// Core Types:
//
// Board owns the grid, the score, and a random.Source. MoveResult reports
// whether a move changed anything and how much score it gained. Direction
// names the four slide directions; ParseDirection maps textual commands
// (including WASD) onto them.
//
// Usage:
//
//	rng := random.NewSeeded(123)
//	board := engine.NewBoard(rng)
//
//	result := board.Move(engine.Left)
//	if !board.HasMoves() {
//		// game over; board.Restart() starts a fresh game on the same stream
//	}
//
// Game Rules:
//
// A move compacts each line toward the chosen direction, merges equal
// neighbors once (each merge of two v tiles scores 2v), and pads with
// zeros. A move that changes nothing leaves the grid and score untouched
// and spawns no tile; an unknown direction behaves the same way. The
// engine performs no I/O and expects single-threaded ownership.
package engine
