// Package terminal implements the interactive text interface.
//
// The board renders as a monospace table with per-value ANSI colors,
// sized to the widest tile on the board. Input is read one keypress at
// a time in raw mode: WASD, ANSI arrow sequences, r to restart, q or
// Ctrl-C to quit. Unknown keys are ignored, and a move that changes
// nothing simply redraws the same board.
package terminal
