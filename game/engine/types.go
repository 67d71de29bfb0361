package engine

import "strings"

// Size is the fixed board dimension. The grid is never resized.
const Size = 4

// FourTileProbability is the chance a spawned tile is a 4 instead of a 2.
const FourTileProbability = 0.10

// MaxBulkMoves caps how many directions a single bulk request may carry.
const MaxBulkMoves = 50

// Grid is a snapshot of the board cells. 0 means empty; every non-zero
// value is a power of two.
type Grid [Size][Size]int

// Direction identifies one of the four slide directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	directionCount
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d < directionCount
}

// Directions lists the four directions in a stable order.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// ParseDirection maps a textual command to a Direction. It accepts the
// long names ("up", "left", ...) and the WASD keys ("w" up, "a" left,
// "s" down, "d" right), case-insensitive. The second return value is
// false for anything else.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w":
		return Up, true
	case "down", "s":
		return Down, true
	case "left", "a":
		return Left, true
	case "right", "d":
		return Right, true
	default:
		return directionCount, false
	}
}

// MoveResult describes the outcome of one move attempt: whether anything
// changed and the score gained by merges in that move.
type MoveResult struct {
	Moved     bool `json:"moved"`
	ScoreGain int  `json:"score_gain"`
}
