package engine

import "github.com/rmacedo/twenty48/game/random"

// Board owns the 4x4 grid, the cumulative score, and the random source
// used for tile spawns. It performs no I/O and assumes single-threaded
// ownership; callers that share a Board across goroutines must add their
// own locking.
type Board struct {
	grid  Grid
	score int
	rng   random.Source
}

// NewBoard creates a board seeded with two starting tiles. The random
// source is kept for the lifetime of the board: Restart continues the
// same stream rather than reseeding, so a fixed seed reproduces an
// entire session including restarts.
func NewBoard(rng random.Source) *Board {
	b := &Board{rng: rng}
	b.initialize()
	return b
}

func (b *Board) initialize() {
	b.grid = Grid{}
	b.score = 0
	b.spawnTile()
	b.spawnTile()
}

// Restart clears the grid and score and spawns two fresh tiles, reusing
// the existing random stream.
func (b *Board) Restart() {
	b.initialize()
}

// Grid returns a copy of the current cells.
func (b *Board) Grid() Grid {
	return b.grid
}

// Score returns the cumulative score: the sum of every merge result
// produced since the last restart.
func (b *Board) Score() int {
	return b.score
}

// cellAt maps position j along line i, in slide order, to a grid
// coordinate. Expressing all four directions through one transform keeps
// the read and write paths symmetric, so a right move is exactly a left
// move on the mirrored grid.
func cellAt(dir Direction, i, j int) (row, col int) {
	switch dir {
	case Left:
		return i, j
	case Right:
		return i, Size - 1 - j
	case Up:
		return j, i
	default: // Down
		return Size - 1 - j, i
	}
}

// Move slides all tiles in the given direction. Each of the four lines is
// compacted (zeros removed), merged with a single left-to-right scan so a
// freshly merged tile can never merge again in the same move, and padded
// back to length four. An invalid direction is a no-op, not an error.
//
// The grid and score change only when at least one cell differs from the
// pre-move grid; only then is a new tile spawned.
func (b *Board) Move(dir Direction) MoveResult {
	if !dir.Valid() {
		return MoveResult{}
	}

	before := b.grid
	scoreGain := 0

	for i := 0; i < Size; i++ {
		var line [Size]int
		for j := 0; j < Size; j++ {
			r, c := cellAt(dir, i, j)
			line[j] = b.grid[r][c]
		}

		merged, gain := mergeLine(line)
		scoreGain += gain

		for j := 0; j < Size; j++ {
			r, c := cellAt(dir, i, j)
			b.grid[r][c] = merged[j]
		}
	}

	moved := b.grid != before
	if moved {
		b.score += scoreGain
		b.spawnTile()
	}

	return MoveResult{Moved: moved, ScoreGain: scoreGain}
}

// mergeLine compacts a line given in slide order, merges equal neighbors
// once, and pads with trailing zeros. It returns the new line and the
// score gained (2v for every merged pair of value v).
func mergeLine(line [Size]int) ([Size]int, int) {
	compact := make([]int, 0, Size)
	for _, v := range line {
		if v != 0 {
			compact = append(compact, v)
		}
	}

	var out [Size]int
	gain := 0
	k := 0
	for j := 0; j < len(compact); {
		if j+1 < len(compact) && compact[j] == compact[j+1] {
			v := compact[j] * 2
			out[k] = v
			gain += v
			j += 2 // consumed pair; the merged tile is done for this move
		} else {
			out[k] = compact[j]
			j++
		}
		k++
	}

	return out, gain
}

// HasMoves reports whether any move can still change the board: an empty
// cell exists, or two equal tiles are adjacent. Checking only the right
// and down neighbor of each cell covers every adjacent pair exactly once.
func (b *Board) HasMoves() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.grid[r][c]
			if v == 0 {
				return true
			}
			if r+1 < Size && b.grid[r+1][c] == v {
				return true
			}
			if c+1 < Size && b.grid[r][c+1] == v {
				return true
			}
		}
	}
	return false
}

// spawnTile places a 2 (90%) or a 4 (10%) on a uniformly chosen empty
// cell. With no empty cells it silently does nothing; normal play never
// reaches that state because a move only spawns after it changed the
// grid, but defensive callers must not be surprised.
func (b *Board) spawnTile() {
	type pos struct{ r, c int }
	empties := make([]pos, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.grid[r][c] == 0 {
				empties = append(empties, pos{r, c})
			}
		}
	}
	if len(empties) == 0 {
		return
	}

	p := empties[b.rng.IntN(len(empties))]
	if b.rng.Float64() < FourTileProbability {
		b.grid[p.r][p.c] = 4
	} else {
		b.grid[p.r][p.c] = 2
	}
}

// MaxTile returns the largest tile value on the board.
func (b *Board) MaxTile() int {
	max := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.grid[r][c] > max {
				max = b.grid[r][c]
			}
		}
	}
	return max
}

// SetGrid replaces the cells, leaving score and random stream untouched.
// Intended for tests and tooling that need to stage a specific position.
func (b *Board) SetGrid(g Grid) {
	b.grid = g
}
