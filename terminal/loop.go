package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/rmacedo/twenty48/game/engine"
	"github.com/rmacedo/twenty48/game/random"
)

const clearScreen = "\x1b[2J\x1b[H"

// Game drives the interactive turn loop: render, read input, apply the
// move, repeat. Input and output are injectable for tests.
type Game struct {
	board    *engine.Board
	seed     *int64
	useColor bool
	in       *bufio.Reader
	out      io.Writer
}

// NewGame creates a game over an existing board.
func NewGame(board *engine.Board, seed *int64, useColor bool, in io.Reader, out io.Writer) *Game {
	return &Game{
		board:    board,
		seed:     seed,
		useColor: useColor,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Play runs an interactive game on the real terminal. The RNG is seeded
// once up front; restart reuses the same stream so a seeded run stays
// reproducible across restarts.
func Play(seed *int64, useColor bool) error {
	var src random.Source
	if seed != nil {
		src = random.NewSeeded(*seed)
	} else {
		src = random.NewEntropy()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	game := NewGame(engine.NewBoard(src), seed, useColor, os.Stdin, os.Stdout)
	return game.Run()
}

// Run loops until the player quits. Returns the first I/O error, or nil
// on a clean quit.
func (g *Game) Run() error {
	for {
		g.draw()

		if !g.board.HasMoves() {
			g.println("")
			if g.useColor {
				g.println(Bold + "Game over! Press r to restart, q to quit." + Reset)
			} else {
				g.println("Game over! Press r to restart, q to quit.")
			}

			cmd, err := ReadCommand(g.in)
			if err != nil {
				return g.finish(err)
			}
			switch cmd {
			case "r":
				g.board.Restart()
			case "q":
				return nil
			}
			continue
		}

		cmd, err := ReadCommand(g.in)
		if err != nil {
			return g.finish(err)
		}
		switch cmd {
		case "w", "a", "s", "d":
			// a no-op move changes nothing and spawns nothing
			if dir, ok := engine.ParseDirection(string(cmd)); ok {
				g.board.Move(dir)
			}
		case "r":
			g.board.Restart()
		case "q":
			return nil
		}
	}
}

// draw repaints the whole screen for the current board.
func (g *Game) draw() {
	fmt.Fprint(g.out, clearScreen)

	if g.useColor {
		g.println(Bold + "2048 - Tiny (Turn-Based)" + Reset)
	} else {
		g.println("2048 - Tiny (Turn-Based)")
	}
	g.println("Controls: WASD or arrows = move • r = restart • q = quit")
	if g.seed != nil {
		g.println(fmt.Sprintf("Deterministic mode seed = %d", *g.seed))
	}
	g.println("")

	for _, line := range strings.Split(Render(g.board.Grid(), g.useColor), "\n") {
		g.println(line)
	}
	g.println(fmt.Sprintf("Score: %d", g.board.Score()))
}

// println writes a line with an explicit carriage return, required in
// raw mode where \n alone does not return the cursor.
func (g *Game) println(s string) {
	fmt.Fprint(g.out, s+"\r\n")
}

// finish treats EOF as a clean quit so piped input ends the game
// gracefully.
func (g *Game) finish(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}
