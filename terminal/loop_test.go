package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rmacedo/twenty48/game/engine"
	"github.com/rmacedo/twenty48/game/random"
)

func TestRunQuitsOnQ(t *testing.T) {
	board := engine.NewBoard(random.NewSeeded(1))
	var out bytes.Buffer

	game := NewGame(board, nil, false, strings.NewReader("q"), &out)
	if err := game.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !strings.Contains(out.String(), "Score: 0") {
		t.Errorf("Expected score line in output, got:\n%s", out.String())
	}
}

func TestRunQuitsOnEOF(t *testing.T) {
	board := engine.NewBoard(random.NewSeeded(1))
	var out bytes.Buffer

	game := NewGame(board, nil, false, strings.NewReader(""), &out)
	if err := game.Run(); err != nil {
		t.Fatalf("Expected clean quit on EOF, got error: %v", err)
	}
}

func TestRunAppliesMoves(t *testing.T) {
	board := engine.NewBoard(random.NewSeeded(42))
	var out bytes.Buffer

	// Play a few moves, then quit. The same moves on a second board with
	// the same seed must produce the same grid.
	game := NewGame(board, nil, false, strings.NewReader("awsdq"), &out)
	if err := game.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	other := engine.NewBoard(random.NewSeeded(42))
	for _, c := range []string{"a", "w", "s", "d"} {
		dir, _ := engine.ParseDirection(c)
		other.Move(dir)
	}

	if board.Grid() != other.Grid() {
		t.Error("Interactive moves diverged from direct board moves")
	}
	if board.Score() != other.Score() {
		t.Errorf("Expected score %d, got %d", other.Score(), board.Score())
	}
}

func TestRunRestart(t *testing.T) {
	board := engine.NewBoard(random.NewSeeded(7))
	var out bytes.Buffer

	game := NewGame(board, nil, false, strings.NewReader("arq"), &out)
	if err := game.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if board.Score() != 0 {
		t.Errorf("Expected score 0 after restart, got %d", board.Score())
	}
}

func TestRunIgnoresUnknownInput(t *testing.T) {
	board := engine.NewBoard(random.NewSeeded(7))
	before := board.Grid()
	var out bytes.Buffer

	game := NewGame(board, nil, false, strings.NewReader("xz!q"), &out)
	if err := game.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if board.Grid() != before {
		t.Error("Unknown input changed the board")
	}
}

func TestDrawShowsSeedLine(t *testing.T) {
	board := engine.NewBoard(random.NewSeeded(123))
	var out bytes.Buffer
	seed := int64(123)

	game := NewGame(board, &seed, false, strings.NewReader("q"), &out)
	if err := game.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !strings.Contains(out.String(), "Deterministic mode seed = 123") {
		t.Errorf("Expected seed line in output, got:\n%s", out.String())
	}
}
