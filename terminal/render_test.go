package terminal

import (
	"strings"
	"testing"

	"github.com/rmacedo/twenty48/game/engine"
)

func TestRenderPlainGrid(t *testing.T) {
	var grid engine.Grid
	grid[0][0] = 2
	grid[1][2] = 16

	out := Render(grid, false)

	if strings.Contains(out, "\x1b") {
		t.Error("Expected no ANSI escapes with color disabled")
	}
	if !strings.Contains(out, "+----+----+----+----+") {
		t.Errorf("Expected 4-wide cells, got:\n%s", out)
	}
	if !strings.Contains(out, " 2  ") {
		t.Errorf("Expected centered 2, got:\n%s", out)
	}
	if !strings.Contains(out, " 16 ") {
		t.Errorf("Expected centered 16, got:\n%s", out)
	}
}

func TestRenderEmptyCellsAreBlank(t *testing.T) {
	var grid engine.Grid

	out := Render(grid, false)

	if strings.Contains(out, "0") {
		t.Errorf("Expected empty cells to render blank, got:\n%s", out)
	}
}

func TestRenderWidensForLargeTiles(t *testing.T) {
	var grid engine.Grid
	grid[3][3] = 16384

	out := Render(grid, false)

	// 16384 is 5 characters, wider than the 4-character minimum
	if !strings.Contains(out, "+-----+-----+-----+-----+") {
		t.Errorf("Expected 5-wide cells, got:\n%s", out)
	}
	if !strings.Contains(out, "16384") {
		t.Errorf("Expected tile value, got:\n%s", out)
	}
}

func TestRenderColors(t *testing.T) {
	var grid engine.Grid
	grid[0][0] = 2048

	out := Render(grid, true)

	if !strings.Contains(out, tileColors[2048]) {
		t.Errorf("Expected 2048 tile color, got:\n%q", out)
	}
	if !strings.Contains(out, Reset) {
		t.Error("Expected color reset after tile")
	}
}

func TestRenderColorDoesNotAffectWidth(t *testing.T) {
	var grid engine.Grid
	grid[0][0] = 8

	plain := Render(grid, false)
	colored := Render(grid, true)

	stripped := colored
	for _, color := range tileColors {
		stripped = strings.ReplaceAll(stripped, color, "")
	}
	stripped = strings.ReplaceAll(stripped, Reset, "")

	if stripped != plain {
		t.Errorf("Color wrap changed layout:\nplain:\n%s\nstripped:\n%s", plain, stripped)
	}
}

func TestRenderUncoloredBeyond2048(t *testing.T) {
	var grid engine.Grid
	grid[0][0] = 4096

	out := Render(grid, true)

	if strings.Contains(out, "\x1b[38;5;") {
		t.Errorf("Expected 4096 to render without a tile color, got:\n%q", out)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"2", 4, " 2  "},
		{"16", 4, " 16 "},
		{"128", 4, "128 "},
		{"2048", 4, "2048"},
		{"", 4, "    "},
	}

	for _, tt := range tests {
		if got := center(tt.s, tt.width); got != tt.want {
			t.Errorf("center(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
