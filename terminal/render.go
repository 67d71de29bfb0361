package terminal

import (
	"strconv"
	"strings"

	"github.com/rmacedo/twenty48/game/engine"
)

// ANSI sequences for terminal styling. Colors are optional and can be
// disabled with -no-color. Padding is always computed on plain text
// before the color wrap so alignment never breaks.
const (
	Reset = "\x1b[0m"
	Bold  = "\x1b[1m"
	Dim   = "\x1b[2m"
)

// Per-value foreground colors so larger tiles pop. Values beyond 2048
// render uncolored.
var tileColors = map[int]string{
	0:    "\x1b[38;5;246m",
	2:    "\x1b[38;5;250m",
	4:    "\x1b[38;5;248m",
	8:    "\x1b[38;5;214m",
	16:   "\x1b[38;5;208m",
	32:   "\x1b[38;5;202m",
	64:   "\x1b[38;5;196m",
	128:  "\x1b[38;5;33m",
	256:  "\x1b[38;5;39m",
	512:  "\x1b[38;5;75m",
	1024: "\x1b[38;5;141m",
	2048: "\x1b[38;5;201m",
}

// Render returns a monospace grid with consistent cell widths. The cell
// width comes from the widest value currently on the board, minimum 4.
// Centering happens on plain text; the color wrap is applied after, so
// ANSI codes do not affect spacing.
func Render(grid engine.Grid, useColor bool) string {
	maxVal := 0
	for _, row := range grid {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	cellWidth := len(strconv.Itoa(maxVal))
	if cellWidth < 4 {
		cellWidth = 4
	}

	// Horizontal border, built once and reused per row
	hbar := "+" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", engine.Size)

	var b strings.Builder
	b.WriteString(hbar)
	for _, row := range grid {
		b.WriteString("\n|")
		for _, v := range row {
			plain := ""
			if v != 0 {
				plain = strconv.Itoa(v)
			}

			cell := center(plain, cellWidth)

			if color, ok := tileColors[v]; ok && useColor && plain != "" {
				cell = color + cell + Reset
			}

			b.WriteString(cell)
			b.WriteString("|")
		}
		b.WriteString("\n")
		b.WriteString(hbar)
	}

	return b.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
