package terminal

import (
	"bufio"
	"io"
	"strings"
	"testing"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestReadCommandKeys(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"w", "w"},
		{"a", "a"},
		{"s", "s"},
		{"d", "d"},
		{"r", "r"},
		{"q", "q"},
		{"W", "w"},
		{"D", "d"},
		{"x", ""},
		{"1", ""},
		{"\x03", "q"}, // Ctrl-C
	}

	for _, tt := range tests {
		got, err := ReadCommand(reader(tt.input))
		if err != nil {
			t.Fatalf("ReadCommand(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ReadCommand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestReadCommandArrows(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"\x1b[A", "w"}, // up
		{"\x1b[B", "s"}, // down
		{"\x1b[C", "d"}, // right
		{"\x1b[D", "a"}, // left
		{"\x1b[Z", ""},  // unknown sequence
		{"\x1bx", ""},   // bare escape followed by junk
	}

	for _, tt := range tests {
		got, err := ReadCommand(reader(tt.input))
		if err != nil {
			t.Fatalf("ReadCommand(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ReadCommand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestReadCommandEOF(t *testing.T) {
	_, err := ReadCommand(reader(""))
	if err != io.EOF {
		t.Errorf("Expected io.EOF on empty input, got %v", err)
	}
}

func TestReadCommandTruncatedEscape(t *testing.T) {
	got, err := ReadCommand(reader("\x1b"))
	if err != nil {
		t.Fatalf("Expected truncated escape to be ignored, got error: %v", err)
	}
	if got != "" {
		t.Errorf("Expected empty command for truncated escape, got %q", got)
	}
}

func TestReadCommandSequence(t *testing.T) {
	in := reader("wa\x1b[Bq")
	want := []Command{"w", "a", "s", "q"}

	for i, expected := range want {
		got, err := ReadCommand(in)
		if err != nil {
			t.Fatalf("ReadCommand #%d returned error: %v", i, err)
		}
		if got != expected {
			t.Errorf("ReadCommand #%d = %q, want %q", i, got, expected)
		}
	}
}
