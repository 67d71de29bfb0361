package engine

import "testing"

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
		ok    bool
	}{
		{"up", Up, true},
		{"down", Down, true},
		{"left", Left, true},
		{"right", Right, true},
		{"w", Up, true},
		{"a", Left, true},
		{"s", Down, true},
		{"d", Right, true},
		{"W", Up, true},
		{"D", Right, true},
		{" up ", Up, true},
		{"UP", Up, true},
		{"", 0, false},
		{"north", 0, false},
		{"q", 0, false},
		{"ws", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseDirection(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseDirection(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{Up, "up"},
		{Down, "down"},
		{Left, "left"},
		{Right, "right"},
		{Direction(42), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", int(tt.dir), got, tt.want)
		}
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range Directions() {
		if !d.Valid() {
			t.Errorf("Expected %v to be valid", d)
		}
	}
	if Direction(-1).Valid() {
		t.Error("Expected Direction(-1) to be invalid")
	}
	if Direction(4).Valid() {
		t.Error("Expected Direction(4) to be invalid")
	}
}
