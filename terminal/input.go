package terminal

import (
	"bufio"
	"io"
)

// Command is a single normalized keypress: one of "w", "a", "s", "d",
// "r", "q", or "" for input the game ignores.
type Command string

// Arrow key escape sequences map to their WASD equivalents.
var arrowKeys = map[byte]Command{
	'A': "w", // up
	'B': "s", // down
	'C': "d", // right
	'D': "a", // left
}

// ReadCommand reads one command from the input. It handles plain keys
// and three-byte ANSI arrow sequences. Ctrl-C quits.
func ReadCommand(in *bufio.Reader) (Command, error) {
	ch, err := in.ReadByte()
	if err != nil {
		return "", err
	}

	switch ch {
	case 0x03: // Ctrl-C in raw mode
		return "q", nil
	case 0x1b: // possible arrow sequence
		nxt, err := in.ReadByte()
		if err != nil {
			if err == io.EOF {
				return "", nil
			}
			return "", err
		}
		if nxt != '[' {
			return "", nil
		}
		code, err := in.ReadByte()
		if err != nil {
			if err == io.EOF {
				return "", nil
			}
			return "", err
		}
		return arrowKeys[code], nil
	}

	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}

	switch ch {
	case 'w', 'a', 's', 'd', 'r', 'q':
		return Command(ch), nil
	}
	return "", nil
}
