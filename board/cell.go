package board

import (
	"fmt"
	"strings"
)

// A Cell is the content of a single intersection on the board.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// IsColor is true for the two player colors.
func (c Cell) IsColor() bool {
	return c == Black || c == White
}

// Opponent returns the other of the two player colors. The opponent of a
// color never depends on which side the computer plays.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	panic(fmt.Sprintf("no opponent for %v", c))
}

// Symbol is the single character used in board text.
func (c Cell) Symbol() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	}
	return '.'
}

// ParseColor parses a player color name.
func ParseColor(s string) (Cell, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b", "x":
		return Black, nil
	case "white", "w", "o":
		return White, nil
	}
	return Empty, fmt.Errorf("unknown color %q", s)
}

func cellFromSymbol(r rune) (Cell, bool) {
	switch r {
	case '.', '-', '_':
		return Empty, true
	case 'X', 'x', 'B', 'b':
		return Black, true
	case 'O', 'o', 'W', 'w':
		return White, true
	}
	return Empty, false
}
