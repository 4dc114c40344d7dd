package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A Move addresses one intersection by row and column, both zero-based.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when there is nothing left to play.
var NoMove = Move{Row: -1, Col: -1}

var ErrBadCoords = errors.New("bad coordinates")

func (m Move) IsNoMove() bool {
	return m == NoMove
}

// String renders the move as a column letter followed by a one-based row,
// e.g. "E5" for row 4, column 4.
func (m Move) String() string {
	if m.IsNoMove() || m.Col < 0 || m.Col >= 26 || m.Row < 0 {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'A'+m.Col, m.Row+1)
}

// ParseMove parses text coordinates such as "E5" or "e5" for a board of the
// given dimension.
func ParseMove(s string, dim int) (Move, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return NoMove, fmt.Errorf("%w: %q", ErrBadCoords, s)
	}
	col := int(s[0]) - 'A'
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %q", ErrBadCoords, s)
	}
	row--
	if col < 0 || col >= dim || row < 0 || row >= dim {
		return NoMove, fmt.Errorf("%w: %q is off the board", ErrBadCoords, s)
	}
	return Move{Row: row, Col: col}, nil
}
