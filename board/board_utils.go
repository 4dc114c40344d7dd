package board

import (
	"fmt"
	"strings"
)

// ToDisplayText renders the board as a text grid with column letters across
// the top and one-based row numbers down the side.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	n := b.dim
	sb.WriteString("   ")
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	sb.WriteString("\n")
	sb.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%2d|", i+1))
		for j := 0; j < n; j++ {
			sb.WriteByte(b.cells[i*n+j].Symbol())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	return "\n" + sb.String()
}

// String is the compact form: one row per line, no decorations.
func (b *Board) String() string {
	var sb strings.Builder
	for i := 0; i < b.dim; i++ {
		for j := 0; j < b.dim; j++ {
			sb.WriteByte(b.cells[i*b.dim+j].Symbol())
		}
		if i < b.dim-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// FromRows builds a board from one string per row. '.' is empty, 'X' or 'B'
// is black, 'O' or 'W' is white. Spaces are ignored.
func FromRows(rows ...string) (*Board, error) {
	dim := len(rows)
	if dim == 0 {
		return nil, fmt.Errorf("no rows")
	}
	cells := make([]Cell, 0, dim*dim)
	for i, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != dim {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i+1, len(row), dim)
		}
		for _, r := range row {
			c, ok := cellFromSymbol(r)
			if !ok {
				return nil, fmt.Errorf("row %d: unknown symbol %q", i+1, r)
			}
			cells = append(cells, c)
		}
	}
	return FromCells(dim, cells)
}

// MustFromRows is FromRows for fixtures known to be well formed.
func MustFromRows(rows ...string) *Board {
	b, err := FromRows(rows...)
	if err != nil {
		panic(err)
	}
	return b
}
