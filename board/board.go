package board

import (
	"fmt"
	"unsafe"

	"github.com/cespare/xxhash"
)

// DefaultDim is the side of the board every engine plays on.
const DefaultDim = 10

// A Board is a square grid of cells stored row-major.
type Board struct {
	dim    int
	cells  []Cell
	stones int
}

func NewBoard(dim int) *Board {
	if dim <= 0 {
		panic(fmt.Sprintf("bad board dimension %d", dim))
	}
	return &Board{dim: dim, cells: make([]Cell, dim*dim)}
}

// FromCells builds a board from a row-major snapshot.
func FromCells(dim int, cells []Cell) (*Board, error) {
	if dim <= 0 || len(cells) != dim*dim {
		return nil, fmt.Errorf("snapshot has %d cells, want %d", len(cells), dim*dim)
	}
	b := NewBoard(dim)
	for i, c := range cells {
		if c != Empty && !c.IsColor() {
			return nil, fmt.Errorf("invalid cell value %d at index %d", c, i)
		}
		b.cells[i] = c
		if c != Empty {
			b.stones++
		}
	}
	return b, nil
}

func (b *Board) Dim() int {
	return b.dim
}

func (b *Board) NumCells() int {
	return len(b.cells)
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.dim && col < b.dim
}

// Index maps a row and column to a linear index. It panics on coordinates
// that are off the board.
func (b *Board) Index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("coordinates (%d, %d) off a %dx%d board", row, col, b.dim, b.dim))
	}
	return row*b.dim + col
}

func (b *Board) RowCol(idx int) (int, int) {
	return idx / b.dim, idx % b.dim
}

func (b *Board) At(row, col int) Cell {
	return b.cells[b.Index(row, col)]
}

func (b *Board) IsEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.cells[row*b.dim+col] == Empty
}

// Apply places a stone. The target must be an empty cell on the board.
func (b *Board) Apply(m Move, c Cell) {
	if !c.IsColor() {
		panic(fmt.Sprintf("cannot apply %v", c))
	}
	idx := b.Index(m.Row, m.Col)
	if b.cells[idx] != Empty {
		panic(fmt.Sprintf("cell %v is already %v", m, b.cells[idx]))
	}
	b.cells[idx] = c
	b.stones++
}

// Clear empties a cell. It undoes Apply.
func (b *Board) Clear(m Move) {
	idx := b.Index(m.Row, m.Col)
	if b.cells[idx] != Empty {
		b.cells[idx] = Empty
		b.stones--
	}
}

func (b *Board) NumStones() int {
	return b.stones
}

func (b *Board) IsFull() bool {
	return b.stones == len(b.cells)
}

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
	b.stones = 0
}

// Cells returns a copy of the row-major cells.
func (b *Board) Cells() []Cell {
	cp := make([]Cell, len(b.cells))
	copy(cp, b.cells)
	return cp
}

func (b *Board) Copy() *Board {
	return &Board{dim: b.dim, cells: b.Cells(), stones: b.stones}
}

func (b *Board) CopyFrom(other *Board) {
	if b.dim != other.dim {
		b.dim = other.dim
		b.cells = make([]Cell, len(other.cells))
	}
	copy(b.cells, other.cells)
	b.stones = other.stones
}

func (b *Board) Equals(other *Board) bool {
	if b.dim != other.dim || b.stones != other.stones {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Digest is a content hash of the raw cells. It is independent of the
// zobrist keys and is used to verify transposition table hits.
func (b *Board) Digest() uint64 {
	if len(b.cells) == 0 {
		return 0
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&b.cells[0])), len(b.cells))
	return xxhash.Sum64(raw)
}
