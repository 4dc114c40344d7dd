package zobrist

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/domino14/gomoku/board"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a five-in-a-row position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	// posTable[idx][0] is a black stone on idx, posTable[idx][1] a white one.
	posTable [][2]uint64
	// whiteAI is folded into keys searched from white's point of view.
	whiteAI uint64

	boardDim int
}

// NewRNG returns the deterministic random source of an engine. Equal seeds
// give equal streams.
func NewRNG(seed uint64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	// spread the seed so that small seeds do not leave most of the key zero.
	binary.LittleEndian.PutUint64(key[8:16], seed*0x9e3779b97f4a7c15)
	binary.LittleEndian.PutUint64(key[16:24], ^seed)
	binary.LittleEndian.PutUint64(key[24:], seed^0xbf58476d1ce4e5b9)
	return frand.NewCustom(key[:], 1024, 12)
}

// Initialize fills the table from rng. It is never modified afterwards.
func (z *Zobrist) Initialize(boardDim int, rng *frand.RNG) {
	z.boardDim = boardDim
	z.posTable = make([][2]uint64, boardDim*boardDim)
	for i := range z.posTable {
		z.posTable[i][0] = rng.Uint64n(bignum) + 1
		z.posTable[i][1] = rng.Uint64n(bignum) + 1
	}
	z.whiteAI = rng.Uint64n(bignum) + 1
}

func colorIdx(c board.Cell) int {
	if c == board.White {
		return 1
	}
	return 0
}

// Hash XORs the key of every occupied cell. The empty board hashes to 0.
func (z *Zobrist) Hash(b *board.Board) uint64 {
	key := uint64(0)
	dim := b.Dim()
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			c := b.At(row, col)
			if c == board.Empty {
				continue
			}
			key ^= z.posTable[row*dim+col][colorIdx(c)]
		}
	}
	return key
}

// AddMove returns the key after a stone of color c is placed at m. Calling
// it again with the same arguments takes the stone back off.
func (z *Zobrist) AddMove(key uint64, m board.Move, c board.Cell) uint64 {
	return key ^ z.posTable[m.Row*z.boardDim+m.Col][colorIdx(c)]
}

// WithPerspective folds the searching side into a key, since cached scores
// are always relative to the side the engine plays.
func (z *Zobrist) WithPerspective(key uint64, aiColor board.Cell) uint64 {
	if aiColor == board.White {
		return key ^ z.whiteAI
	}
	return key
}
