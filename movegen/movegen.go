// Package movegen proposes the plausible next moves of a position and ranks
// them for the search.
package movegen

import (
	"sort"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/rules"
)

const (
	// NeighborhoodRadius is the Chebyshev distance from a stone within which
	// empty cells are considered.
	NeighborhoodRadius = 2
	// OpeningSpread is how far the first stone may stray from the center.
	OpeningSpread = 2
	// OpeningMargin keeps the first stone this many lines away from the edge.
	OpeningMargin = 2
)

// Priority components.
const (
	WinPriority      = 100000
	BlockPriority    = 90000
	BlockWeight      = 1.5
	CentralityWeight = 5
)

// Generator generates candidate moves. Its random source only picks the
// opening stone; every other position yields a fixed candidate order.
type Generator struct {
	rng *frand.RNG
}

func NewGenerator(rng *frand.RNG) *Generator {
	return &Generator{rng: rng}
}

// Candidates returns the moves worth considering on b. On an empty board this
// is one randomized cell near the center. Otherwise it is every empty cell
// within NeighborhoodRadius of a stone, with the center first if it is still
// free.
func (g *Generator) Candidates(b *board.Board) []board.Move {
	dim := b.Dim()
	center := dim / 2
	if b.NumStones() == 0 {
		row := center + g.rng.Intn(2*OpeningSpread+1) - OpeningSpread
		col := center + g.rng.Intn(2*OpeningSpread+1) - OpeningSpread
		row = lo.Clamp(row, OpeningMargin, dim-1-OpeningMargin)
		col = lo.Clamp(col, OpeningMargin, dim-1-OpeningMargin)
		return []board.Move{{Row: row, Col: col}}
	}

	considered := make([]bool, b.NumCells())
	moves := make([]board.Move, 0, 32)
	if b.IsEmpty(center, center) {
		considered[b.Index(center, center)] = true
		moves = append(moves, board.Move{Row: center, Col: center})
	}
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if b.At(row, col) == board.Empty {
				continue
			}
			for dr := -NeighborhoodRadius; dr <= NeighborhoodRadius; dr++ {
				for dc := -NeighborhoodRadius; dc <= NeighborhoodRadius; dc++ {
					nr, nc := row+dr, col+dc
					if !b.IsEmpty(nr, nc) {
						continue
					}
					idx := b.Index(nr, nc)
					if considered[idx] {
						continue
					}
					considered[idx] = true
					moves = append(moves, board.Move{Row: nr, Col: nc})
				}
			}
		}
	}
	return moves
}

// Priority scores one candidate for aiColor: immediate wins first, then
// blocks of immediate losses, then threats (blocking weighted above
// attacking), then closeness to the center.
func Priority(b *board.Board, m board.Move, aiColor board.Cell) float64 {
	opp := aiColor.Opponent()
	p := 0.0
	if rules.WinningMove(b, aiColor, m) {
		p += WinPriority
	}
	if rules.WinningMove(b, opp, m) {
		p += BlockPriority
	}
	p += float64(rules.ThreatLevel(b, aiColor, m.Row, m.Col))
	p += BlockWeight * float64(rules.ThreatLevel(b, opp, m.Row, m.Col))
	center := b.Dim() / 2
	dist := abs(m.Row-center) + abs(m.Col-center)
	p += float64((b.Dim()-dist)*CentralityWeight)
	return p
}

// Priorities returns the priority of every move, in order.
func Priorities(moves []board.Move, b *board.Board, aiColor board.Cell) []float64 {
	return lo.Map(moves, func(m board.Move, _ int) float64 {
		return Priority(b, m, aiColor)
	})
}

type playSorter struct {
	priorities []float64
	moves      []board.Move
}

func (p playSorter) Len() int { return len(p.moves) }
func (p playSorter) Swap(i, j int) {
	p.priorities[i], p.priorities[j] = p.priorities[j], p.priorities[i]
	p.moves[i], p.moves[j] = p.moves[j], p.moves[i]
}
func (p playSorter) Less(i, j int) bool {
	return p.priorities[i] > p.priorities[j]
}

// Prioritize sorts moves in place, highest priority first. Equal priorities
// keep their generation order.
func Prioritize(moves []board.Move, b *board.Board, aiColor board.Cell) {
	sort.Stable(playSorter{priorities: Priorities(moves, b, aiColor), moves: moves})
}

// Ordered generates, prioritizes and caps the candidates of b.
func (g *Generator) Ordered(b *board.Board, aiColor board.Cell, width int) []board.Move {
	moves := g.Candidates(b)
	Prioritize(moves, b, aiColor)
	if width > 0 && len(moves) > width {
		moves = moves[:width]
	}
	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
