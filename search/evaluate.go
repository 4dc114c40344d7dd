package search

import (
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/rules"
)

// EvalCutoff is the magnitude past which Evaluate stops scanning; the
// position is decided as far as the search is concerned.
const EvalCutoff = 500000

// Contribution of a run of n adjacent stones, for n = 0..4.
var runValues = [...]int{0, 50, 500, 5000, 50000}

// Evaluate statically scores b from aiColor's point of view. For every empty
// cell and each of the four axes it looks at the runs touching the cell on
// both sides. A run of only the AI's stones adds to the score, a run of only
// the opponent's subtracts; a cell touched by both colors on an axis adds
// nothing for that axis.
func Evaluate(b *board.Board, aiColor board.Cell) int {
	opp := aiColor.Opponent()
	dim := b.Dim()
	score := 0
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if b.At(row, col) != board.Empty {
				continue
			}
			for _, d := range rules.Directions {
				ai, op := 0, 0
				for _, sign := range [2]int{1, -1} {
					n, c := adjacentRun(b, row, col, d.DRow*sign, d.DCol*sign)
					switch c {
					case aiColor:
						ai += n
					case opp:
						op += n
					}
				}
				if ai > 0 && op == 0 {
					score += runValue(ai)
				} else if op > 0 && ai == 0 {
					score -= runValue(op)
				}
			}
			if score > EvalCutoff || score < -EvalCutoff {
				return score
			}
		}
	}
	return score
}

func runValue(n int) int {
	if n >= len(runValues) {
		return runValues[len(runValues)-1]
	}
	return runValues[n]
}

// adjacentRun returns the color of the stone next to (row, col) in the given
// direction and how many stones of that color follow in a row, at most
// WinLength-1.
func adjacentRun(b *board.Board, row, col, dr, dc int) (int, board.Cell) {
	r, c := row+dr, col+dc
	if !b.InBounds(r, c) {
		return 0, board.Empty
	}
	first := b.At(r, c)
	if first == board.Empty {
		return 0, board.Empty
	}
	n := 0
	for n < rules.WinLength-1 && b.InBounds(r, c) && b.At(r, c) == first {
		n++
		r += dr
		c += dc
	}
	return n, first
}
