package search

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/zobrist"
)

func TestEvaluateEmptyBoard(t *testing.T) {
	is := is.New(t)
	is.Equal(Evaluate(board.NewBoard(board.DefaultDim), board.Black), 0)
}

func TestEvaluateSingleStone(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(board.DefaultDim)
	b.Apply(board.Move{Row: 5, Col: 5}, board.Black)
	// each of the eight neighbors sees a run of one on one axis.
	is.Equal(Evaluate(b, board.Black), 8*50)
	is.Equal(Evaluate(b, board.White), -8*50)
}

func TestEvaluateBlockedAxisScoresNothing(t *testing.T) {
	is := is.New(t)
	b := board.MustFromRows(
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"....X.O...",
		"..........",
		"..........",
		"..........",
		"..........",
	)
	// (5,5) sits between the two colors horizontally, so that axis is a
	// wash there; everything else cancels out by symmetry.
	is.Equal(Evaluate(b, board.Black), 0)
}

func TestEvaluateLongRun(t *testing.T) {
	is := is.New(t)
	b := board.MustFromRows(
		"..........",
		"..........",
		"..........",
		"..........",
		"...XXXX...",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	)
	score := Evaluate(b, board.Black)
	// both open ends of the four are worth the maximum.
	is.True(score >= 2*50000)
	is.Equal(Evaluate(b, board.White), -score)
}

func TestEvaluateSymmetric(t *testing.T) {
	is := is.New(t)
	rng := zobrist.NewRNG(77)
	for game := 0; game < 50; game++ {
		b := board.NewBoard(board.DefaultDim)
		stones := rng.Intn(60)
		c := board.Black
		for i := 0; i < stones; i++ {
			m := board.Move{Row: rng.Intn(board.DefaultDim), Col: rng.Intn(board.DefaultDim)}
			if !b.IsEmpty(m.Row, m.Col) {
				continue
			}
			b.Apply(m, c)
			c = c.Opponent()
		}
		is.Equal(Evaluate(b, board.Black), -Evaluate(b, board.White))
	}
}

func TestEvaluateStopsAtCutoff(t *testing.T) {
	is := is.New(t)
	b := board.MustFromRows(
		".XXXX.....",
		"..........",
		".XXXX.....",
		"..........",
		".XXXX.....",
		"..........",
		".XXXX.....",
		"..........",
		".XXXX.....",
		"..........",
	)
	score := Evaluate(b, board.Black)
	is.True(score > EvalCutoff)
	is.Equal(Evaluate(b, board.White), -score)
}
