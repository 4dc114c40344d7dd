package search

import (
	"time"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/rules"
)

// Tactic says which stage of SelectMove produced a move.
type Tactic uint8

const (
	TacticNone Tactic = iota
	TacticOpening
	TacticWin
	TacticBlock
	TacticThreat
	TacticSearch
)

func (t Tactic) String() string {
	switch t {
	case TacticOpening:
		return "opening"
	case TacticWin:
		return "win"
	case TacticBlock:
		return "block"
	case TacticThreat:
		return "threat"
	case TacticSearch:
		return "search"
	}
	return "none"
}

type Result struct {
	Move    board.Move
	Score   int
	Tactic  Tactic
	Nodes   uint64
	Elapsed time.Duration
}

// SelectMove picks aiColor's move on b. In order: win on the spot, stop the
// opponent's immediate win, answer the opponent's most serious threat, and
// otherwise search. A full board yields NoMove. b is left unchanged.
func (s *Solver) SelectMove(b *board.Board, aiColor board.Cell) Result {
	start := time.Now()
	s.nodes.Store(0)
	res := s.selectMove(b, aiColor)
	res.Nodes = s.nodes.Load()
	res.Elapsed = time.Since(start)
	return res
}

func (s *Solver) selectMove(b *board.Board, aiColor board.Cell) Result {
	if b.IsFull() {
		return Result{Move: board.NoMove, Tactic: TacticNone}
	}
	if b.NumStones() == 0 {
		return Result{Move: s.movegen.Candidates(b)[0], Tactic: TacticOpening}
	}
	opp := aiColor.Opponent()
	if m, ok := findWinningMove(b, aiColor); ok {
		return Result{Move: m, Score: WinScore, Tactic: TacticWin}
	}
	if m, ok := findWinningMove(b, opp); ok {
		return Result{Move: m, Tactic: TacticBlock}
	}
	if m, level := mostSeriousThreat(b, opp); level >= rules.SeriousThreat {
		return Result{Move: m, Score: -level, Tactic: TacticThreat}
	}

	moves := s.movegen.Ordered(b, aiColor, s.opts.RootWidth)
	scored := s.analyze(b, aiColor, moves)
	best := scored[0]
	for _, sm := range scored[1:] {
		if sm.Score > best.Score {
			best = sm
		}
	}
	return Result{Move: best.Move, Score: best.Score, Tactic: TacticSearch}
}

// findWinningMove returns the first empty cell, in row-major order, that
// completes a five for player.
func findWinningMove(b *board.Board, player board.Cell) (board.Move, bool) {
	dim := b.Dim()
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			m := board.Move{Row: row, Col: col}
			if b.IsEmpty(row, col) && rules.WinningMove(b, player, m) {
				return m, true
			}
		}
	}
	return board.NoMove, false
}

// mostSeriousThreat returns the empty cell with the highest threat level for
// player. The first such cell in row-major order wins ties.
func mostSeriousThreat(b *board.Board, player board.Cell) (board.Move, int) {
	dim := b.Dim()
	best, bestLevel := board.NoMove, 0
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if level := rules.ThreatLevel(b, player, row, col); level > bestLevel {
				best, bestLevel = board.Move{Row: row, Col: col}, level
			}
		}
	}
	return best, bestLevel
}
