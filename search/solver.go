// Package search implements the minimax search with alpha-beta pruning that
// picks the engine's moves, along with its static evaluation and
// transposition table.
package search

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/movegen"
	"github.com/domino14/gomoku/rules"
	"github.com/domino14/gomoku/zobrist"
)

const (
	// WinScore is the value of a won position, before the distance
	// adjustment. It is larger than any static evaluation.
	WinScore = 10000000
	Infinity = 1 << 30
)

type Options struct {
	MaxDepth    int
	RootWidth   int
	SearchWidth int
	// NarrowWidth replaces SearchWidth when two or fewer plies remain.
	NarrowWidth int
	// Nodes with remaining depth <= MaxDepth-CacheDepthMargin use the table.
	CacheDepthMargin   int
	Threads            int
	TranspositionTable bool
	// Pruning off turns the search into plain minimax.
	Pruning bool
}

func DefaultOptions() Options {
	return Options{
		MaxDepth:           4,
		RootWidth:          10,
		SearchWidth:        25,
		NarrowWidth:        20,
		CacheDepthMargin:   2,
		Threads:            1,
		TranspositionTable: true,
		Pruning:            true,
	}
}

type Solver struct {
	zobrist *zobrist.Zobrist
	movegen *movegen.Generator
	ttable  *TranspositionTable
	opts    Options

	nodes atomic.Uint64
}

func NewSolver(z *zobrist.Zobrist, gen *movegen.Generator, tt *TranspositionTable, opts Options) *Solver {
	if opts.Threads < 1 {
		opts.Threads = 1
	}
	return &Solver{zobrist: z, movegen: gen, ttable: tt, opts: opts}
}

func (s *Solver) Options() Options {
	return s.opts
}

func (s *Solver) TranspositionTable() *TranspositionTable {
	return s.ttable
}

func (s *Solver) Generator() *movegen.Generator {
	return s.movegen
}

func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// Search returns the minimax value of b from aiColor's point of view with
// depth plies left to search. maximizing is true when aiColor is to move.
// b is restored before Search returns.
func (s *Solver) Search(b *board.Board, depth, alpha, beta int, maximizing bool, aiColor board.Cell) int {
	key := s.zobrist.WithPerspective(s.zobrist.Hash(b), aiColor)
	return s.search(b, key, board.NoMove, depth, alpha, beta, maximizing, aiColor)
}

// search is Search with the position key maintained incrementally. last is
// the move that produced b, or NoMove if unknown.
func (s *Solver) search(b *board.Board, key uint64, last board.Move, depth, alpha, beta int,
	maximizing bool, aiColor board.Cell) int {

	s.nodes.Add(1)
	cacheable := s.opts.TranspositionTable && s.ttable != nil &&
		depth <= s.opts.MaxDepth-s.opts.CacheDepthMargin
	var check uint64
	if cacheable {
		check = b.Digest()
		if entry, ok := s.ttable.Lookup(key, check); ok && entry.Depth() >= depth {
			return entry.Score()
		}
	}

	ply := s.opts.MaxDepth - depth
	switch s.winner(b, last, aiColor) {
	case aiColor:
		return WinScore - ply
	case aiColor.Opponent():
		return -WinScore + ply
	}

	if depth <= 0 || b.IsFull() {
		score := Evaluate(b, aiColor)
		if cacheable {
			s.ttable.Store(key, check, score, depth)
		}
		return score
	}

	width := s.opts.SearchWidth
	if depth <= 2 {
		width = s.opts.NarrowWidth
	}
	moves := s.movegen.Ordered(b, aiColor, width)

	var best int
	if maximizing {
		best = -Infinity
		for _, m := range moves {
			score := s.child(b, key, m, aiColor, depth, alpha, beta, false, aiColor)
			best = max(best, score)
			if s.opts.Pruning {
				alpha = max(alpha, score)
				if beta <= alpha {
					break
				}
			}
		}
	} else {
		best = Infinity
		opp := aiColor.Opponent()
		for _, m := range moves {
			score := s.child(b, key, m, opp, depth, alpha, beta, true, aiColor)
			best = min(best, score)
			if s.opts.Pruning {
				beta = min(beta, score)
				if beta <= alpha {
					break
				}
			}
		}
	}
	if cacheable {
		s.ttable.Store(key, check, best, depth)
	}
	return best
}

// child plays m for color, searches the resulting position one ply shallower
// and takes m back.
func (s *Solver) child(b *board.Board, key uint64, m board.Move, color board.Cell, depth, alpha, beta int,
	maximizing bool, aiColor board.Cell) int {

	b.Apply(m, color)
	defer b.Clear(m)
	return s.search(b, s.zobrist.AddMove(key, m, color), m, depth-1, alpha, beta, maximizing, aiColor)
}

// winner reports a five on b. When the last move is known only lines through
// it are checked; the position before it had no five.
func (s *Solver) winner(b *board.Board, last board.Move, aiColor board.Cell) board.Cell {
	if !last.IsNoMove() {
		c := b.At(last.Row, last.Col)
		if rules.IsWinAt(b, c, last.Row, last.Col) {
			return c
		}
		return board.Empty
	}
	if rules.IsWin(b, aiColor) {
		return aiColor
	}
	if opp := aiColor.Opponent(); rules.IsWin(b, opp) {
		return opp
	}
	return board.Empty
}

// ScoredMove is a root candidate and its searched value.
type ScoredMove struct {
	Move  board.Move
	Score int
}

// Analyze searches every capped root candidate of b for aiColor and returns
// their scores in move-ordering order.
func (s *Solver) Analyze(b *board.Board, aiColor board.Cell) []ScoredMove {
	if b.IsFull() {
		return nil
	}
	moves := s.movegen.Ordered(b, aiColor, s.opts.RootWidth)
	return s.analyze(b, aiColor, moves)
}

func (s *Solver) analyze(b *board.Board, aiColor board.Cell, moves []board.Move) []ScoredMove {
	if s.opts.Threads > 1 && len(moves) > 1 {
		return s.analyzeParallel(b, aiColor, moves)
	}
	key := s.zobrist.WithPerspective(s.zobrist.Hash(b), aiColor)
	scored := make([]ScoredMove, len(moves))
	for i, m := range moves {
		// the opponent is to move after each root candidate.
		score := s.child(b, key, m, aiColor, s.opts.MaxDepth, -Infinity, Infinity, false, aiColor)
		scored[i] = ScoredMove{Move: m, Score: score}
	}
	return scored
}

// analyzeParallel searches the root candidates concurrently, each on its own
// copy of b. The transposition table is shared.
func (s *Solver) analyzeParallel(b *board.Board, aiColor board.Cell, moves []board.Move) []ScoredMove {
	if s.ttable != nil {
		s.ttable.SetMultiThreadedMode()
		defer s.ttable.SetSingleThreadedMode()
	}
	log.Debug().Int("threads", s.opts.Threads).Int("candidates", len(moves)).Msg("parallel-root-search")

	key := s.zobrist.WithPerspective(s.zobrist.Hash(b), aiColor)
	scored := make([]ScoredMove, len(moves))
	g := errgroup.Group{}
	g.SetLimit(s.opts.Threads)
	for i, m := range moves {
		g.Go(func() error {
			bc := b.Copy()
			score := s.child(bc, key, m, aiColor, s.opts.MaxDepth, -Infinity, Infinity, false, aiColor)
			scored[i] = ScoredMove{Move: m, Score: score}
			return nil
		})
	}
	// workers never fail.
	_ = g.Wait()
	return scored
}
