// Package engine is the surface the game front ends talk to: move selection,
// win checks and the per-game reset.
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/movegen"
	"github.com/domino14/gomoku/rules"
	"github.com/domino14/gomoku/search"
	"github.com/domino14/gomoku/zobrist"
)

type Engine struct {
	cfg    *config.Config
	seed   uint64
	solver *search.Solver
}

// New builds an engine from cfg. A zero seed is replaced by one taken from
// the clock.
func New(cfg *config.Config) *Engine {
	seed := cfg.GetUint64(config.ConfigSeed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewWithSeed(cfg, seed)
}

func NewWithSeed(cfg *config.Config, seed uint64) *Engine {
	return NewWithOptions(cfg, seed, Options(cfg))
}

// NewWithOptions builds an engine whose search options override the ones in
// cfg. cfg still sizes the transposition table.
func NewWithOptions(cfg *config.Config, seed uint64, opts search.Options) *Engine {
	rng := zobrist.NewRNG(seed)
	z := &zobrist.Zobrist{}
	z.Initialize(board.DefaultDim, rng)

	var tt *search.TranspositionTable
	if opts.TranspositionTable {
		tt = search.NewTranspositionTable(cfg.GetFloat64(config.ConfigTTableMemFraction))
	}
	log.Debug().Uint64("seed", seed).Interface("options", opts).Msg("engine-created")
	return &Engine{
		cfg:    cfg,
		seed:   seed,
		solver: search.NewSolver(z, movegen.NewGenerator(rng), tt, opts),
	}
}

// Options reads the search options out of cfg.
func Options(cfg *config.Config) search.Options {
	return search.Options{
		MaxDepth:           cfg.GetInt(config.ConfigSearchDepth),
		RootWidth:          cfg.GetInt(config.ConfigRootWidth),
		SearchWidth:        cfg.GetInt(config.ConfigSearchWidth),
		NarrowWidth:        cfg.GetInt(config.ConfigNarrowWidth),
		CacheDepthMargin:   cfg.GetInt(config.ConfigCacheDepthMargin),
		Threads:            cfg.GetInt(config.ConfigThreads),
		TranspositionTable: cfg.GetBool(config.ConfigTranspositionTable),
		Pruning:            true,
	}
}

func (e *Engine) Seed() uint64 {
	return e.seed
}

func (e *Engine) Solver() *search.Solver {
	return e.solver
}

// SelectMove returns aiColor's move on b, or board.NoMove if b is full.
// b must be a DefaultDim board and is unchanged on return.
func (e *Engine) SelectMove(b *board.Board, aiColor board.Cell) board.Move {
	return e.Select(b, aiColor).Move
}

// Select is SelectMove with the diagnostics of the search.
func (e *Engine) Select(b *board.Board, aiColor board.Cell) search.Result {
	if b.Dim() != board.DefaultDim {
		panic(fmt.Sprintf("engine needs a %dx%d board, got %dx%d",
			board.DefaultDim, board.DefaultDim, b.Dim(), b.Dim()))
	}
	if !aiColor.IsColor() {
		panic("engine color must be black or white")
	}
	res := e.solver.SelectMove(b, aiColor)
	ev := log.Info().
		Str("color", aiColor.String()).
		Str("move", res.Move.String()).
		Int("score", res.Score).
		Str("tactic", res.Tactic.String()).
		Uint64("nodes", res.Nodes).
		Dur("elapsed", res.Elapsed)
	if tt := e.solver.TranspositionTable(); tt != nil {
		stats := tt.Stats()
		ev = ev.Int("tt-entries", stats.Entries).
			Uint64("tt-hits", stats.Hits).
			Uint64("tt-collisions", stats.Collisions)
	}
	ev.Msg("selected-move")
	return res
}

// SelectMoveCells selects a move on a raw row-major snapshot of
// DefaultDim*DefaultDim cells. A malformed snapshot panics.
func (e *Engine) SelectMoveCells(cells []board.Cell, aiColor board.Cell) board.Move {
	b, err := board.FromCells(board.DefaultDim, cells)
	if err != nil {
		panic(err)
	}
	return e.SelectMove(b, aiColor)
}

// Analyze returns the searched score of each root candidate.
func (e *Engine) Analyze(b *board.Board, aiColor board.Cell) []search.ScoredMove {
	return e.solver.Analyze(b, aiColor)
}

// Candidates returns the root candidates the search would consider for
// aiColor, best first, with their move-ordering priorities.
func (e *Engine) Candidates(b *board.Board, aiColor board.Cell) ([]board.Move, []float64) {
	moves := e.solver.Generator().Ordered(b, aiColor, e.solver.Options().RootWidth)
	return moves, movegen.Priorities(moves, b, aiColor)
}

func (e *Engine) IsWin(b *board.Board, player board.Cell) bool {
	return rules.IsWin(b, player)
}

func (e *Engine) IsWinAt(b *board.Board, player board.Cell, row, col int) bool {
	return rules.IsWinAt(b, player, row, col)
}

// ResetBoard forgets everything cached from the previous game.
func (e *Engine) ResetBoard() {
	if tt := e.solver.TranspositionTable(); tt != nil {
		tt.Clear()
	}
	log.Debug().Msg("engine-reset")
}
