// Package automatic plays the engine against itself and collects
// statistics over many games.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/engine"
	"github.com/domino14/gomoku/game"
	"github.com/domino14/gomoku/rules"
	"github.com/domino14/gomoku/search"
)

// CSVHeader names the columns of the per-move lines in GameResult.Lines.
const CSVHeader = "gameID,turn,color,move,score,tactic,nodes,elapsedUs\n"

// GameResult is the outcome of one self-play game.
type GameResult struct {
	ID     int
	Seed   uint64
	Winner board.Cell
	Moves  int
	// Nodes holds the node count of every searched move.
	Nodes []uint64
	Lines []string
	Final *board.Board
}

// GameRunner plays full games between two engines that share a
// configuration but not a random source.
type GameRunner struct {
	config  *config.Config
	board   *board.Board
	engines map[board.Cell]*engine.Engine
}

func NewGameRunner(cfg *config.Config) *GameRunner {
	return &GameRunner{
		config: cfg,
		board:  board.NewBoard(board.DefaultDim),
	}
}

// Init gives both sides fresh engines derived from seed. Their searches are
// single-threaded so that a seed always replays the same game; the threads
// setting only controls how many games run at once.
func (r *GameRunner) Init(seed uint64) {
	opts := engine.Options(r.config)
	opts.Threads = 1
	r.engines = map[board.Cell]*engine.Engine{
		board.White: engine.NewWithOptions(r.config, seed, opts),
		board.Black: engine.NewWithOptions(r.config, seed^0x5bd1e995, opts),
	}
	r.board.Reset()
}

// PlayGame plays one game to the end, White first.
func (r *GameRunner) PlayGame(id int, seed uint64) GameResult {
	r.Init(seed)
	res := GameResult{ID: id, Seed: seed, Winner: board.Empty}
	color := game.FirstToMove
	for !r.board.IsFull() {
		sr := r.engines[color].Solver().SelectMove(r.board, color)
		if sr.Move.IsNoMove() {
			break
		}
		r.board.Apply(sr.Move, color)
		res.Moves++
		if sr.Tactic == search.TacticSearch {
			res.Nodes = append(res.Nodes, sr.Nodes)
		}
		res.Lines = append(res.Lines, fmt.Sprintf("%d,%d,%s,%s,%d,%s,%d,%d\n",
			id, res.Moves, color, sr.Move, sr.Score, sr.Tactic, sr.Nodes, sr.Elapsed.Microseconds()))
		if rules.IsWinAt(r.board, color, sr.Move.Row, sr.Move.Col) {
			res.Winner = color
			break
		}
		color = color.Opponent()
	}
	res.Final = r.board.Copy()
	log.Debug().Int("game", id).Str("winner", res.Winner.String()).Int("moves", res.Moves).
		Msg("self-play-game-over")
	return res
}
