package automatic

// Computer-vs-computer games, for measuring changes to the engine.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/stats"
)

var (
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying  = expvar.NewInt("isPlaying")
)

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

// Summary aggregates a batch of self-play games.
type Summary struct {
	Games      int
	WhiteWins  int
	BlackWins  int
	Draws      int
	GameLength stats.Statistic
	// Nodes is over every move that needed a search.
	Nodes stats.Statistic
}

// WhiteScore is White's score rate (draws count half) and its 95%
// confidence interval.
func (s *Summary) WhiteScore() (rate, lo, hi float64) {
	if s.Games == 0 {
		return 0, 0, 1
	}
	wins := float64(s.WhiteWins) + float64(s.Draws)/2
	lo, hi = stats.ScoreInterval(wins, s.Games, 95)
	return wins / float64(s.Games), lo, hi
}

func (s *Summary) add(res GameResult) {
	s.Games++
	switch res.Winner {
	case board.White:
		s.WhiteWins++
	case board.Black:
		s.BlackWins++
	default:
		s.Draws++
	}
	s.GameLength.Push(float64(res.Moves))
	var nodes stats.Statistic
	for _, n := range res.Nodes {
		nodes.Push(float64(n))
	}
	s.Nodes.Merge(&nodes)
}

func (s *Summary) String() string {
	var sb strings.Builder
	rate, lo, hi := s.WhiteScore()
	fmt.Fprintf(&sb, "games: %d  white: %d  black: %d  draws: %d\n",
		s.Games, s.WhiteWins, s.BlackWins, s.Draws)
	fmt.Fprintf(&sb, "white score: %.3f (95%% CI %.3f - %.3f)\n", rate, lo, hi)
	glo, ghi := s.GameLength.ConfidenceInterval(95)
	fmt.Fprintf(&sb, "game length: mean %.1f (95%% CI %.1f - %.1f), stdev %.1f, min %.0f, max %.0f\n",
		s.GameLength.Mean(), glo, ghi, s.GameLength.Stdev(), s.GameLength.Min(), s.GameLength.Max())
	fmt.Fprintf(&sb, "nodes per searched move: mean %.0f, stdev %.0f, max %.0f\n",
		s.Nodes.Mean(), s.Nodes.Stdev(), s.Nodes.Max())
	return sb.String()
}

// Play runs len(seeds) games, at most threads at a time, one per seed. If out
// is not nil the per-move CSV is written to it in game order. Cancelling ctx
// stops queueing new games; the games already finished are summarized.
func Play(ctx context.Context, cfg *config.Config, seeds []uint64, threads int, out io.Writer) (*Summary, error) {
	if IsPlaying.Value() > 0 {
		return nil, ErrAlreadyPlaying
	}
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)
	CVCCounter.Set(0)
	if threads < 1 {
		threads = 1
	}
	batch := uuid.NewString()
	log.Info().Str("batch", batch).Int("games", len(seeds)).Int("threads", threads).Msg("starting-self-play")

	results := make([]*GameResult, len(seeds))
	g := errgroup.Group{}
	g.SetLimit(threads)
queue:
	for i, seed := range seeds {
		select {
		case <-ctx.Done():
			log.Info().Int("queued", i).Msg("got-stop-signal")
			break queue
		default:
		}
		g.Go(func() error {
			r := NewGameRunner(cfg)
			res := r.PlayGame(i+1, seed)
			results[i] = &res
			CVCCounter.Add(1)
			if n := CVCCounter.Value(); n%100 == 0 {
				log.Info().Int64("games", n).Msg("self-play-progress")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{}
	if out != nil {
		if _, err := io.WriteString(out, CSVHeader); err != nil {
			return nil, err
		}
	}
	for _, res := range results {
		if res == nil {
			continue
		}
		summary.add(*res)
		if out == nil {
			continue
		}
		for _, line := range res.Lines {
			if _, err := io.WriteString(out, line); err != nil {
				return nil, err
			}
		}
	}
	log.Info().Str("batch", batch).Int("games", summary.Games).Msg("self-play-finished")
	return summary, ctx.Err()
}
