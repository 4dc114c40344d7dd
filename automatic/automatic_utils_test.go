package automatic

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/rules"
	"github.com/domino14/gomoku/stats"
)

var DefaultConfig = fastConfig()

// shallow searches keep whole games quick.
func fastConfig() *config.Config {
	cfg := &config.Config{}
	if err := cfg.Load([]string{"--search-depth=2", "--root-width=6", "--search-width=8", "--narrow-width=6"}); err != nil {
		panic(err)
	}
	return cfg
}

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestPlayGame(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(DefaultConfig)
	res := r.PlayGame(1, 12345)
	is.Equal(res.Moves, res.Final.NumStones())
	is.Equal(len(res.Lines), res.Moves)
	if res.Winner.IsColor() {
		is.True(rules.IsWin(res.Final, res.Winner))
		is.True(!rules.IsWin(res.Final, res.Winner.Opponent()))
	} else {
		is.True(res.Final.IsFull())
	}
	is.True(strings.HasPrefix(res.Lines[0], "1,1,white,"))
}

func TestPlayGameIsReproducible(t *testing.T) {
	is := is.New(t)
	a := NewGameRunner(DefaultConfig).PlayGame(1, 99)
	b := NewGameRunner(DefaultConfig).PlayGame(1, 99)
	is.Equal(a.Winner, b.Winner)
	is.Equal(a.Moves, b.Moves)
	is.True(a.Final.Equals(b.Final))
}

func TestPlayGameIsReproducibleWithThreads(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load([]string{"--search-depth=3", "--root-width=6", "--search-width=8",
		"--narrow-width=6", "--threads=4"}))

	r := NewGameRunner(cfg)
	r.Init(1)
	is.Equal(r.engines[board.White].Solver().Options().Threads, 1)
	is.Equal(r.engines[board.Black].Solver().Options().Threads, 1)

	for seed := uint64(1); seed <= 4; seed++ {
		a := NewGameRunner(cfg).PlayGame(1, seed)
		b := NewGameRunner(cfg).PlayGame(1, seed)
		is.Equal(a.Moves, b.Moves)
		is.Equal(a.Winner, b.Winner)
		is.True(a.Final.Equals(b.Final))
	}
}

func TestPlay(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	seeds := []uint64{1, 2, 3, 4}
	summary, err := Play(context.Background(), DefaultConfig, seeds, 2, &out)
	is.NoErr(err)
	is.Equal(summary.Games, 4)
	is.Equal(summary.WhiteWins+summary.BlackWins+summary.Draws, 4)
	is.Equal(summary.GameLength.Iterations(), 4)
	is.Equal(IsPlaying.Value(), int64(0))
	is.Equal(CVCCounter.Value(), int64(4))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	is.Equal(lines[0]+"\n", CSVHeader)
	is.True(stats.FuzzyEqual(float64(len(lines)-1), summary.GameLength.Mean()*4))
	// games are written in seed order.
	is.True(strings.HasPrefix(lines[1], "1,1,"))

	rate, lo, hi := summary.WhiteScore()
	is.True(lo <= rate && rate <= hi)
}

func TestSummary(t *testing.T) {
	is := is.New(t)
	s := &Summary{}
	s.add(GameResult{Winner: board.White, Moves: 9, Nodes: []uint64{10, 20}})
	s.add(GameResult{Winner: board.Black, Moves: 11, Nodes: []uint64{30}})
	s.add(GameResult{Winner: board.Empty, Moves: 100})

	is.Equal(s.Games, 3)
	is.Equal(s.WhiteWins, 1)
	is.Equal(s.BlackWins, 1)
	is.Equal(s.Draws, 1)
	// node counts from every game pool into one statistic.
	is.Equal(s.Nodes.Iterations(), 3)
	is.True(stats.FuzzyEqual(s.Nodes.Mean(), 20))
	is.True(stats.FuzzyEqual(s.Nodes.Max(), 30))
	is.True(stats.FuzzyEqual(s.GameLength.Mean(), 40))

	rate, _, _ := s.WhiteScore()
	is.True(stats.FuzzyEqual(rate, 0.5))
	is.True(strings.Contains(s.String(), "game length: mean 40.0 (95% CI"))
}

func TestPlayCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	summary, err := Play(ctx, DefaultConfig, []uint64{1, 2}, 1, nil)
	is.Equal(err, context.Canceled)
	is.Equal(summary.Games, 0)
}

func TestSeedsRoundTrip(t *testing.T) {
	is := is.New(t)
	seeds := GenerateSeeds(5)
	for _, s := range seeds {
		is.True(s != 0)
	}
	path := filepath.Join(t.TempDir(), "seeds.txt")
	is.NoErr(SaveSeeds(seeds, path))
	loaded, err := LoadSeeds(path)
	is.NoErr(err)
	is.Equal(loaded, seeds)

	is.NoErr(os.WriteFile(path, []byte("# x\n12\nnope\n"), 0644))
	_, err = LoadSeeds(path)
	is.True(err != nil)
}
