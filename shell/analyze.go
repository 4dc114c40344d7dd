package shell

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"

	"github.com/domino14/gomoku/game"
	"github.com/domino14/gomoku/search"
)

const histogramBins = 8

func verdict(score int) string {
	switch {
	case score > search.EvalCutoff:
		return "wins"
	case score < -search.EvalCutoff:
		return "loses"
	}
	return ""
}

func (sc *ShellController) analyze(cmd *shellcmd) (*Response, error) {
	if sc.game.Playing() != game.Playing {
		return nil, game.ErrGameOver
	}
	color := sc.game.OnTurn()
	scored := sc.engine.Analyze(sc.game.Board().Copy(), color)
	slices.SortStableFunc(scored, func(a, b search.ScoredMove) int {
		return b.Score - a.Score
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analysis for %v:\n", color)
	sb.WriteString("     Move       Score\n")
	for i, sm := range scored {
		fmt.Fprintf(&sb, "%3d: %-5s%11d %s\n", i+1, sm.Move, sm.Score, verdict(sm.Score))
	}
	if len(scored) > 1 {
		// decided lines would flatten everything else.
		values := lo.Map(scored, func(sm search.ScoredMove, _ int) float64 {
			return float64(lo.Clamp(sm.Score, -search.EvalCutoff, search.EvalCutoff))
		})
		sb.WriteString("\nScore distribution:\n")
		if err := histogram.Fprint(&sb, histogram.Hist(histogramBins, values), histogram.Linear(30)); err != nil {
			return nil, err
		}
	}
	return msg(sb.String()), nil
}
