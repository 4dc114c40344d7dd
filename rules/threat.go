package rules

import "github.com/domino14/gomoku/board"

// Threat severities for a single empty cell, by the run it would extend.
const (
	ThreatFive        = 10000
	ThreatOpenThree   = 5000
	ThreatClosedThree = 1000
	ThreatOpenTwo     = 500
	ThreatClosedTwo   = 100
)

// SeriousThreat is the level the move selector answers without searching.
const SeriousThreat = ThreatOpenThree

// ThreatLevel scores how dangerous the empty cell (row, col) is for player:
// the worst line through it, judged by the player's stones adjacent on both
// sides and how many of the two ends are open. Occupied cells score 0.
func ThreatLevel(b *board.Board, player board.Cell, row, col int) int {
	if !b.IsEmpty(row, col) {
		return 0
	}
	best := 0
	for _, d := range Directions {
		fwd, fwdOpen := runWithEnd(b, player, row, col, d.DRow, d.DCol)
		back, backOpen := runWithEnd(b, player, row, col, -d.DRow, -d.DCol)
		run := fwd + back
		if run >= 4 {
			return ThreatFive
		}
		open := 0
		if fwdOpen {
			open++
		}
		if backOpen {
			open++
		}
		if s := severity(run, open); s > best {
			best = s
		}
	}
	return best
}

// runWithEnd counts player's stones stepping away from (row, col) and
// reports whether the cell past the run is empty.
func runWithEnd(b *board.Board, player board.Cell, row, col, dr, dc int) (int, bool) {
	n := 0
	r, c := row+dr, col+dc
	for b.InBounds(r, c) {
		switch b.At(r, c) {
		case player:
			n++
			r += dr
			c += dc
			continue
		case board.Empty:
			return n, true
		}
		return n, false
	}
	return n, false
}

func severity(run, open int) int {
	switch {
	case run == 3 && open == 2:
		return ThreatOpenThree
	case run == 3 && open == 1:
		return ThreatClosedThree
	case run == 2 && open == 2:
		return ThreatOpenTwo
	case run == 2 && open == 1:
		return ThreatClosedTwo
	}
	return 0
}
