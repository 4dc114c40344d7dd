package game

import (
	"fmt"

	"github.com/domino14/gomoku/board"
)

// Tally is the running score of a session.
type Tally struct {
	Rounds       int
	HumanWins    int
	ComputerWins int
	Draws        int
}

func (t *Tally) record(winner, human board.Cell) {
	t.Rounds++
	switch winner {
	case board.Empty:
		t.Draws++
	case human:
		t.HumanWins++
	default:
		t.ComputerWins++
	}
}

func (t Tally) String() string {
	return fmt.Sprintf("rounds: %d  you: %d  computer: %d  draws: %d",
		t.Rounds, t.HumanWins, t.ComputerWins, t.Draws)
}
