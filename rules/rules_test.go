package rules

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/gomoku/board"
)

func TestIsWinDirections(t *testing.T) {
	is := is.New(t)
	type tc struct {
		name string
		rows []string
		win  board.Cell
	}
	cases := []tc{
		{"horizontal", []string{
			"..........",
			"..........",
			"..XXXXX...",
			"..........",
			"..........",
			"..........",
			"..........",
			"..........",
			"..........",
			"..........",
		}, board.Black},
		{"vertical at edge", []string{
			".........O",
			".........O",
			".........O",
			".........O",
			".........O",
			"..........",
			"..........",
			"..........",
			"..........",
			"..........",
		}, board.White},
		{"diagonal", []string{
			"..........",
			"..........",
			"..........",
			"..........",
			"..........",
			".....X....",
			"......X...",
			".......X..",
			"........X.",
			".........X",
		}, board.Black},
		{"anti-diagonal", []string{
			"....O.....",
			"...O......",
			"..O.......",
			".O........",
			"O.........",
			"..........",
			"..........",
			"..........",
			"..........",
			"..........",
		}, board.White},
	}
	for _, c := range cases {
		b := board.MustFromRows(c.rows...)
		is.True(IsWin(b, c.win))
		is.True(!IsWin(b, c.win.Opponent()))
	}
}

func TestFourIsNotAWin(t *testing.T) {
	is := is.New(t)
	b := board.MustFromRows(
		"XXXX.XXXX.",
		"..........",
		"O.........",
		"O.........",
		"O.........",
		"O.........",
		"X.........",
		"..........",
		"..........",
		"..........",
	)
	is.True(!IsWin(b, board.Black))
	is.True(!IsWin(b, board.White))
	is.True(!IsWinAt(b, board.Black, 0, 3))
}

func TestIsWinAtGap(t *testing.T) {
	is := is.New(t)
	b := board.MustFromRows(
		"..........",
		"..........",
		"..........",
		"..........",
		"XX.XX.....",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	)
	m := board.Move{Row: 4, Col: 2}
	is.True(WinningMove(b, board.Black, m))
	// WinningMove leaves the board untouched.
	is.Equal(b.At(4, 2), board.Empty)
	b.Apply(m, board.Black)
	is.True(IsWinAt(b, board.Black, 4, 2))
	is.True(IsWinAt(b, board.Black, 4, 0))
	is.True(!IsWinAt(b, board.White, 4, 2))
	is.True(IsWin(b, board.Black))
}

// Playing random games, the incremental check at the last move must agree
// with a full scan of the board after every move, up to the first win.
func TestIsWinAtAgreesWithScan(t *testing.T) {
	is := is.New(t)
	var seed [32]byte
	seed[0] = 42
	rng := frand.NewCustom(seed[:], 1024, 12)
	for game := 0; game < 200; game++ {
		b := board.NewBoard(board.DefaultDim)
		color := board.Black
		for !b.IsFull() {
			idx := rng.Intn(b.NumCells())
			r, c := b.RowCol(idx)
			if !b.IsEmpty(r, c) {
				continue
			}
			b.Apply(board.Move{Row: r, Col: c}, color)
			at := IsWinAt(b, color, r, c)
			is.Equal(at, IsWin(b, color))
			if at {
				break
			}
			color = color.Opponent()
		}
	}
}

func TestThreatLevel(t *testing.T) {
	is := is.New(t)
	b := board.MustFromRows(
		"..........",
		"..XXX.....",
		"..........",
		"OXXX......",
		"..........",
		"...OO.....",
		"..........",
		"........XX",
		"XXXX......",
		"..........",
	)
	type tc struct {
		player board.Cell
		row    int
		col    int
		want   int
	}
	cases := []tc{
		// open three either side
		{board.Black, 1, 1, ThreatOpenThree},
		{board.Black, 1, 5, ThreatOpenThree},
		// three closed by a white stone on the left
		{board.Black, 3, 4, ThreatClosedThree},
		// open two
		{board.White, 5, 2, ThreatOpenTwo},
		{board.White, 5, 5, ThreatOpenTwo},
		// two against the edge
		{board.Black, 7, 7, ThreatClosedTwo},
		// four: completing it wins
		{board.Black, 8, 4, ThreatFive},
		// nothing nearby
		{board.White, 9, 9, 0},
		// occupied cells never score
		{board.Black, 1, 2, 0},
	}
	for _, c := range cases {
		is.Equal(ThreatLevel(b, c.player, c.row, c.col), c.want)
	}
}

func TestThreatLevelSplitRun(t *testing.T) {
	is := is.New(t)
	// Filling the gap of X X _ X X makes five.
	b := board.MustFromRows(
		"..........",
		"..........",
		"..........",
		"..........",
		".XX.XX....",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	)
	is.Equal(ThreatLevel(b, board.Black, 4, 3), ThreatFive)
	is.Equal(ThreatLevel(b, board.White, 4, 3), 0)

	// O O _ O with both ends open: only the gap joins all three.
	b = board.MustFromRows(
		"..........",
		"..........",
		"..........",
		"..........",
		"..OO.O....",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	)
	is.Equal(ThreatLevel(b, board.White, 4, 4), ThreatOpenThree)
	is.Equal(ThreatLevel(b, board.White, 4, 1), ThreatOpenTwo)
	is.Equal(ThreatLevel(b, board.White, 4, 6), 0)
}
