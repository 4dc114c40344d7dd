package scenario

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gomoku/board"
)

func TestLoadFile(t *testing.T) {
	is := is.New(t)
	scenarios, err := LoadFile("testdata/scenarios.yaml")
	is.NoErr(err)
	is.Equal(len(scenarios), 7)

	s, err := Find(scenarios, "forced-win")
	is.NoErr(err)
	is.Equal(s.Color(), board.Black)
	is.Equal(s.Expected(), []board.Move{{Row: 4, Col: 2}, {Row: 4, Col: 7}})
	is.True(s.Accepts(board.Move{Row: 4, Col: 7}))
	is.True(!s.Accepts(board.Move{Row: 4, Col: 8}))
	is.True(!s.Accepts(board.NoMove))
	is.Equal(s.Board().NumStones(), 7)

	s, err = Find(scenarios, "empty-board")
	is.NoErr(err)
	is.Equal(s.Board().NumStones(), 0)
	is.True(s.Accepts(board.Move{Row: 2, Col: 7}))
	is.True(!s.Accepts(board.Move{Row: 1, Col: 5}))

	s, err = Find(scenarios, "full-board")
	is.NoErr(err)
	is.True(s.Board().IsFull())
	is.True(s.Accepts(board.NoMove))
	is.True(!s.Accepts(board.Move{Row: 0, Col: 0}))
}

func TestBoardIsACopy(t *testing.T) {
	is := is.New(t)
	scenarios, err := LoadFile("testdata/scenarios.yaml")
	is.NoErr(err)
	s, _ := Find(scenarios, "empty-board")
	b := s.Board()
	b.Apply(board.Move{Row: 0, Col: 0}, board.Black)
	is.Equal(s.Board().NumStones(), 0)
}

func TestFindMissing(t *testing.T) {
	is := is.New(t)
	_, err := Find(nil, "nope")
	is.True(errors.Is(err, ErrNotFound))
}

func TestLoadErrors(t *testing.T) {
	is := is.New(t)
	for _, doc := range []string{
		"- name: bad-color\n  to-move: green\n",
		"- name: bad-move\n  to-move: black\n  expect: [Z99]\n",
		"- name: bad-row\n  to-move: black\n  board: [\"X?\", \"..\"]\n",
		"- name: bad-window\n  to-move: black\n  within: [1]\n",
		"not: a list\n",
	} {
		_, err := Load(strings.NewReader(doc))
		is.True(err != nil)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(board.DefaultDim)
	b.Apply(board.Move{Row: 3, Col: 4}, board.Black)
	b.Apply(board.Move{Row: 4, Col: 4}, board.White)

	var buf bytes.Buffer
	is.NoErr(Write(&buf, []*Scenario{FromBoard("saved", b, board.Black)}))
	loaded, err := Load(&buf)
	is.NoErr(err)
	is.Equal(len(loaded), 1)
	is.Equal(loaded[0].Name, "saved")
	is.Equal(loaded[0].Color(), board.Black)
	is.True(loaded[0].Board().Equals(b))
}
