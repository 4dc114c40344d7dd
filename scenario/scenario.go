// Package scenario reads named positions, with the answers the engine is
// expected to find, from YAML files.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/domino14/gomoku/board"
)

var ErrNotFound = errors.New("scenario not found")

type Scenario struct {
	Name   string   `yaml:"name"`
	ToMove string   `yaml:"to-move"`
	Rows   []string `yaml:"board"`
	// Expect lists acceptable answers, e.g. "C5".
	Expect []string `yaml:"expect,omitempty"`
	// Within, if set, is the inclusive [lo, hi] range the answer's row and
	// column must both fall in.
	Within []int `yaml:"within,omitempty"`
	// NoMove means the engine must report that it cannot move.
	NoMove bool `yaml:"no-move,omitempty"`

	board    *board.Board
	color    board.Cell
	expected []board.Move
}

func (s *Scenario) validate() error {
	var err error
	if len(s.Rows) == 0 {
		s.board = board.NewBoard(board.DefaultDim)
	} else if s.board, err = board.FromRows(s.Rows...); err != nil {
		return err
	}
	if s.color, err = board.ParseColor(s.ToMove); err != nil {
		return err
	}
	s.expected = s.expected[:0]
	for _, e := range s.Expect {
		m, err := board.ParseMove(e, s.board.Dim())
		if err != nil {
			return err
		}
		s.expected = append(s.expected, m)
	}
	if len(s.Within) != 0 && len(s.Within) != 2 {
		return fmt.Errorf("within needs two bounds, got %d", len(s.Within))
	}
	return nil
}

// Board returns a fresh copy of the scenario's position.
func (s *Scenario) Board() *board.Board {
	return s.board.Copy()
}

func (s *Scenario) Color() board.Cell {
	return s.color
}

func (s *Scenario) Expected() []board.Move {
	return s.expected
}

// Accepts reports whether m is an acceptable answer.
func (s *Scenario) Accepts(m board.Move) bool {
	if s.NoMove {
		return m.IsNoMove()
	}
	if m.IsNoMove() {
		return false
	}
	if len(s.Within) == 2 {
		lo, hi := s.Within[0], s.Within[1]
		if m.Row < lo || m.Row > hi || m.Col < lo || m.Col > hi {
			return false
		}
	}
	if len(s.expected) > 0 {
		return slices.Contains(s.expected, m)
	}
	return true
}

// Load reads a list of scenarios.
func Load(r io.Reader) ([]*Scenario, error) {
	var scenarios []*Scenario
	if err := yaml.NewDecoder(r).Decode(&scenarios); err != nil {
		return nil, fmt.Errorf("decoding scenarios: %w", err)
	}
	for i, s := range scenarios {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("scenario %d (%s): %w", i, s.Name, err)
		}
	}
	return scenarios, nil
}

func LoadFile(path string) ([]*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Find returns the scenario called name.
func Find(scenarios []*Scenario, name string) (*Scenario, error) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// FromBoard captures a position as a scenario with no expectations.
func FromBoard(name string, b *board.Board, toMove board.Cell) *Scenario {
	rows := make([]string, b.Dim())
	for row := range rows {
		line := make([]byte, b.Dim())
		for col := range line {
			line[col] = b.At(row, col).Symbol()
		}
		rows[row] = string(line)
	}
	return &Scenario{
		Name:   name,
		ToMove: toMove.String(),
		Rows:   rows,
		board:  b.Copy(),
		color:  toMove,
	}
}

// Write saves scenarios in the format Load reads.
func Write(w io.Writer, scenarios []*Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(scenarios); err != nil {
		return err
	}
	return enc.Close()
}
