// Package game keeps the state of a human-versus-computer session: the
// board, whose turn it is, how each game ended and the running score.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/rules"
)

var (
	ErrOutOfBounds = errors.New("move is off the board")
	ErrOccupied    = errors.New("cell is already occupied")
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not your turn")
	ErrBadColor    = errors.New("side to move must be black or white")
)

// FirstToMove opens every game.
const FirstToMove = board.White

type PlayState uint8

const (
	Playing PlayState = iota
	GameOver
)

// Player picks moves for the computer side.
type Player interface {
	SelectMove(b *board.Board, aiColor board.Cell) board.Move
	ResetBoard()
}

// A Turn is one stone placed.
type Turn struct {
	Move  board.Move
	Color board.Cell
}

type Game struct {
	// id names the current round in logs.
	id       string
	board    *board.Board
	human    board.Cell
	computer board.Cell
	onTurn   board.Cell
	playing  PlayState
	// winner is Empty for a game in progress or a draw.
	winner  board.Cell
	history []Turn
	tally   Tally
}

// New starts a session in which the human plays humanColor.
func New(humanColor board.Cell) *Game {
	if !humanColor.IsColor() {
		panic(fmt.Sprintf("human must play black or white, not %v", humanColor))
	}
	return &Game{
		id:       uuid.NewString(),
		board:    board.NewBoard(board.DefaultDim),
		human:    humanColor,
		computer: humanColor.Opponent(),
		onTurn:   FirstToMove,
	}
}

// ID identifies the round being played. Each new round gets a fresh one.
func (g *Game) ID() string {
	return g.id
}

// PlayHuman places the human's stone at m.
func (g *Game) PlayHuman(m board.Move) error {
	if g.onTurn != g.human && g.playing == Playing {
		return ErrNotYourTurn
	}
	return g.play(m, g.human)
}

// PlayComputer asks p for the computer's move and plays it.
func (g *Game) PlayComputer(p Player) (board.Move, error) {
	if g.playing == GameOver {
		return board.NoMove, ErrGameOver
	}
	if g.onTurn != g.computer {
		return board.NoMove, ErrNotYourTurn
	}
	m := p.SelectMove(g.board.Copy(), g.computer)
	if m.IsNoMove() {
		g.end(board.Empty)
		return m, ErrGameOver
	}
	if err := g.play(m, g.computer); err != nil {
		return board.NoMove, fmt.Errorf("computer move %v: %w", m, err)
	}
	return m, nil
}

func (g *Game) play(m board.Move, c board.Cell) error {
	if g.playing == GameOver {
		return ErrGameOver
	}
	if !g.board.InBounds(m.Row, m.Col) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, m)
	}
	if !g.board.IsEmpty(m.Row, m.Col) {
		return fmt.Errorf("%w: %v", ErrOccupied, m)
	}
	g.board.Apply(m, c)
	g.history = append(g.history, Turn{Move: m, Color: c})
	switch {
	case rules.IsWinAt(g.board, c, m.Row, m.Col):
		g.end(c)
	case g.board.IsFull():
		g.end(board.Empty)
	default:
		g.onTurn = c.Opponent()
	}
	return nil
}

func (g *Game) end(winner board.Cell) {
	if g.playing == GameOver {
		return
	}
	g.playing = GameOver
	g.winner = winner
	g.tally.record(winner, g.human)
	log.Debug().Str("id", g.id).Str("winner", winner.String()).Int("moves", len(g.history)).
		Int("round", g.tally.Rounds).Msg("game-over")
}

// NextRound clears the board for another game with the colors swapped.
// The computer's cached analysis is dropped.
func (g *Game) NextRound(p Player) {
	g.id = uuid.NewString()
	g.board.Reset()
	g.history = g.history[:0]
	g.human, g.computer = g.computer, g.human
	g.onTurn = FirstToMove
	g.playing = Playing
	g.winner = board.Empty
	if p != nil {
		p.ResetBoard()
	}
}

// Restart abandons the current game and starts a new one with the human
// playing humanColor. The tally is kept.
func (g *Game) Restart(humanColor board.Cell, p Player) {
	if !humanColor.IsColor() {
		panic(fmt.Sprintf("human must play black or white, not %v", humanColor))
	}
	g.NextRound(p)
	g.human, g.computer = humanColor, humanColor.Opponent()
}

// SetPosition replaces the board with a copy of b, with the human playing
// the side to move. A position that is already decided is rejected.
func (g *Game) SetPosition(b *board.Board, toMove board.Cell) error {
	if !toMove.IsColor() {
		return fmt.Errorf("%w, not %v", ErrBadColor, toMove)
	}
	if b.Dim() != g.board.Dim() {
		return fmt.Errorf("%w: board is %dx%d", ErrOutOfBounds, b.Dim(), b.Dim())
	}
	if rules.IsWin(b, board.Black) || rules.IsWin(b, board.White) || b.IsFull() {
		return ErrGameOver
	}
	g.id = uuid.NewString()
	g.board.CopyFrom(b)
	g.history = g.history[:0]
	g.human, g.computer = toMove, toMove.Opponent()
	g.onTurn = toMove
	g.playing = Playing
	g.winner = board.Empty
	return nil
}

func (g *Game) ResetTally() {
	g.tally = Tally{}
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) HumanColor() board.Cell {
	return g.human
}

func (g *Game) ComputerColor() board.Cell {
	return g.computer
}

func (g *Game) OnTurn() board.Cell {
	return g.onTurn
}

func (g *Game) HumanOnTurn() bool {
	return g.playing == Playing && g.onTurn == g.human
}

func (g *Game) Playing() PlayState {
	return g.playing
}

// Winner is the color that made five, or Empty.
func (g *Game) Winner() board.Cell {
	return g.winner
}

func (g *Game) History() []Turn {
	return g.history
}

func (g *Game) Tally() Tally {
	return g.tally
}

// Status is a one-line summary of the game for display.
func (g *Game) Status() string {
	if g.playing == Playing {
		return fmt.Sprintf("move %d, %v to play (you are %v)", len(g.history)+1, g.onTurn, g.human)
	}
	switch g.winner {
	case board.Empty:
		return "the board is full: draw"
	case g.human:
		return fmt.Sprintf("%v wins: you win", g.winner)
	}
	return fmt.Sprintf("%v wins: the computer wins", g.winner)
}
