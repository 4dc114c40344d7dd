// Package rules holds the five-in-a-row win detection and the threat
// scoring shared by move ordering and the move selector.
package rules

import "github.com/domino14/gomoku/board"

// WinLength is the run of stones that wins the game.
const WinLength = 5

// A Direction is a unit step along one of the four lines through a cell.
type Direction struct {
	DRow int
	DCol int
}

// Directions are horizontal, vertical, diagonal and anti-diagonal. Each
// line is covered once; callers walk both signs when they need both ends.
var Directions = [4]Direction{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// IsWin scans the whole board for a run of WinLength stones of player.
// Runs are walked forward from their first cell only.
func IsWin(b *board.Board, player board.Cell) bool {
	dim := b.Dim()
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if b.At(row, col) != player {
				continue
			}
			for _, d := range Directions {
				endRow := row + d.DRow*(WinLength-1)
				endCol := col + d.DCol*(WinLength-1)
				if !b.InBounds(endRow, endCol) {
					continue
				}
				i := 1
				for ; i < WinLength; i++ {
					if b.At(row+d.DRow*i, col+d.DCol*i) != player {
						break
					}
				}
				if i == WinLength {
					return true
				}
			}
		}
	}
	return false
}

// IsWinAt checks only the lines through (row, col), which must hold a stone
// of player. It agrees with IsWin for every run passing through that cell.
func IsWinAt(b *board.Board, player board.Cell, row, col int) bool {
	if !b.InBounds(row, col) || b.At(row, col) != player {
		return false
	}
	for _, d := range Directions {
		count := 1 + countRun(b, player, row, col, d.DRow, d.DCol) +
			countRun(b, player, row, col, -d.DRow, -d.DCol)
		if count >= WinLength {
			return true
		}
	}
	return false
}

// countRun counts consecutive stones of player starting one step away from
// (row, col) in direction (dr, dc).
func countRun(b *board.Board, player board.Cell, row, col, dr, dc int) int {
	n := 0
	r, c := row+dr, col+dc
	for b.InBounds(r, c) && b.At(r, c) == player {
		n++
		r += dr
		c += dc
	}
	return n
}

// WinningMove reports whether placing player's stone at m completes a run.
// The board is left unchanged.
func WinningMove(b *board.Board, player board.Cell, m board.Move) bool {
	if !b.IsEmpty(m.Row, m.Col) {
		return false
	}
	b.Apply(m, player)
	defer b.Clear(m)
	return IsWinAt(b, player, m.Row, m.Col)
}
