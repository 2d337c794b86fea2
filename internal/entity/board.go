package entity

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	EmptyCell Mark = ""
)

const BoardSize = 9

// WinCombos lists every triple that wins the game: rows, columns, diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board is laid out row-major: index = row*3 + col.
type Board [BoardSize]Mark

func validCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

func (that *Board) IsOccupied(cell int) bool {
	return validCell(cell) && that[cell].IsPlayer()
}

// ApplyMove places mark on an empty cell. The board is left untouched on error.
func (that *Board) ApplyMove(cell int, mark Mark) error {
	if !validCell(cell) {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, cell)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidMove, mark)
	}

	if that.IsOccupied(cell) {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

func (that *Board) CheckWinner(mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

// CheckDraw reports a full board on which nobody has won.
func (that *Board) CheckDraw() bool {
	for _, cell := range that {
		if !cell.IsPlayer() {
			return false
		}
	}

	return !that.CheckWinner(PlayerX) && !that.CheckWinner(PlayerO)
}

// WouldWin reports whether placing mark on cell completes a triple.
// It works on a copy, the receiver is never modified.
func (that Board) WouldWin(cell int, mark Mark) bool {
	if err := that.ApplyMove(cell, mark); err != nil {
		return false
	}

	return that.CheckWinner(mark)
}

func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if !cell.IsPlayer() {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// Symbol is what a cell looks like on screen: its mark, or its 1-based position when empty.
func (that *Board) Symbol(cell int) string {
	if that.IsOccupied(cell) {
		return string(that[cell])
	}

	return strconv.Itoa(cell + 1)
}
