package service

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

const centerCell = 4

var (
	cornerCells = []int{0, 2, 6, 8}
	sideCells   = []int{1, 3, 5, 7}
)

type BotService interface {
	ChooseCell(board entity.Board, mark entity.Mark) (int, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// ChooseCell picks a move for mark by fixed priority: win, block, center, corner, side.
// It looks one ply ahead only, so a careful opponent can still beat it.
func (that *botService) ChooseCell(board entity.Board, mark entity.Mark) (int, error) {
	available := board.EmptyCells()
	if len(available) == 0 {
		return 0, ErrNoAvailableMoves
	}

	if cell, ok := findWinningCell(board, available, mark); ok {
		return cell, nil
	}

	if cell, ok := findWinningCell(board, available, mark.Opponent()); ok {
		return cell, nil
	}

	if !board.IsOccupied(centerCell) {
		return centerCell, nil
	}

	for _, cells := range [][]int{cornerCells, sideCells} {
		for _, cell := range cells {
			if !board.IsOccupied(cell) {
				return cell, nil
			}
		}
	}

	return available[0], nil
}

func findWinningCell(board entity.Board, available []int, mark entity.Mark) (int, bool) {
	for _, cell := range available {
		if board.WouldWin(cell, mark) {
			return cell, true
		}
	}

	return 0, false
}
