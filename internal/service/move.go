package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// ParseCell turns a 1-9 position typed by a player into a board index.
func ParseCell(board entity.Board, input string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, input)
	}

	if position < 1 || position > entity.BoardSize {
		return 0, fmt.Errorf("%w: %d", apperror.ErrOutOfRange, position)
	}

	cell := position - 1
	if board.IsOccupied(cell) {
		return 0, fmt.Errorf("%w: position %d", apperror.ErrCellOccupied, position)
	}

	return cell, nil
}

func ParseMode(input string) (entity.Mode, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %q", apperror.ErrInvalidMode, apperror.ErrInvalidInput, input)
	}

	mode := entity.Mode(choice)
	if !mode.IsValid() {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidMode, choice)
	}

	return mode, nil
}

func moveErrorMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrOutOfRange):
		return "Position out of range. Choose 1-9."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That position is already taken. Choose another."
	default:
		return "Invalid input. Please enter a number 1-9."
	}
}

// wantsReplay is true when the answer starts with y or Y.
func wantsReplay(answer string) bool {
	return strings.HasPrefix(strings.ToLower(answer), "y")
}
