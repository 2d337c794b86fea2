package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrGameFinished = errors.New("game is already finished")

	ErrInvalidInput = errors.New("input is not a number")
	ErrOutOfRange   = errors.New("position out of range")
	ErrInvalidMode  = errors.New("unknown game mode")
	ErrInputClosed  = errors.New("input closed")
)
