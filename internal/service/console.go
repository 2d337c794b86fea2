package service

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// Console is the terminal the game talks to.
type Console interface {
	// ReadLine shows prompt and blocks until a full line is read.
	// It returns apperror.ErrInputClosed once no more input can arrive.
	ReadLine(prompt string) (string, error)

	Clear()
	Title(mode entity.Mode)
	Board(board entity.Board)

	Print(msg string)
	Alert(msg string)
	Announce(msg string)
}
