package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

type Mode int

const (
	TwoPlayer  Mode = 1
	VsComputer Mode = 2
)

// Modes lists the selectable modes in menu order.
var Modes = []Mode{TwoPlayer, VsComputer}

func (that Mode) IsValid() bool {
	return that == TwoPlayer || that == VsComputer
}

func (that Mode) String() string {
	switch that {
	case TwoPlayer:
		return "2-Player (Human vs Human)"
	case VsComputer:
		return "AI Mode (Human (X) vs Computer (O))"
	default:
		return fmt.Sprintf("mode(%d)", int(that))
	}
}

// MenuLabel is the short name shown in the mode menu. String is the longer form for the in-game header.
func (that Mode) MenuLabel() string {
	switch that {
	case TwoPlayer:
		return "2-Player (Human vs Human)"
	case VsComputer:
		return "AI Mode (Human vs Computer)"
	default:
		return that.String()
	}
}

type Game struct {
	ID      string
	Board   Board
	Winner  Mark
	Status  string
	Turn    Mark
	Mode    Mode
	Players []*Player
}

// NewGame starts a game on an empty board with X to move. In VsComputer mode
// the human always plays X and the computer plays O.
func NewGame(id string, mode Mode) *Game {
	players := []*Player{NewHumanPlayer(PlayerX), NewHumanPlayer(PlayerO)}
	if mode == VsComputer {
		players[1] = NewBotPlayer(PlayerO)
	}

	return &Game{
		ID:      id,
		Board:   Board{},
		Turn:    PlayerX,
		Status:  StatusOngoing,
		Mode:    mode,
		Players: players,
	}
}

// DetermineGameResult returns the winner's mark, PlayerTie for a draw, or EmptyCell while the game goes on.
func (that *Game) DetermineGameResult() Mark {
	switch {
	case that.Board.CheckWinner(PlayerX):
		return PlayerX
	case that.Board.CheckWinner(PlayerO):
		return PlayerO
	case that.Board.CheckDraw():
		return PlayerTie
	default:
		return EmptyCell
	}
}

// MakeTurn applies a move for playerMark. The turn passes to the other player only
// when the move does not end the game.
func (that *Game) MakeTurn(playerMark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.ApplyMove(cell, playerMark); err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.UpdateGameState()

	return nil
}

// UpdateGameState settles Winner and Status from the board, or passes the turn while the game goes on.
func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
	// game continue
	default:
		that.Status = StatusOngoing
		that.Turn = that.Turn.Opponent()
	}
}

// CurrentPlayer is the player whose turn it is.
func (that *Game) CurrentPlayer() *Player {
	return that.PlayerByMark(that.Turn)
}

func (that *Game) PlayerByMark(mark Mark) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return NewHumanPlayer(mark)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

// MovesPlayed counts the marks on the board.
func (that *Game) MovesPlayed() int {
	return that.Board.Count(PlayerX) + that.Board.Count(PlayerO)
}
