package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Two players", func(t *testing.T) {
		// When: a two player game is created
		game := NewGame("123", TwoPlayer)

		// Then: the game starts empty with X to move and two humans
		expectedGame := &Game{
			ID:      "123",
			Board:   Board{},
			Turn:    PlayerX,
			Status:  StatusOngoing,
			Mode:    TwoPlayer,
			Players: []*Player{NewHumanPlayer(PlayerX), NewHumanPlayer(PlayerO)},
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Versus computer", func(t *testing.T) {
		// When: a game against the computer is created
		game := NewGame("123", VsComputer)

		// Then: the human plays X and moves first, the computer plays O
		require.Len(t, game.Players, 2)
		assert.False(t, game.Players[0].IsBot())
		assert.Equal(t, PlayerX, game.Players[0].Mark)
		assert.True(t, game.Players[1].IsBot())
		assert.Equal(t, PlayerO, game.Players[1].Mark)
		assert.Equal(t, game.Players[0], game.CurrentPlayer())
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", TwoPlayer)

		// When: player X makes a valid turn
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// Then: the board holds the move and the turn passes to O
		assert.Equal(t, Board{0: PlayerX}, game.Board)
		assert.Equal(t, PlayerO, game.Turn)
		assert.True(t, game.IsOngoing())
		assert.Equal(t, EmptyCell, game.Winner)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: a game where cell 0 is occupied by X
		game := NewGame("123", TwoPlayer)
		require.NoError(t, game.MakeTurn(PlayerX, 0))

		// When: O tries the same cell
		err := game.MakeTurn(PlayerO, 0)

		// Then: ErrCellOccupied is returned and the turn stays with O
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, Board{0: PlayerX}, game.Board)
		assert.Equal(t, PlayerO, game.Turn)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: a new game where it's X's turn
		game := NewGame("123", TwoPlayer)

		// When: O tries to move
		err := game.MakeTurn(PlayerO, 1)

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, Board{}, game.Board)
	})

	t.Run("Error on Invalid Cell Index", func(t *testing.T) {
		game := NewGame("123", TwoPlayer)

		assert.ErrorIs(t, game.MakeTurn(PlayerX, 20), apperror.ErrInvalidCell)
		assert.ErrorIs(t, game.MakeTurn(PlayerX, -1), apperror.ErrInvalidCell)
		assert.Equal(t, PlayerX, game.Turn)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X has two in the top row and it is X's turn
		game := NewGame("123", TwoPlayer)
		game.Board = Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		// When: X completes the row
		require.NoError(t, game.MakeTurn(PlayerX, 2))

		// Then: X is the winner and the turn does not toggle
		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, PlayerX, game.Turn)
		assert.Equal(t, PlayerX, game.DetermineGameResult())
	})

	t.Run("Last move without a triple is a draw", func(t *testing.T) {
		// Given: one cell left and no triple possible
		game := NewGame("123", TwoPlayer)
		game.Board = Board{
			x, o, x,
			o, x, o,
			o, x, e,
		}
		game.Turn = PlayerO

		// When: O fills the last cell
		require.NoError(t, game.MakeTurn(PlayerO, 8))

		// Then: the game ends in a draw
		assert.True(t, game.IsDraw())
		assert.Equal(t, PlayerTie, game.DetermineGameResult())
		assert.Equal(t, 9, game.MovesPlayed())
	})

	t.Run("Win on the last cell is not a draw", func(t *testing.T) {
		// Given: one cell left and X completes the right column with it
		game := NewGame("123", TwoPlayer)
		game.Board = Board{
			o, x, x,
			x, o, x,
			o, o, e,
		}

		// When: X fills the last cell
		require.NoError(t, game.MakeTurn(PlayerX, 8))

		// Then: X wins although the board is full
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsDraw())
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, PlayerX, game.DetermineGameResult())
	})

	t.Run("Non-final move keeps the game ongoing", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame("123", TwoPlayer)

		// When: X and O each move
		require.NoError(t, game.MakeTurn(PlayerX, 4))
		require.NoError(t, game.MakeTurn(PlayerO, 0))

		// Then: nobody has won and it is X's turn again
		assert.True(t, game.IsOngoing())
		assert.Equal(t, EmptyCell, game.Winner)
		assert.Equal(t, EmptyCell, game.DetermineGameResult())
		assert.Equal(t, PlayerX, game.Turn)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game X has already won
		game := NewGame("123", TwoPlayer)
		game.Board = Board{x, x, x, e, o, e, e, o, e}
		game.Status = StatusFinished
		game.Winner = PlayerX
		game.Turn = PlayerO

		// When: O tries to move
		err := game.MakeTurn(PlayerO, 3)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_DetermineGameResult(t *testing.T) {
	t.Run("Returns EmptyCell when the game is ongoing", func(t *testing.T) {
		game := &Game{
			Board: Board{
				x, o, e,
				e, x, e,
				e, e, o,
			},
		}

		assert.Equal(t, EmptyCell, game.DetermineGameResult())
	})

	t.Run("Returns PlayerO when Player O wins", func(t *testing.T) {
		game := &Game{
			Board: Board{
				x, x, o,
				e, x, o,
				e, e, o,
			},
		}

		assert.Equal(t, PlayerO, game.DetermineGameResult())
	})
}

func TestMode(t *testing.T) {
	assert.True(t, TwoPlayer.IsValid())
	assert.True(t, VsComputer.IsValid())
	assert.False(t, Mode(0).IsValid())
	assert.False(t, Mode(3).IsValid())
	assert.Equal(t, "2-Player (Human vs Human)", TwoPlayer.String())
	assert.Equal(t, "AI Mode (Human (X) vs Computer (O))", VsComputer.String())
}

func TestMode_MenuLabel(t *testing.T) {
	assert.Equal(t, []Mode{TwoPlayer, VsComputer}, Modes)
	assert.Equal(t, "2-Player (Human vs Human)", TwoPlayer.MenuLabel())
	assert.Equal(t, "AI Mode (Human vs Computer)", VsComputer.MenuLabel())
	assert.Equal(t, "mode(7)", Mode(7).MenuLabel())
}
