package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type GamePlayService interface {
	Play(ctx context.Context, game *entity.Game) error
}

type gamePlayService struct {
	logger *slog.Logger

	console    Console
	botService BotService
}

func NewGamePlayService(logger *slog.Logger, console Console, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay"),
		console:    console,
		botService: botService,
	}
}

// Play drives one game until somebody wins or the board fills up.
func (that *gamePlayService) Play(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("gameID", game.ID, "mode", int(game.Mode))
	log.Info("game started")

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		that.render(game)

		player := game.CurrentPlayer()

		cell, err := that.nextMove(ctx, game, player)
		if err != nil {
			return fmt.Errorf("failed to get move for %s: %w", player.Mark, err)
		}

		if err = game.MakeTurn(player.Mark, cell); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("move applied", "player", player.Mark, "cell", cell)
	}

	that.render(game)

	if game.IsDraw() {
		that.console.Announce("\nIt's a draw!")
	} else {
		that.console.Announce(fmt.Sprintf("\n%s wins!", game.PlayerByMark(game.Winner).Name))
	}

	log.Info("game finished", "winner", game.Winner, "moves", game.MovesPlayed())

	return nil
}

func (that *gamePlayService) nextMove(ctx context.Context, game *entity.Game, player *entity.Player) (int, error) {
	if player.IsBot() {
		that.console.Print(fmt.Sprintf("\n%s is thinking...", player.Name))

		cell, err := that.botService.ChooseCell(game.Board, player.Mark)
		if err != nil {
			return 0, fmt.Errorf("bot failed to choose cell: %w", err)
		}

		return cell, nil
	}

	that.console.Print(fmt.Sprintf("\n%s's turn.", player.Name))

	return that.getHumanMove(ctx, game.Board)
}

// getHumanMove keeps asking until the player names a free cell.
func (that *gamePlayService) getHumanMove(ctx context.Context, board entity.Board) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		input, err := that.console.ReadLine("Enter a position (1-9): ")
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		cell, err := ParseCell(board, input)
		if err == nil {
			return cell, nil
		}

		that.logger.Debug("rejected move", "input", input, "error", err)
		that.console.Alert(moveErrorMessage(err))
	}
}

func (that *gamePlayService) render(game *entity.Game) {
	that.console.Clear()
	that.console.Title(game.Mode)
	that.console.Board(game.Board)
}
