package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

var _ service.Console = (*console.Console)(nil)

// RunApp - runs the game on the process terminal.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	terminal, err := console.NewTerminal(console.Options{
		Color:       !conf.NoColor,
		ClearScreen: !conf.NoClear,
		WindowTitle: true,
		HistoryFile: conf.HistoryFile,
	})
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}

	defer func() {
		if err = terminal.Close(); err != nil {
			log.Error("could not close terminal", "error", err)
		}
	}()

	score, err := RunSession(ctx, logger, terminal)
	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	if err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Session finished", "games", score.Games, "xWins", score.XWins, "oWins", score.OWins, "draws", score.Draws)

	return nil
}

// RunSession wires the services onto con and plays until the session ends.
func RunSession(ctx context.Context, logger *slog.Logger, con service.Console) (service.Score, error) {
	botService := service.NewBotService()
	gamePlayService := service.NewGamePlayService(logger, con, botService)
	sessionService := service.NewSessionService(logger, con, gamePlayService)

	return sessionService.Run(ctx)
}
