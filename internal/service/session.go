package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
)

// Score is the in-memory tally of one session. It is never written anywhere.
type Score struct {
	Games int
	XWins int
	OWins int
	Draws int
}

func (that *Score) Record(game *entity.Game) {
	that.Games++

	switch game.Winner {
	case entity.PlayerX:
		that.XWins++
	case entity.PlayerO:
		that.OWins++
	case entity.PlayerTie:
		that.Draws++
	}
}

func (that Score) String() string {
	return fmt.Sprintf("Games: %d | X wins: %d | O wins: %d | Draws: %d", that.Games, that.XWins, that.OWins, that.Draws)
}

type SessionService interface {
	Run(ctx context.Context) (Score, error)
}

type sessionService struct {
	logger *slog.Logger

	console         Console
	gamePlayService GamePlayService
}

func NewSessionService(logger *slog.Logger, console Console, gamePlayService GamePlayService) SessionService {
	return &sessionService{
		logger:          logger.With("component", "session"),
		console:         console,
		gamePlayService: gamePlayService,
	}
}

// Run plays games until the player declines a replay or input runs out.
// Running out of input ends the session normally.
func (that *sessionService) Run(ctx context.Context) (Score, error) {
	var score Score

	err := that.loop(ctx, &score)
	if errors.Is(err, apperror.ErrInputClosed) {
		that.logger.Info("input closed, ending session", "games", score.Games)
		err = nil
	}

	if err != nil {
		return score, err
	}

	if score.Games > 0 {
		that.console.Print("\n" + score.String())
	}

	return score, nil
}

func (that *sessionService) loop(ctx context.Context, score *Score) error {
	for {
		mode, err := that.chooseMode(ctx)
		if err != nil {
			return fmt.Errorf("failed to choose game mode: %w", err)
		}

		gameID, err := pkg.GenerateGameID()
		if err != nil {
			return fmt.Errorf("error generating game ID: %w", err)
		}

		game := entity.NewGame(gameID, mode)
		if err = that.gamePlayService.Play(ctx, game); err != nil {
			return fmt.Errorf("failed to play game: %w", err)
		}

		score.Record(game)

		answer, err := that.console.ReadLine("\nPlay again? (y/n): ")
		if err != nil {
			return fmt.Errorf("failed to read replay answer: %w", err)
		}

		if !wantsReplay(answer) {
			return nil
		}
	}
}

func (that *sessionService) chooseMode(ctx context.Context) (entity.Mode, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		that.console.Clear()
		that.console.Title(0)
		that.console.Print("Choose game mode:")
		for _, mode := range entity.Modes {
			that.console.Print(fmt.Sprintf("%d) %s", int(mode), mode.MenuLabel()))
		}

		input, err := that.console.ReadLine("\nEnter choice (1 or 2): ")
		if err != nil {
			return 0, err
		}

		mode, err := ParseMode(input)
		if err == nil {
			return mode, nil
		}

		that.logger.Debug("rejected mode", "input", input, "error", err)
		that.console.Alert("Invalid choice. Press Enter to try again...")

		if _, err = that.console.ReadLine(""); err != nil {
			return 0, err
		}
	}
}
