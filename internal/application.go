package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour-backend/internal/config"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
)

// Mode selects how RunApp drives the session.
type Mode struct {
	// Moves are replayed in order unless SelfPlay is set.
	Moves []int

	SelfPlay bool
	Seed     int64
	// Games is the number of self-play games on one session, reset in between.
	Games int
}

// RunApp - builds a session from conf and plays it according to mode. It returns one summary per game played.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, mode Mode) ([]*usecase.Summary, error) {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	first, second := conf.Players.IDs()

	session, err := entity.NewSession(first, second, conf.Board.Height, conf.Board.Width)
	if err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}

	gamePlayService := service.NewGamePlayService(logger, session)
	botService := service.NewBotService(mode.Seed)
	gameUseCase := usecase.NewGameUseCase(logger, gamePlayService, botService)

	if mode.SelfPlay {
		log.Info("Starting self-play", "seed", mode.Seed, "games", mode.Games, "height", conf.Board.Height, "width", conf.Board.Width)

		summaries, err := gameUseCase.SelfPlaySeries(ctx, mode.Games)
		if err != nil {
			return summaries, fmt.Errorf("self-play failed: %w", err)
		}

		return summaries, nil
	}

	log.Info("Starting replay", "moves", len(mode.Moves), "height", conf.Board.Height, "width", conf.Board.Width)

	summary, err := gameUseCase.Replay(ctx, mode.Moves)
	if summary == nil {
		return nil, fmt.Errorf("replay failed: %w", err)
	}

	if err != nil {
		return []*usecase.Summary{summary}, fmt.Errorf("replay failed: %w", err)
	}

	return []*usecase.Summary{summary}, nil
}
