package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type GamePlayService interface {
	Start() error
	Reset()

	DropPiece(column int) entity.MoveResult

	State() entity.GameState
}

type gamePlayService struct {
	logger *slog.Logger

	mu      sync.Mutex
	session *entity.Session
}

// NewGamePlayService wraps session so that every move is applied atomically and logged.
func NewGamePlayService(logger *slog.Logger, session *entity.Session) GamePlayService {
	return &gamePlayService{
		logger:  logger.With("component", "gameplay"),
		session: session,
	}
}

func (that *gamePlayService) Start() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.session.Start(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.logger.Info("game started",
		"height", that.session.Height(),
		"width", that.session.Width(),
		"first", that.session.ActivePlayer(),
	)

	return nil
}

func (that *gamePlayService) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.session.Reset()

	that.logger.Info("game reset")
}

func (that *gamePlayService) DropPiece(column int) entity.MoveResult {
	log := that.logger.With("method", "DropPiece", "column", column)

	that.mu.Lock()
	defer that.mu.Unlock()

	result := that.session.DropPiece(column)

	switch result.Outcome {
	case entity.OutcomeIgnored:
		log.Warn("move ignored", "status", that.session.Status(), "player", that.session.ActivePlayer())
	case entity.OutcomeContinue:
		log.Debug("piece dropped", "player", result.Player, "row", result.Row, "next", that.session.ActivePlayer())
	case entity.OutcomeWin:
		log.Info("game won", "player", result.Player, "row", result.Row)
	case entity.OutcomeTie:
		log.Info("game tied", "player", result.Player, "row", result.Row)
	}

	return result
}

func (that *gamePlayService) State() entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.session.State()
}
