package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

var ErrBotMoveIgnored = errors.New("bot move was ignored")

type GameUseCase interface {
	Replay(ctx context.Context, moves []int) (*Summary, error)
	SelfPlay(ctx context.Context) (*Summary, error)
	SelfPlaySeries(ctx context.Context, games int) ([]*Summary, error)
}

type gamePlayService interface {
	Start() error
	Reset()
	DropPiece(column int) entity.MoveResult
	State() entity.GameState
}

type botService interface {
	ChooseColumn(state entity.GameState) (int, error)
}

// Move is one entry of a replayed move list.
type Move struct {
	Index  int               `json:"index"`
	Column int               `json:"column"`
	Result entity.MoveResult `json:"result"`
}

type Summary struct {
	Moves    []Move           `json:"moves"`
	Ignored  int              `json:"ignored"`
	Outcome  entity.Outcome   `json:"outcome"`
	Final    entity.GameState `json:"final"`
	Finished bool             `json:"finished"`
}

type gameUseCase struct {
	logger *slog.Logger

	gamePlayService gamePlayService
	botService      botService
}

func NewGameUseCase(logger *slog.Logger, gamePlayService gamePlayService, botService botService) GameUseCase {
	return &gameUseCase{
		logger:          logger.With("component", "usecase"),
		gamePlayService: gamePlayService,
		botService:      botService,
	}
}

// Replay starts the game and feeds moves in order. Moves after the game has
// concluded are still submitted and reported as ignored.
func (that *gameUseCase) Replay(ctx context.Context, moves []int) (*Summary, error) {
	log := that.logger.With("method", "Replay")

	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: no moves given", apperror.ErrInvalidMoveList)
	}

	if err := that.gamePlayService.Start(); err != nil {
		return nil, fmt.Errorf("failed to start replay: %w", err)
	}

	summary := &Summary{
		Moves:   make([]Move, 0, len(moves)),
		Outcome: entity.OutcomeContinue,
	}

	for i, column := range moves {
		if err := ctx.Err(); err != nil {
			summary.Final = that.gamePlayService.State()
			return summary, fmt.Errorf("replay interrupted at move %d: %w", i, err)
		}

		summary.record(i, column, that.gamePlayService.DropPiece(column))
	}

	summary.Final = that.gamePlayService.State()

	log.Info("replay finished",
		"moves", len(moves),
		"ignored", summary.Ignored,
		"outcome", summary.Outcome.String(),
	)

	return summary, nil
}

// SelfPlay lets the bot move for both players until the game concludes.
func (that *gameUseCase) SelfPlay(ctx context.Context) (*Summary, error) {
	log := that.logger.With("method", "SelfPlay")

	if err := that.gamePlayService.Start(); err != nil {
		return nil, fmt.Errorf("failed to start self-play: %w", err)
	}

	summary := &Summary{Outcome: entity.OutcomeContinue}

	for i := 0; !summary.Finished; i++ {
		state := that.gamePlayService.State()
		summary.Final = state

		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("self-play interrupted at move %d: %w", i, err)
		}

		column, err := that.botService.ChooseColumn(state)
		if err != nil {
			return summary, fmt.Errorf("bot failed to choose column: %w", err)
		}

		result := that.gamePlayService.DropPiece(column)
		if result.IsIgnored() {
			return summary, fmt.Errorf("%w: move %d, column %d", ErrBotMoveIgnored, i, column)
		}

		summary.record(i, column, result)
	}

	summary.Final = that.gamePlayService.State()

	log.Info("self-play finished", "moves", len(summary.Moves), "outcome", summary.Outcome.String())

	return summary, nil
}

// SelfPlaySeries plays games in a row on the same session, resetting the board
// before every game after the first.
func (that *gameUseCase) SelfPlaySeries(ctx context.Context, games int) ([]*Summary, error) {
	if games <= 0 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidGameCount, games)
	}

	summaries := make([]*Summary, 0, games)

	for i := 0; i < games; i++ {
		if i > 0 {
			that.gamePlayService.Reset()
		}

		summary, err := that.SelfPlay(ctx)
		if summary != nil {
			summaries = append(summaries, summary)
		}

		if err != nil {
			return summaries, fmt.Errorf("game %d: %w", i+1, err)
		}
	}

	return summaries, nil
}

func (that *Summary) record(index, column int, result entity.MoveResult) {
	that.Moves = append(that.Moves, Move{Index: index, Column: column, Result: result})

	if result.IsIgnored() {
		that.Ignored++
		return
	}

	if result.Concluded() {
		that.Outcome = result.Outcome
		that.Finished = true
	}
}
