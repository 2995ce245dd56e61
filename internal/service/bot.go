package service

import (
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	ChooseColumn(state entity.GameState) (int, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService returns a bot that picks uniformly among the columns that still have room.
func NewBotService(seed int64) BotService {
	return &botService{
		rnd: rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *botService) ChooseColumn(state entity.GameState) (int, error) {
	if len(state.Board) == 0 {
		return 0, ErrNoAvailableMoves
	}

	// a column has room while its top cell is empty
	top := state.Board[0]

	availableColumns := make([]int, 0, len(top))
	for col, cell := range top {
		if cell == entity.NoPlayer {
			availableColumns = append(availableColumns, col)
		}
	}

	if len(availableColumns) == 0 {
		return 0, ErrNoAvailableMoves
	}

	return availableColumns[that.rnd.Intn(len(availableColumns))], nil
}
