package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Session is a single game between two players. It is not safe for concurrent use.
// A tie finishes the session like a win does, so IsLive reports false after a
// tie rather than staying true with every column full.
type Session struct {
	board   *Board
	players [2]PlayerID
	active  PlayerID
	status  string
}

// NewSession creates a waiting session with an empty board and first as the active player.
func NewSession(first, second PlayerID, height, width int) (*Session, error) {
	if err := ValidateDimensions(height, width); err != nil {
		return nil, err
	}

	if first == NoPlayer || second == NoPlayer {
		return nil, fmt.Errorf("%w: got %d and %d", apperror.ErrInvalidPlayer, first, second)
	}

	if first == second {
		return nil, fmt.Errorf("%w: both are %d", apperror.ErrDuplicatePlayers, first)
	}

	return &Session{
		board:   NewBoard(height, width),
		players: [2]PlayerID{first, second},
		active:  first,
		status:  StatusWaiting,
	}, nil
}

// NewDefaultSession creates a session on a 6x7 board.
func NewDefaultSession(first, second PlayerID) (*Session, error) {
	return NewSession(first, second, DefaultHeight, DefaultWidth)
}

// Start enables moves. A concluded session must be Reset before it can start again.
func (that *Session) Start() error {
	switch that.status {
	case StatusWaiting:
		that.status = StatusOngoing
		return nil
	case StatusOngoing:
		return nil
	case StatusFinished:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.status)
	}
}

// Reset discards the board and returns the session to its freshly created state.
func (that *Session) Reset() {
	that.board = NewBoard(that.board.Height(), that.board.Width())
	that.active = that.players[0]
	that.status = StatusWaiting
}

// DropPiece drops the active player's piece into column.
func (that *Session) DropPiece(column int) MoveResult {
	if !that.IsLive() {
		return ignored()
	}

	mover := that.active

	row, ok := that.board.Drop(column, mover)
	if !ok {
		return ignored()
	}

	result := MoveResult{Outcome: OutcomeContinue, Player: mover, Row: row, Column: column}

	switch {
	case that.board.HasWin(mover):
		that.status = StatusFinished
		result.Outcome = OutcomeWin
	case that.board.IsFull():
		that.status = StatusFinished
		result.Outcome = OutcomeTie
	default:
		that.active = that.opponent(mover)
	}

	return result
}

func (that *Session) opponent(player PlayerID) PlayerID {
	if player == that.players[0] {
		return that.players[1]
	}

	return that.players[0]
}

func (that *Session) IsLive() bool {
	return that.status == StatusOngoing
}

func (that *Session) IsWaiting() bool {
	return that.status == StatusWaiting
}

// IsFinished reports whether a win or tie concluded the game.
func (that *Session) IsFinished() bool {
	return that.status == StatusFinished
}

func (that *Session) Status() string {
	return that.status
}

func (that *Session) ActivePlayer() PlayerID {
	return that.active
}

func (that *Session) Players() [2]PlayerID {
	return that.players
}

// CellOwner returns the player at (row, col). The bool is false for empty or out-of-range cells.
func (that *Session) CellOwner(row, col int) (PlayerID, bool) {
	owner := that.board.Owner(row, col)
	return owner, owner != NoPlayer
}

func (that *Session) Height() int {
	return that.board.Height()
}

func (that *Session) Width() int {
	return that.board.Width()
}

// Board returns a copy of the grid, top row first.
func (that *Session) Board() [][]PlayerID {
	return that.board.Rows()
}

// WinningRun returns the cells of the winning run once a player has won.
func (that *Session) WinningRun() ([]Cell, PlayerID, bool) {
	for _, player := range that.players {
		if run, ok := that.board.WinningRun(player); ok {
			return run, player, true
		}
	}

	return nil, NoPlayer, false
}

// GameState is a read-only snapshot of a session.
type GameState struct {
	Status     string       `json:"status"`
	Players    [2]PlayerID  `json:"players"`
	Turn       PlayerID     `json:"player_turn"`
	Winner     PlayerID     `json:"winner,omitempty"`
	WinningRun []Cell       `json:"winning_run,omitempty"`
	Board      [][]PlayerID `json:"board"`
}

func (that *Session) State() GameState {
	state := GameState{
		Status:  that.status,
		Players: that.players,
		Turn:    that.active,
		Board:   that.board.Rows(),
	}

	if run, winner, ok := that.WinningRun(); ok {
		state.Winner = winner
		state.WinningRun = run
	}

	return state
}

// IsTie reports whether the game ended with a full board and no winner.
func (that GameState) IsTie() bool {
	return that.Status == StatusFinished && that.Winner == NoPlayer
}
