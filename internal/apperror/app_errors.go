package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrInvalidDimensions   = errors.New("board dimensions must be positive")
	ErrInvalidPlayer       = errors.New("player identity must be non-zero")
	ErrDuplicatePlayers    = errors.New("players must have distinct identities")
	ErrInvalidMoveList     = errors.New("invalid move list")
	ErrInvalidGameCount    = errors.New("game count must be positive")
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
