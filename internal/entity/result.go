package entity

// Outcome is the observable result of a drop.
type Outcome uint8

const (
	OutcomeIgnored Outcome = iota
	OutcomeContinue
	OutcomeWin
	OutcomeTie
)

func (that Outcome) String() string {
	switch that {
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return "win"
	case OutcomeTie:
		return "tie"
	default:
		return "ignored"
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// MoveResult describes what a single DropPiece call did. Row and Column are
// -1 when the move was ignored. Player is the mover, or NoPlayer when ignored.
type MoveResult struct {
	Outcome Outcome  `json:"outcome"`
	Player  PlayerID `json:"player"`
	Row     int      `json:"row"`
	Column  int      `json:"column"`
}

func ignored() MoveResult {
	return MoveResult{Outcome: OutcomeIgnored, Player: NoPlayer, Row: -1, Column: -1}
}

func (that MoveResult) IsIgnored() bool {
	return that.Outcome == OutcomeIgnored
}

// Concluded reports whether the move ended the game.
func (that MoveResult) Concluded() bool {
	return that.Outcome == OutcomeWin || that.Outcome == OutcomeTie
}
