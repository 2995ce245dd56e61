package entity

import "strconv"

// PlayerID identifies a competitor. The zero value marks an empty cell.
type PlayerID int

const (
	NoPlayer  PlayerID = 0
	PlayerOne PlayerID = 1
	PlayerTwo PlayerID = 2
)

func (that PlayerID) String() string {
	if that == NoPlayer {
		return "none"
	}

	return "player " + strconv.Itoa(int(that))
}
