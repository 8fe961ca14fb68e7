package component

import "fmt"

// PlayerState is the player's movement state. The zero value is
// StateStanding, the state a player spawns in.
type PlayerState uint8

const (
	StateStanding PlayerState = iota
	StateJumping
	StateGround
	StateAir
	StateBouncing
)

func (s PlayerState) String() string {
	switch s {
	case StateStanding:
		return "standing"
	case StateJumping:
		return "jumping"
	case StateGround:
		return "ground"
	case StateAir:
		return "air"
	case StateBouncing:
		return "bouncing"
	default:
		return fmt.Sprintf("PlayerState(%d)", uint8(s))
	}
}

type State struct {
	Current PlayerState
}

var StateComponent = NewComponent[State]()
