package component

// Input stores the player's held intents. CanJump and CanShoot turn a held
// key into one action per press.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Shoot bool

	CanShoot bool
	CanJump  bool
}

func NewInput() Input {
	return Input{CanShoot: true, CanJump: true}
}

var InputComponent = NewComponent[Input]()
