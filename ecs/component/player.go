package component

// Player holds the movement tuning the level file gives the player.
type Player struct {
	Speed    float64
	Jump     float64
	MaxSpeed float64
	Weapon   string
}

var PlayerComponent = NewComponent[Player]()
