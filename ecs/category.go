package ecs

// Category is the fixed tag every entity is created with.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryEnemy
	CategoryTile
	CategoryDecoration
	CategoryBullet
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "Player"
	case CategoryEnemy:
		return "Enemy"
	case CategoryTile:
		return "Tile"
	case CategoryDecoration:
		return "Decoration"
	case CategoryBullet:
		return "Bullet"
	default:
		return "None"
	}
}
