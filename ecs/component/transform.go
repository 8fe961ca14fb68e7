package component

import "github.com/jakecoffman/cp"

// Transform carries position, velocity and facing. PreviousPosition is the
// position at the start of the current movement step.
type Transform struct {
	Position         cp.Vector
	PreviousPosition cp.Vector
	Scale            cp.Vector
	Velocity         cp.Vector
	Angle            float64
}

// NewTransform places an entity at pos facing right with no velocity.
func NewTransform(pos cp.Vector) Transform {
	return Transform{
		Position:         pos,
		PreviousPosition: pos,
		Scale:            cp.Vector{X: 1, Y: 1},
	}
}

var TransformComponent = NewComponent[Transform]()
