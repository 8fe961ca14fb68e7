package component

// Gravity is added to the vertical velocity every movement step.
type Gravity struct {
	Accel float64
}

var GravityComponent = NewComponent[Gravity]()
