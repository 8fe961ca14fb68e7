package component

// Lifespan destroys an entity once Frames frames have passed since the
// frame it was created on.
type Lifespan struct {
	Frames  int
	Created int
}

// Expired reports whether the lifespan is over at frame.
func (l Lifespan) Expired(frame int) bool {
	return frame-l.Created >= l.Frames
}

var LifespanComponent = NewComponent[Lifespan]()
