package system

import (
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
)

// LifespanSystem marks entities whose lifespan ran out this frame.
type LifespanSystem struct{}

func NewLifespanSystem() *LifespanSystem {
	return &LifespanSystem{}
}

func (s *LifespanSystem) Update(w *ecs.World, f *ecs.Frame) {
	if w == nil || f == nil {
		return
	}

	ecs.ForEach(w, component.LifespanComponent, func(e ecs.Entity, l *component.Lifespan) {
		if l.Expired(f.Number) {
			w.DestroyEntity(e)
		}
	})
}
