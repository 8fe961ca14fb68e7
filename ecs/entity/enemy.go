package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
	"github.com/milk9111/notmario/prefabs"
)

// NewEnemy creates a walker heading left at the configured speed.
func NewEnemy(w *ecs.World, def component.AnimationDef, pos cp.Vector, spec prefabs.EnemySpec) (ecs.Entity, error) {
	transform := component.NewTransform(pos)
	transform.Velocity = cp.Vector{X: -spec.Speed}

	b := newBuilder(w, ecs.CategoryEnemy, "enemy")
	add(b, "animation", component.AnimationComponent, component.NewAnimation(def, true))
	add(b, "transform", component.TransformComponent, transform)
	add(b, "bounding box", component.BoundingBoxComponent, component.NewBoundingBox(cp.Vector{X: spec.CX, Y: spec.CY}))
	add(b, "gravity", component.GravityComponent, component.Gravity{Accel: spec.Gravity})
	return b.done()
}

// Defeat turns an enemy into an inert sprite: it plays death once, stops
// moving and no longer collides or falls.
func Defeat(w *ecs.World, e ecs.Entity, death component.AnimationDef) error {
	if err := ecs.Add(w, e, component.AnimationComponent, component.NewAnimation(death, false)); err != nil {
		return err
	}
	ecs.Remove(w, e, component.BoundingBoxComponent)
	ecs.Remove(w, e, component.GravityComponent)
	if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
		t.Velocity = cp.Vector{}
	}
	return nil
}
