package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
	"github.com/milk9111/notmario/prefabs"
)

func NewPlayer(w *ecs.World, stand component.AnimationDef, pos cp.Vector, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	b := newBuilder(w, ecs.CategoryPlayer, "player")
	add(b, "animation", component.AnimationComponent, component.NewAnimation(stand, true))
	add(b, "transform", component.TransformComponent, component.NewTransform(pos))
	add(b, "bounding box", component.BoundingBoxComponent, component.NewBoundingBox(cp.Vector{X: spec.CX, Y: spec.CY}))
	add(b, "input", component.InputComponent, component.NewInput())
	add(b, "gravity", component.GravityComponent, component.Gravity{Accel: spec.Gravity})
	add(b, "state", component.StateComponent, component.State{Current: component.StateStanding})
	add(b, "player", component.PlayerComponent, component.Player{
		Speed:    spec.Speed,
		Jump:     spec.Jump,
		MaxSpeed: spec.MaxSpeed,
		Weapon:   spec.Weapon,
	})
	return b.done()
}

// NewBullet fires a projectile that expires lifespan frames after frame.
func NewBullet(w *ecs.World, def component.AnimationDef, pos, velocity cp.Vector, lifespan, frame int) (ecs.Entity, error) {
	transform := component.NewTransform(pos)
	transform.Velocity = velocity

	b := newBuilder(w, ecs.CategoryBullet, "bullet")
	add(b, "animation", component.AnimationComponent, component.NewAnimation(def, true))
	add(b, "transform", component.TransformComponent, transform)
	add(b, "bounding box", component.BoundingBoxComponent, component.NewBoundingBox(def.Size()))
	add(b, "lifespan", component.LifespanComponent, component.Lifespan{Frames: lifespan, Created: frame})
	return b.done()
}
