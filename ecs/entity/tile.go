package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
)

// NewTile creates a solid tile whose box matches its animation frame. The
// animation repeats when def.Loop is set.
func NewTile(w *ecs.World, def component.AnimationDef, pos cp.Vector) (ecs.Entity, error) {
	b := newBuilder(w, ecs.CategoryTile, "tile")
	add(b, "animation", component.AnimationComponent, component.NewAnimation(def, def.Loop))
	add(b, "transform", component.TransformComponent, component.NewTransform(pos))
	add(b, "bounding box", component.BoundingBoxComponent, component.NewBoundingBox(def.Size()))
	return b.done()
}

// NewDecoration creates a non-solid animated entity. A decoration whose
// animation does not loop is destroyed once it finishes.
func NewDecoration(w *ecs.World, def component.AnimationDef, pos cp.Vector) (ecs.Entity, error) {
	return newDecoration(w, def, pos, def.Loop)
}

func newDecoration(w *ecs.World, def component.AnimationDef, pos cp.Vector, repeat bool) (ecs.Entity, error) {
	b := newBuilder(w, ecs.CategoryDecoration, "decoration")
	add(b, "animation", component.AnimationComponent, component.NewAnimation(def, repeat))
	add(b, "transform", component.TransformComponent, component.NewTransform(pos))
	return b.done()
}

// NewCoin creates the coin that pops out of a question block. It plays once
// and is then destroyed by the animation system.
func NewCoin(w *ecs.World, def component.AnimationDef, pos cp.Vector) (ecs.Entity, error) {
	return newDecoration(w, def, pos, false)
}

// Explode swaps a tile to a one-shot explosion and makes it passive.
func Explode(w *ecs.World, e ecs.Entity, explosion component.AnimationDef) error {
	if err := ecs.Add(w, e, component.AnimationComponent, component.NewAnimation(explosion, false)); err != nil {
		return err
	}
	ecs.Remove(w, e, component.BoundingBoxComponent)
	return nil
}
