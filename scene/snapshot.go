package scene

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
)

// Sprite is the render state of one entity.
type Sprite struct {
	Entity    ecs.Entity
	Category  ecs.Category
	Animation component.AnimationID
	Name      string
	Frame     int
	Position  cp.Vector
	Scale     cp.Vector
	Angle     float64
	// Size is the animation frame size.
	Size cp.Vector
	// Box is the bounding box size; HasBox is false for passive entities.
	Box    cp.Vector
	HasBox bool
}

// Snapshot lists every live entity that has a position and an animation,
// in creation order. It does not modify the world.
func (p *Play) Snapshot() []Sprite {
	ents := p.world.Query()
	sprites := make([]Sprite, 0, len(ents))
	for _, e := range ents {
		t, ok := ecs.Get(p.world, e, component.TransformComponent)
		if !ok {
			continue
		}
		a, ok := ecs.Get(p.world, e, component.AnimationComponent)
		if !ok {
			continue
		}
		cat, _ := p.world.Category(e)
		s := Sprite{
			Entity:    e,
			Category:  cat,
			Animation: a.Def.ID,
			Name:      a.Name(),
			Frame:     a.Frame(),
			Position:  t.Position,
			Scale:     t.Scale,
			Angle:     t.Angle,
			Size:      a.Def.Size(),
		}
		if box, ok := ecs.Get(p.world, e, component.BoundingBoxComponent); ok {
			s.Box = box.Size
			s.HasBox = true
		}
		sprites = append(sprites, s)
	}
	return sprites
}
