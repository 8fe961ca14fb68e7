// Package physics answers axis-aligned overlap queries between entities.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/ecs/component"
)

// Overlap returns the per-axis penetration of a's and b's bounding boxes at
// their current positions. Both components are positive only when the boxes
// intersect. Entities missing a Transform or BoundingBox never overlap.
func Overlap(w *ecs.World, a, b ecs.Entity) cp.Vector {
	return overlap(w, a, b, func(t *component.Transform) cp.Vector { return t.Position })
}

// PreviousOverlap is Overlap evaluated at the positions both entities had
// before their last movement step. Collision resolution uses it to decide
// which axis a collision came from: a positive Y means the boxes already
// shared rows, so the new contact is horizontal, and vice versa.
//
// This is not a swept test; a diagonal approach that overlaps on neither
// axis in the previous frame resolves on neither.
func PreviousOverlap(w *ecs.World, a, b ecs.Entity) cp.Vector {
	return overlap(w, a, b, func(t *component.Transform) cp.Vector { return t.PreviousPosition })
}

// Intersects reports whether an overlap is positive on both axes.
func Intersects(o cp.Vector) bool {
	return o.X > 0 && o.Y > 0
}

func overlap(w *ecs.World, a, b ecs.Entity, pos func(*component.Transform) cp.Vector) cp.Vector {
	ta, ok := ecs.Get(w, a, component.TransformComponent)
	if !ok {
		return cp.Vector{}
	}
	tb, ok := ecs.Get(w, b, component.TransformComponent)
	if !ok {
		return cp.Vector{}
	}
	ba, ok := ecs.Get(w, a, component.BoundingBoxComponent)
	if !ok {
		return cp.Vector{}
	}
	bb, ok := ecs.Get(w, b, component.BoundingBoxComponent)
	if !ok {
		return cp.Vector{}
	}
	return Penetration(pos(ta), ba.HalfSize, pos(tb), bb.HalfSize)
}

// Penetration is the overlap of two boxes given their centers and half
// sizes.
func Penetration(posA, halfA, posB, halfB cp.Vector) cp.Vector {
	return cp.Vector{
		X: halfA.X + halfB.X - math.Abs(posA.X-posB.X),
		Y: halfA.Y + halfB.Y - math.Abs(posA.Y-posB.Y),
	}
}
