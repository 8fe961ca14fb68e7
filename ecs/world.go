package ecs

import (
	"github.com/kamstrup/intmap"
	"github.com/milk9111/notmario/ecs/component"
)

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   *intmap.Map[component.ComponentID, componentStore]
	ordered  []componentStore
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: intmap.New[component.ComponentID, componentStore](16)}
}

// CreateEntity allocates a new entity with the given category.
func (w *World) CreateEntity(cat Category) Entity {
	return w.entities.create(cat)
}

// DestroyEntity marks an entity for removal at the next Sweep. It reports
// false for handles that are no longer alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle refers to an entity that has not
// been swept. Marked entities are still alive until the sweep.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// IsPending reports whether an alive entity is marked for destruction.
func (w *World) IsPending(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isPending(e)
}

// Active reports whether an entity is alive and not marked.
func (w *World) Active(e Entity) bool {
	return w.IsAlive(e) && !w.IsPending(e)
}

// Category returns the category an alive entity was created with.
func (w *World) Category(e Entity) (Category, bool) {
	if w == nil {
		return CategoryNone, false
	}
	slot, ok := w.entities.slot(e)
	if !ok {
		return CategoryNone, false
	}
	return slot.category, true
}

// Query returns a snapshot of active entities in creation order. With no
// categories every active entity is returned. Entities created while the
// caller iterates the snapshot are not part of it.
func (w *World) Query(cats ...Category) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.live(cats)
}

// Len returns the number of alive entities, marked ones included.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.entities.order)
}

// Sweep removes every marked entity together with all of its components
// and returns how many were removed.
func (w *World) Sweep() int {
	if w == nil {
		return 0
	}
	removed := w.entities.sweep()
	for _, e := range removed {
		for _, store := range w.ordered {
			store.remove(e.id())
		}
	}
	return len(removed)
}
