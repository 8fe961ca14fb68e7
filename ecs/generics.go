package ecs

import "github.com/milk9111/notmario/ecs/component"

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if raw, ok := w.stores.Get(kind.ID()); ok {
		store, _ := raw.(*SparseSet[T])
		return store
	}
	if !create {
		return nil
	}
	store := newSparseSet[T]()
	w.stores.Put(kind.ID(), store)
	w.ordered = append(w.ordered, store)
	return store
}

// Add attaches value to e, replacing any previous value of the same kind
// outright.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	storeFor(w, handle.Kind(), true).set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return storeFor(w, handle.Kind(), false).remove(e.id())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return storeFor(w, handle.Kind(), false).has(e.id())
}

// Get returns a pointer to e's component. The pointer stays valid until the
// component is removed or the entity is swept.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	return storeFor(w, handle.Kind(), false).get(e.id())
}

// ForEach visits every active entity carrying the component, in creation
// order.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	store := storeFor(w, handle.Kind(), false)
	if store.len() == 0 {
		return
	}
	for _, e := range w.Query() {
		if v, ok := store.get(e.id()); ok {
			fn(e, v)
		}
	}
}

// Count returns how many entities carry the component.
func Count[T any](w *World, handle component.ComponentHandle[T]) int {
	return storeFor(w, handle.Kind(), false).len()
}
