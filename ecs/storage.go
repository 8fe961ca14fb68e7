package ecs

// entitySlot is the bookkeeping for one recyclable entity id.
type entitySlot struct {
	gen      generation
	category Category
	alive    bool
	pending  bool
}

// entityStore tracks entity generations, free ids and creation order.
type entityStore struct {
	slots []entitySlot
	free  []entityID
	order []Entity
}

func (s *entityStore) create(cat Category) Entity {
	var id entityID
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.slots = append(s.slots, entitySlot{})
		id = entityID(len(s.slots))
	}

	slot := &s.slots[id-1]
	slot.category = cat
	slot.alive = true
	slot.pending = false

	e := makeEntity(id, slot.gen)
	s.order = append(s.order, e)
	return e
}

func (s *entityStore) slot(e Entity) (*entitySlot, bool) {
	id := e.id()
	if id == 0 || int(id) > len(s.slots) {
		return nil, false
	}
	slot := &s.slots[id-1]
	if !slot.alive || slot.gen != e.generation() {
		return nil, false
	}
	return slot, true
}

// destroy only marks the entity; sweep performs the removal.
func (s *entityStore) destroy(e Entity) bool {
	slot, ok := s.slot(e)
	if !ok {
		return false
	}
	slot.pending = true
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	_, ok := s.slot(e)
	return ok
}

func (s *entityStore) isPending(e Entity) bool {
	slot, ok := s.slot(e)
	return ok && slot.pending
}

// sweep releases every marked entity and returns the released handles.
// Creation order of the survivors is preserved.
func (s *entityStore) sweep() []Entity {
	var removed []Entity
	kept := s.order[:0]
	for _, e := range s.order {
		slot := &s.slots[e.id()-1]
		if !slot.pending {
			kept = append(kept, e)
			continue
		}
		removed = append(removed, e)
		slot.alive = false
		slot.pending = false
		slot.category = CategoryNone
		slot.gen++
		s.free = append(s.free, e.id())
	}
	clear(s.order[len(kept):])
	s.order = kept
	return removed
}

// live returns a snapshot of entities that are alive and not marked,
// in creation order, filtered by category when any are given.
func (s *entityStore) live(cats []Category) []Entity {
	out := make([]Entity, 0, len(s.order))
	for _, e := range s.order {
		slot := &s.slots[e.id()-1]
		if slot.pending {
			continue
		}
		if len(cats) > 0 && !containsCategory(cats, slot.category) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func containsCategory(cats []Category, c Category) bool {
	for _, want := range cats {
		if want == c {
			return true
		}
	}
	return false
}
