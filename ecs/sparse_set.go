package ecs

import "github.com/kamstrup/intmap"

// componentStore is the type-erased view the World uses to strip
// components when an entity is swept.
type componentStore interface {
	has(id entityID) bool
	remove(id entityID) bool
	len() int
}

// SparseSet stores one component kind keyed by entity id. Values are held
// behind pointers so a *T handed out by Get stays valid while other
// entities gain or lose the same component.
type SparseSet[T any] struct {
	dense  []entityID
	values []*T
	sparse *intmap.Map[entityID, int]
}

func newSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{sparse: intmap.New[entityID, int](64)}
}

func (s *SparseSet[T]) has(id entityID) bool {
	if s == nil {
		return false
	}
	_, ok := s.sparse.Get(id)
	return ok
}

func (s *SparseSet[T]) get(id entityID) (*T, bool) {
	if s == nil {
		return nil, false
	}
	idx, ok := s.sparse.Get(id)
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

// set overwrites an existing value in place or appends a new one.
func (s *SparseSet[T]) set(id entityID, v T) *T {
	if idx, ok := s.sparse.Get(id); ok {
		*s.values[idx] = v
		return s.values[idx]
	}
	ptr := new(T)
	*ptr = v
	s.dense = append(s.dense, id)
	s.values = append(s.values, ptr)
	s.sparse.Put(id, len(s.dense)-1)
	return ptr
}

func (s *SparseSet[T]) remove(id entityID) bool {
	if s == nil {
		return false
	}
	idx, ok := s.sparse.Get(id)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	lastID := s.dense[last]

	s.dense[idx] = s.dense[last]
	s.values[idx] = s.values[last]
	s.sparse.Put(lastID, idx)

	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse.Del(id)
	return true
}

func (s *SparseSet[T]) len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}
