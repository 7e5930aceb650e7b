package ecs

// store is the type-erased view of a sparseSet the World needs for entity
// destruction.
type store interface {
	remove(e Entity) bool
	has(e Entity) bool
	len() int
}

// sparseSet keeps components densely packed, indexed by entity slot.
type sparseSet[T any] struct {
	dense  []Entity
	values []*T
	sparse []int
}

func newSparseSet[T any]() *sparseSet[T] {
	return &sparseSet[T]{}
}

func (s *sparseSet[T]) index(e Entity) (int, bool) {
	id := int(e.id())
	if id >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id] - 1
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

func (s *sparseSet[T]) has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

func (s *sparseSet[T]) get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

// set inserts or replaces the component for e. A stale generation in the same
// slot is overwritten.
func (s *sparseSet[T]) set(e Entity, v *T) {
	id := int(e.id())
	for id >= len(s.sparse) {
		s.sparse = append(s.sparse, 0)
	}
	if idx := s.sparse[id] - 1; idx >= 0 && idx < len(s.dense) && s.dense[idx].id() == e.id() {
		s.dense[idx] = e
		s.values[idx] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id] = len(s.dense)
}

func (s *sparseSet[T]) remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.id()] = idx + 1

	s.dense = s.dense[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.sparse[e.id()] = 0
	return true
}

func (s *sparseSet[T]) len() int {
	return len(s.dense)
}

// entities returns a copy of the dense entity list, safe to iterate while
// components are added or removed.
func (s *sparseSet[T]) entities() []Entity {
	return append([]Entity(nil), s.dense...)
}
