package ecs

import "iter"

// Store holds every instance of one component type, densely packed.
// Each entity holds at most one value per store.
//
// Pointers handed out by GetMut and All stay valid until the next Insert of
// a new entity or Remove on the same store. Structural changes while an
// iteration over the same store is running are not supported.
type Store[T any] struct {
	kind     Kind
	index    map[EntityID]int
	entities []EntityID
	data     []T
}

// NewStore creates an empty store for the given kind
func NewStore[T any](kind Kind) *Store[T] {
	return &Store[T]{
		kind:     kind,
		index:    make(map[EntityID]int, 64),
		entities: make([]EntityID, 0, 64),
		data:     make([]T, 0, 64),
	}
}

// Kind returns the component kind held by the store
func (s *Store[T]) Kind() Kind {
	return s.kind
}

// Insert sets the component for id, replacing any existing value
func (s *Store[T]) Insert(id EntityID, value T) {
	if i, ok := s.index[id]; ok {
		s.data[i] = value
		return
	}
	s.index[id] = len(s.data)
	s.entities = append(s.entities, id)
	s.data = append(s.data, value)
}

// Get returns a copy of the component for id
func (s *Store[T]) Get(id EntityID) (T, bool) {
	if i, ok := s.index[id]; ok {
		return s.data[i], true
	}
	var zero T
	return zero, false
}

// GetMut returns a pointer to the stored component for id
func (s *Store[T]) GetMut(id EntityID) (*T, bool) {
	if i, ok := s.index[id]; ok {
		return &s.data[i], true
	}
	return nil, false
}

// Has reports whether id holds this component
func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

// Remove deletes the component for id. The last element is swapped into the
// freed slot.
func (s *Store[T]) Remove(id EntityID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	last := len(s.data) - 1
	if i != last {
		s.data[i] = s.data[last]
		s.entities[i] = s.entities[last]
		s.index[s.entities[i]] = i
	}
	var zero T
	s.data[last] = zero
	s.data = s.data[:last]
	s.entities = s.entities[:last]
	delete(s.index, id)
	return true
}

// Len returns the number of stored components
func (s *Store[T]) Len() int {
	return len(s.data)
}

// Entities returns a copy of the ids holding this component, in dense order
func (s *Store[T]) Entities() []EntityID {
	out := make([]EntityID, len(s.entities))
	copy(out, s.entities)
	return out
}

// All yields every (id, component) pair in dense order
func (s *Store[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i := 0; i < len(s.data); i++ {
			if !yield(s.entities[i], &s.data[i]) {
				return
			}
		}
	}
}

// Clear removes every component
func (s *Store[T]) Clear() {
	s.index = make(map[EntityID]int, 64)
	s.entities = s.entities[:0]
	s.data = s.data[:0]
}
