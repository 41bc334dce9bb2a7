package store

import "iter"

// ID addresses a slot in a Slab. IDs are reused after removal.
type ID int

// NoID is returned where no slot applies.
const NoID ID = -1

type slot[T any] struct {
	value    T
	occupied bool
	nextFree ID
}

// Slab is a pool of values with free-list reuse of slot IDs.
//
// The most recently freed slot is handed out first; when no slot is free the
// pool grows by one. NextID always reports the ID the next Insert returns.
type Slab[T any] struct {
	slots    []slot[T]
	freeHead ID
	count    int
}

// NewSlab creates an empty slab.
func NewSlab[T any]() *Slab[T] {
	return &Slab[T]{freeHead: NoID}
}

// NextID returns the ID that the next call to Insert will use.
func (s *Slab[T]) NextID() ID {
	if s.freeHead != NoID {
		return s.freeHead
	}
	return ID(len(s.slots))
}

// Insert stores v and returns its ID.
func (s *Slab[T]) Insert(v T) ID {
	s.count++
	if id := s.freeHead; id != NoID {
		sl := &s.slots[id]
		s.freeHead = sl.nextFree
		sl.value = v
		sl.occupied = true
		sl.nextFree = NoID
		return id
	}
	s.slots = append(s.slots, slot[T]{value: v, occupied: true, nextFree: NoID})
	return ID(len(s.slots) - 1)
}

// Replace overwrites an occupied slot and returns the previous value.
// It reports false and does nothing if the slot is vacant.
func (s *Slab[T]) Replace(id ID, v T) (T, bool) {
	var zero T
	if !s.occupied(id) {
		return zero, false
	}
	old := s.slots[id].value
	s.slots[id].value = v
	return old, true
}

// Remove frees the slot and returns its value.
func (s *Slab[T]) Remove(id ID) (T, bool) {
	var zero T
	if !s.occupied(id) {
		return zero, false
	}
	sl := &s.slots[id]
	v := sl.value
	sl.value = zero
	sl.occupied = false
	sl.nextFree = s.freeHead
	s.freeHead = id
	s.count--
	return v, true
}

// Get returns a pointer to the value in an occupied slot.
// The pointer is invalidated by the next Insert.
func (s *Slab[T]) Get(id ID) (*T, bool) {
	if !s.occupied(id) {
		return nil, false
	}
	return &s.slots[id].value, true
}

// Contains reports whether id addresses an occupied slot.
func (s *Slab[T]) Contains(id ID) bool {
	return s.occupied(id)
}

// Len returns the number of occupied slots.
func (s *Slab[T]) Len() int {
	return s.count
}

// All iterates occupied slots in ID order.
func (s *Slab[T]) All() iter.Seq2[ID, *T] {
	return func(yield func(ID, *T) bool) {
		for i := range s.slots {
			if !s.slots[i].occupied {
				continue
			}
			if !yield(ID(i), &s.slots[i].value) {
				return
			}
		}
	}
}

// Drain removes every value, returning them in ID order, and resets the slab.
func (s *Slab[T]) Drain() []T {
	out := make([]T, 0, s.count)
	for i := range s.slots {
		if s.slots[i].occupied {
			out = append(out, s.slots[i].value)
		}
	}
	s.slots = nil
	s.freeHead = NoID
	s.count = 0
	return out
}

func (s *Slab[T]) occupied(id ID) bool {
	return id >= 0 && int(id) < len(s.slots) && s.slots[id].occupied
}
