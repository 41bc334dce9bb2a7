package value

import "github.com/grindlemire/tuicore/pkg/store"

// ValueKey is the reserved attribute key holding a node's own value,
// e.g. the string of a text element.
const ValueKey = "value"

// Store holds the resolved attributes of every widget, keyed by widget ID.
// It is the in-memory attribute storage the render passes read from.
type Store struct {
	attrs map[store.ID]*Attributes
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{attrs: make(map[store.ID]*Attributes)}
}

// Attributes returns the attribute set for id, creating it if needed.
func (s *Store) Attributes(id store.ID) *Attributes {
	a, ok := s.attrs[id]
	if !ok {
		a = NewAttributes()
		s.attrs[id] = a
	}
	return a
}

// Lookup returns the attribute set for id without creating one.
func (s *Store) Lookup(id store.ID) (*Attributes, bool) {
	a, ok := s.attrs[id]
	return a, ok
}

// Set replaces the attribute set for id.
func (s *Store) Set(id store.ID, a *Attributes) {
	s.attrs[id] = a
}

// Remove forgets the attributes of id.
func (s *Store) Remove(id store.ID) {
	delete(s.attrs, id)
}

// Get returns the value under key for widget id.
func (s *Store) Get(id store.ID, key string) (Value, bool) {
	a, ok := s.attrs[id]
	if !ok {
		return Value{}, false
	}
	return a.Get(key)
}
