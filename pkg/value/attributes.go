package value

import "iter"

// Reader is read-only typed access to a set of attributes.
// It is what a renderer receives alongside each glyph.
type Reader interface {
	Get(key string) (Value, bool)
	Str(key string) (string, bool)
	Int(key string) (int64, bool)
	Hex(key string) (Hex, bool)
	Bool(key string) bool
}

var _ Reader = (*Attributes)(nil)

// Attributes is a small insertion-ordered map of attribute values.
// Keys are unique; setting an existing key replaces its value in place.
//
// The zero value is an empty set ready to use.
type Attributes struct {
	keys   []string
	values []Value
}

// NewAttributes creates an empty attribute set.
func NewAttributes() *Attributes {
	return &Attributes{}
}

func (a *Attributes) index(key string) int {
	for i, k := range a.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Set stores v under key and returns any value it replaced.
func (a *Attributes) Set(key string, v Value) (Value, bool) {
	if i := a.index(key); i >= 0 {
		old := a.values[i]
		a.values[i] = v
		return old, true
	}
	a.keys = append(a.keys, key)
	a.values = append(a.values, v)
	return Value{}, false
}

// SetStr stores a string value under key.
func (a *Attributes) SetStr(key, s string) (Value, bool) {
	return a.Set(key, Str(s))
}

// Delete removes key, preserving the order of the remaining keys.
func (a *Attributes) Delete(key string) (Value, bool) {
	i := a.index(key)
	if i < 0 {
		return Value{}, false
	}
	old := a.values[i]
	a.keys = append(a.keys[:i], a.keys[i+1:]...)
	a.values = append(a.values[:i], a.values[i+1:]...)
	return old, true
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (Value, bool) {
	if a == nil {
		return Value{}, false
	}
	if i := a.index(key); i >= 0 {
		return a.values[i], true
	}
	return Value{}, false
}

// Str returns the string stored under key.
func (a *Attributes) Str(key string) (string, bool) {
	v, _ := a.Get(key)
	return v.AsStr()
}

// Int returns the integer stored under key.
func (a *Attributes) Int(key string) (int64, bool) {
	v, _ := a.Get(key)
	return v.AsInt()
}

// Hex returns the colour stored under key.
func (a *Attributes) Hex(key string) (Hex, bool) {
	v, _ := a.Get(key)
	return v.AsHex()
}

// Bool returns true only if key holds the boolean true.
func (a *Attributes) Bool(key string) bool {
	v, _ := a.Get(key)
	b, _ := v.AsBool()
	return b
}

// Len returns the number of keys.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// All iterates keys and values in insertion order.
func (a *Attributes) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if a == nil {
			return
		}
		for i, k := range a.keys {
			if !yield(k, a.values[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (a *Attributes) Clone() *Attributes {
	if a == nil {
		return NewAttributes()
	}
	return &Attributes{
		keys:   append([]string(nil), a.keys...),
		values: append([]Value(nil), a.values...),
	}
}
