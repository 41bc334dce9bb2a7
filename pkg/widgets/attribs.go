package widgets

import "github.com/grindlemire/tuicore/pkg/value"

// AttributeLookup resolves attribute values for a widget.
// It is read-only for the duration of a pass.
type AttributeLookup interface {
	Get(id WidgetID, key string) (value.Value, bool)
}

var _ value.Reader = Attribs{}

// Attribs is the attribute view of a single widget.
// Typed accessors return false when a key is absent or of another kind.
type Attribs struct {
	lookup AttributeLookup
	id     WidgetID
}

// AttribsOf returns the view of id's attributes.
func AttribsOf(lookup AttributeLookup, id WidgetID) Attribs {
	return Attribs{lookup: lookup, id: id}
}

// Get returns the raw value under key.
func (a Attribs) Get(key string) (value.Value, bool) {
	if a.lookup == nil {
		return value.Value{}, false
	}
	return a.lookup.Get(a.id, key)
}

// Str returns the string under key.
func (a Attribs) Str(key string) (string, bool) {
	v, _ := a.Get(key)
	return v.AsStr()
}

// Int returns the integer under key.
func (a Attribs) Int(key string) (int64, bool) {
	v, _ := a.Get(key)
	return v.AsInt()
}

// Hex returns the colour under key.
func (a Attribs) Hex(key string) (value.Hex, bool) {
	v, _ := a.Get(key)
	return v.AsHex()
}

// Bool returns true only if key holds the boolean true.
func (a Attribs) Bool(key string) bool {
	v, _ := a.Get(key)
	b, _ := v.AsBool()
	return b
}

// Size returns a non-negative integer under key.
// Negative values and other kinds report false.
func (a Attribs) Size(key string) (int, bool) {
	n, ok := a.Int(key)
	if !ok || n < 0 {
		return 0, false
	}
	return int(n), true
}

// Value returns the node's own value, e.g. the string of a text element.
func (a Attribs) Value() value.Value {
	v, _ := a.Get(value.ValueKey)
	return v
}

// Display controls whether an element takes part in layout and paint.
type Display uint8

const (
	// DisplayShow lays out and paints the element.
	DisplayShow Display = iota
	// DisplayHide lays out the element but does not paint it.
	DisplayHide
	// DisplayExclude skips the element entirely.
	DisplayExclude
)

// DisplayOf reads the "display" attribute. Unknown values mean show.
func DisplayOf(a Attribs) Display {
	s, _ := a.Str("display")
	switch s {
	case "hide":
		return DisplayHide
	case "exclude":
		return DisplayExclude
	default:
		return DisplayShow
	}
}
