// Package value holds resolved attribute values and the ordered attribute
// sets widgets read during layout and paint.
//
// A Value is one of four primitive kinds: string, integer, hex colour or
// boolean. Typed accessors never fail; they report false when a value is
// absent or of another kind, and callers fall back to their defaults.
package value
