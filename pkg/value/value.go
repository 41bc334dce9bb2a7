package value

import "strconv"

// Kind identifies which primitive a Value holds.
type Kind uint8

const (
	// KindNone is the zero Value.
	KindNone Kind = iota
	KindStr
	KindInt
	KindHex
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStr:
		return "str"
	case KindInt:
		return "int"
	case KindHex:
		return "hex"
	case KindBool:
		return "bool"
	default:
		return "none"
	}
}

// Value is a resolved attribute value.
type Value struct {
	kind Kind
	str  string
	num  int64
	hex  Hex
	b    bool
}

// Str creates a string value.
func Str(s string) Value { return Value{kind: KindStr, str: s} }

// Int creates an integer value.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Color creates a hex colour value.
func Color(h Hex) Value { return Value{kind: KindHex, hex: h} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNone reports whether v is the zero Value.
func (v Value) IsNone() bool {
	return v.kind == KindNone
}

// AsStr returns the string if v is a string.
func (v Value) AsStr() (string, bool) {
	return v.str, v.kind == KindStr
}

// AsInt returns the integer if v is an integer.
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == KindInt
}

// AsHex returns the colour if v is a hex colour.
func (v Value) AsHex() (Hex, bool) {
	return v.hex, v.kind == KindHex
}

// AsBool returns the boolean if v is a bool.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Truthy reports whether v counts as true in a condition.
// Empty strings, zero, false and the zero Value are false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindStr:
		return v.str != ""
	case KindInt:
		return v.num != 0
	case KindHex:
		return true
	case KindBool:
		return v.b
	default:
		return false
	}
}

// String renders the value as display text.
func (v Value) String() string {
	switch v.kind {
	case KindStr:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindHex:
		return v.hex.String()
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}
