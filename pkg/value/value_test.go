package value

import (
	"errors"
	"slices"
	"testing"
)

func TestParseHex(t *testing.T) {
	type tc struct {
		input   string
		want    Hex
		wantErr bool
	}

	tests := map[string]tc{
		"six digits":    {input: "#ff8000", want: NewHex(0xff, 0x80, 0x00)},
		"no hash":       {input: "0a0B0c", want: NewHex(0x0a, 0x0b, 0x0c)},
		"three digits":  {input: "#f80", want: NewHex(0xff, 0x88, 0x00)},
		"bad length":    {input: "#ff80", wantErr: true},
		"bad character": {input: "#gg0000", wantErr: true},
		"bad short":     {input: "#zzz", wantErr: true},
		"empty":         {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHex) {
					t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValue_TypedAccessors(t *testing.T) {
	s := Str("hi")
	if v, ok := s.AsStr(); !ok || v != "hi" {
		t.Errorf("AsStr() = %q, %v", v, ok)
	}
	if _, ok := s.AsInt(); ok {
		t.Error("Str.AsInt() ok = true, want false")
	}

	n := Int(-4)
	if v, ok := n.AsInt(); !ok || v != -4 {
		t.Errorf("AsInt() = %d, %v", v, ok)
	}
	if _, ok := n.AsBool(); ok {
		t.Error("Int.AsBool() ok = true, want false")
	}

	c := Color(NewHex(1, 2, 3))
	if v, ok := c.AsHex(); !ok || v != NewHex(1, 2, 3) {
		t.Errorf("AsHex() = %v, %v", v, ok)
	}
	if c.String() != "#010203" {
		t.Errorf("String() = %q, want #010203", c.String())
	}

	var zero Value
	if !zero.IsNone() || zero.Truthy() || zero.String() != "" {
		t.Error("zero Value should be none, falsy and render empty")
	}
}

func TestValue_Truthy(t *testing.T) {
	type tc struct {
		v    Value
		want bool
	}

	tests := map[string]tc{
		"true":         {v: Bool(true), want: true},
		"false":        {v: Bool(false), want: false},
		"zero int":     {v: Int(0), want: false},
		"int":          {v: Int(3), want: true},
		"empty string": {v: Str(""), want: false},
		"string":       {v: Str("x"), want: true},
		"color":        {v: Color(Hex{}), want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.v.Truthy(); got != tt.want {
				t.Errorf("Truthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttributes_LastWriteWinsInOrder(t *testing.T) {
	a := NewAttributes()
	a.Set("width", Int(3))
	a.SetStr("name", "box")
	old, replaced := a.Set("width", Int(5))

	if !replaced {
		t.Fatal("Set() existing key replaced = false")
	}
	if v, _ := old.AsInt(); v != 3 {
		t.Errorf("Set() returned old = %d, want 3", v)
	}
	if v, ok := a.Int("width"); !ok || v != 5 {
		t.Errorf("Int(width) = %d, %v, want 5, true", v, ok)
	}

	var keys []string
	for k := range a.All() {
		keys = append(keys, k)
	}
	if !slices.Equal(keys, []string{"width", "name"}) {
		t.Errorf("All() keys = %v, want [width name]", keys)
	}
}

func TestAttributes_WrongKindFallsBack(t *testing.T) {
	a := NewAttributes()
	a.SetStr("width", "wide")
	a.Set("bold", Int(1))

	if _, ok := a.Int("width"); ok {
		t.Error("Int() on string ok = true, want false")
	}
	if a.Bool("bold") {
		t.Error("Bool() on int = true, want false")
	}
	if _, ok := a.Hex("missing"); ok {
		t.Error("Hex(missing) ok = true, want false")
	}

	var nilAttrs *Attributes
	if _, ok := nilAttrs.Get("x"); ok || nilAttrs.Len() != 0 {
		t.Error("nil Attributes should be empty")
	}
}

func TestAttributes_DeleteAndClone(t *testing.T) {
	a := NewAttributes()
	a.Set("a", Int(1))
	a.Set("b", Int(2))
	a.Set("c", Int(3))

	c := a.Clone()
	a.Delete("b")

	if a.Len() != 2 {
		t.Errorf("Len() after Delete = %d, want 2", a.Len())
	}
	if _, ok := a.Get("b"); ok {
		t.Error("Get(b) after Delete ok = true")
	}
	if c.Len() != 3 {
		t.Errorf("clone Len() = %d, want 3", c.Len())
	}
}

func TestStore_Get(t *testing.T) {
	s := NewStore()
	s.Attributes(4).Set("padding", Int(2))

	if v, ok := s.Get(4, "padding"); !ok || v.Kind() != KindInt {
		t.Errorf("Get(4, padding) = %v, %v", v, ok)
	}
	if _, ok := s.Get(5, "padding"); ok {
		t.Error("Get(unknown id) ok = true, want false")
	}
	s.Remove(4)
	if _, ok := s.Lookup(4); ok {
		t.Error("Lookup() after Remove ok = true")
	}
}
