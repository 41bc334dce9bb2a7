package surface

import (
	"testing"

	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/value"
)

func TestNewBuffer_Blank(t *testing.T) {
	b := NewBuffer(3, 2)
	if got := b.String(); got != "   \n   " {
		t.Errorf("String() = %q, want two rows of spaces", got)
	}
	if got := b.Size(); got != geometry.NewSize(3, 2) {
		t.Errorf("Size() = %v, want 3x2", got)
	}
}

func TestBuffer_DrawGlyph(t *testing.T) {
	type tc struct {
		draws []rune
		at    []geometry.Pos
		want  string
	}

	tests := map[string]tc{
		"narrow": {
			draws: []rune{'a', 'b'},
			at:    []geometry.Pos{{X: 0, Y: 0}, {X: 2, Y: 1}},
			want:  "a  \n  b",
		},
		"wide": {
			draws: []rune{'世'},
			at:    []geometry.Pos{{X: 1, Y: 0}},
			want:  " 世\n   ",
		},
		"wide in last column": {
			draws: []rune{'世'},
			at:    []geometry.Pos{{X: 2, Y: 0}},
			want:  "   \n   ",
		},
		"overwrite continuation": {
			draws: []rune{'世', 'x'},
			at:    []geometry.Pos{{X: 0, Y: 0}, {X: 1, Y: 0}},
			want:  " x \n   ",
		},
		"combining joins the glyph on its left": {
			draws: []rune{'e', '\u0301'},
			at:    []geometry.Pos{{X: 0, Y: 0}, {X: 1, Y: 0}},
			want:  "e\u0301  \n   ",
		},
		"combining after wide glyph": {
			draws: []rune{'世', '\u0301'},
			at:    []geometry.Pos{{X: 0, Y: 0}, {X: 2, Y: 0}},
			want:  "世\u0301 \n   ",
		},
		"combining at row start": {
			draws: []rune{'\u0301'},
			at:    []geometry.Pos{{X: 0, Y: 1}},
			want:  "   \n   ",
		},
		"out of bounds": {
			draws: []rune{'z'},
			at:    []geometry.Pos{{X: 5, Y: 5}},
			want:  "   \n   ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer(3, 2)
			for i, r := range tt.draws {
				b.DrawGlyph(r, nil, tt.at[i])
			}
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := len(b.Draws()); got != len(tt.draws) {
				t.Errorf("len(Draws()) = %d, want %d", got, len(tt.draws))
			}
		})
	}
}

func TestBuffer_RecordsStyle(t *testing.T) {
	attrs := value.NewAttributes()
	attrs.Set(ForegroundKey, value.Color(value.NewHex(1, 2, 3)))
	attrs.Set(BoldKey, value.Bool(true))

	b := NewBuffer(2, 1)
	b.DrawGlyph('q', attrs, geometry.NewPos(1, 0))

	want := Style{Fg: value.NewHex(1, 2, 3), HasFg: true, Bold: true}
	if got := b.Cell(geometry.NewPos(1, 0)).Style; got != want {
		t.Errorf("Cell().Style = %+v, want %+v", got, want)
	}
	if got := b.Draws()[0]; got.Rune != 'q' || got.Pos != geometry.NewPos(1, 0) {
		t.Errorf("Draws()[0] = %+v, want q at (1,0)", got)
	}

	b.Clear()
	if len(b.Draws()) != 0 || !b.Cell(geometry.NewPos(1, 0)).IsEmpty() {
		t.Error("Clear() left content behind")
	}
}

func TestBuffer_StringTrimmed(t *testing.T) {
	b := NewBuffer(4, 2)
	b.DrawGlyph('h', nil, geometry.NewPos(0, 0))
	b.DrawGlyph('i', nil, geometry.NewPos(1, 1))
	if got := b.StringTrimmed(); got != "h\n i" {
		t.Errorf("StringTrimmed() = %q, want %q", got, "h\n i")
	}
}
