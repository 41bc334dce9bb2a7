package elements

import (
	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/layout"
	"github.com/grindlemire/tuicore/pkg/widgets"
)

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle BorderStyle = iota
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Right       rune
	BottomRight rune
	Bottom      rune
	BottomLeft  rune
	Left        rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{
			TopLeft:     '╔',
			Top:         '═',
			TopRight:    '╗',
			Right:       '║',
			BottomRight: '╝',
			Bottom:      '═',
			BottomLeft:  '╚',
			Left:        '║',
		}
	case BorderRounded:
		return BorderChars{
			TopLeft:     '╭',
			Top:         '─',
			TopRight:    '╮',
			Right:       '│',
			BottomRight: '╯',
			Bottom:      '─',
			BottomLeft:  '╰',
			Left:        '│',
		}
	case BorderThick:
		return BorderChars{
			TopLeft:     '┏',
			Top:         '━',
			TopRight:    '┓',
			Right:       '┃',
			BottomRight: '┛',
			Bottom:      '━',
			BottomLeft:  '┗',
			Left:        '┃',
		}
	default:
		return BorderChars{
			TopLeft:     '┌',
			Top:         '─',
			TopRight:    '┐',
			Right:       '│',
			BottomRight: '┘',
			Bottom:      '─',
			BottomLeft:  '└',
			Left:        '│',
		}
	}
}

// ParseBorderChars reads a border-style value: a style name, or eight
// characters clockwise from the top left corner.
func ParseBorderChars(s string) (BorderChars, bool) {
	switch s {
	case "", "thin", "single":
		return BorderSingle.Chars(), true
	case "double":
		return BorderDouble.Chars(), true
	case "rounded":
		return BorderRounded.Chars(), true
	case "thick":
		return BorderThick.Chars(), true
	}

	r := []rune(s)
	if len(r) != 8 {
		return BorderChars{}, false
	}
	return BorderChars{
		TopLeft:     r[0],
		Top:         r[1],
		TopRight:    r[2],
		Right:       r[3],
		BottomRight: r[4],
		Bottom:      r[5],
		BottomLeft:  r[6],
		Left:        r[7],
	}, true
}

// Border draws a one cell frame around its only child.
//
// width and height fix the outer size. Unknown border-style values fall
// back to the single line style.
type Border struct {
	widgets.Base
	singleChild

	chars BorderChars
}

func (b *Border) Layout(children widgets.Children, constraints layout.Constraints, id widgets.WidgetID, ctx *widgets.LayoutCtx) geometry.Size {
	attrs := ctx.Attribs(id)

	style, _ := attrs.Str("border-style")
	chars, ok := ParseBorderChars(style)
	if !ok {
		chars = BorderSingle.Chars()
	}
	b.chars = chars

	if width, ok := attrs.Size("width"); ok {
		constraints.MakeWidthTight(width)
	}
	if height, ok := attrs.Size("height"); ok {
		constraints.MakeHeightTight(height)
	}

	inner := constraints.Loosen()
	inner.SubMaxWidth(2)
	inner.SubMaxHeight(2)

	size := layoutFirst(children, inner, ctx).Add(geometry.NewSize(2, 2))
	return constraints.Constrain(size)
}

func (b *Border) Position(children widgets.Children, _ widgets.WidgetID, attrs widgets.AttributeLookup, ctx widgets.PositionCtx) {
	positionFirst(children, attrs, ctx.Pos.Offset(1, 1), ctx.Viewport)
}

func (b *Border) Paint(children widgets.Children, id widgets.WidgetID, attrs widgets.AttributeLookup, ctx widgets.SizedCtx, text *widgets.TextSession) {
	a := widgets.AttribsOf(attrs, id)
	size := ctx.LocalSize()
	right, bottom := size.Width-1, size.Height-1

	put := func(r rune, x, y int) {
		ctx.PlaceGlyph(r, a, geometry.NewLocalPos(x, y))
	}

	if size.Width > 0 && size.Height > 0 {
		for x := 1; x < right; x++ {
			put(b.chars.Top, x, 0)
			if bottom > 0 {
				put(b.chars.Bottom, x, bottom)
			}
		}
		for y := 1; y < bottom; y++ {
			put(b.chars.Left, 0, y)
			if right > 0 {
				put(b.chars.Right, right, y)
			}
		}
		put(b.chars.TopLeft, 0, 0)
		if right > 0 {
			put(b.chars.TopRight, right, 0)
		}
		if bottom > 0 {
			put(b.chars.BottomLeft, 0, bottom)
		}
		if right > 0 && bottom > 0 {
			put(b.chars.BottomRight, right, bottom)
		}
	}

	interior := geometry.RegionOf(ctx.GlobalPos().Offset(1, 1), geometry.NewSize(max(0, size.Width-2), max(0, size.Height-2)))
	ctx.SetClipRegion(interior)
	widgets.PaintChildren(children, attrs, ctx, text)
}

// Chars returns the characters resolved by the last layout.
func (b *Border) Chars() BorderChars {
	return b.chars
}
