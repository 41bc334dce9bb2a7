package elements

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/layout"
	"github.com/grindlemire/tuicore/pkg/widgets"
)

// Wrap selects how text longer than the available width is handled.
type Wrap uint8

const (
	// WrapNormal breaks lines at the available width.
	WrapNormal Wrap = iota
	// WrapOverflow truncates lines at the available width.
	WrapOverflow
)

// Align is the horizontal alignment of text lines.
type Align uint8

const (
	// AlignLeft starts every line at the left edge.
	AlignLeft Align = iota
	// AlignCenter centres every line, rounding towards the left.
	AlignCenter
	// AlignRight ends every line at the right edge.
	AlignRight
)

// Text paints the element value.
//
// Lines break on newlines and, unless wrap is "overflow", wherever the
// next character would not fit. text-align is left, center or right.
// Lines beyond the available height are dropped.
type Text struct {
	widgets.Base
	leaf

	align Align
}

func (t *Text) Layout(_ widgets.Children, constraints layout.Constraints, id widgets.WidgetID, ctx *widgets.LayoutCtx) geometry.Size {
	attrs := ctx.Attribs(id)

	wrap := WrapNormal
	if s, _ := attrs.Str("wrap"); s == "overflow" {
		wrap = WrapOverflow
	}
	switch s, _ := attrs.Str("text-align"); s {
	case "center":
		t.align = AlignCenter
	case "right":
		t.align = AlignRight
	default:
		t.align = AlignLeft
	}

	var s string
	if v := attrs.Value(); !v.IsNone() {
		s = v.String()
	}

	lines := Shape(s, constraints.MaxWidth(), constraints.MaxHeight(), wrap)
	ctx.Text.Set(id, lines)

	var size geometry.Size
	for _, l := range lines {
		size.Width = max(size.Width, l.Width)
	}
	size.Height = len(lines)
	return constraints.Constrain(size)
}

func (t *Text) Paint(_ widgets.Children, id widgets.WidgetID, attrs widgets.AttributeLookup, ctx widgets.SizedCtx, text *widgets.TextSession) {
	lines, ok := text.Lines(id)
	if !ok {
		return
	}
	a := widgets.AttribsOf(attrs, id)
	width := ctx.LocalSize().Width

	for y, line := range lines {
		x := 0
		switch t.align {
		case AlignCenter:
			x = (width - line.Width) / 2
		case AlignRight:
			x = width - line.Width
		}
		ctx.PlaceGlyphs(line.Text, a, geometry.NewLocalPos(max(0, x), y))
	}
}

// Shape splits s into lines no wider than maxWidth and keeps at most
// maxHeight of them. An empty s has no lines.
func Shape(s string, maxWidth, maxHeight int, wrap Wrap) []widgets.Line {
	if s == "" || maxHeight <= 0 {
		return nil
	}

	var lines []widgets.Line
	push := func(text string, width int) bool {
		lines = append(lines, widgets.Line{Text: text, Width: width})
		return len(lines) < maxHeight
	}

	for _, para := range strings.Split(s, "\n") {
		if wrap == WrapOverflow {
			para = runewidth.Truncate(para, maxWidth, "")
			if !push(para, runewidth.StringWidth(para)) {
				return lines
			}
			continue
		}

		var sb strings.Builder
		width := 0
		for _, r := range para {
			w := runewidth.RuneWidth(r)
			if w > maxWidth {
				continue
			}
			if width+w > maxWidth {
				if !push(sb.String(), width) {
					return lines
				}
				sb.Reset()
				width = 0
			}
			sb.WriteRune(r)
			width += w
		}
		if !push(sb.String(), width) {
			return lines
		}
	}
	return lines
}
