package elements

import (
	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/layout"
	"github.com/grindlemire/tuicore/pkg/widgets"
)

// Padding insets its only child.
//
// padding applies to every side; padding-top, padding-right,
// padding-bottom and padding-left override a single side.
type Padding struct {
	widgets.Base
	singleChild

	edges layout.Edges
}

func (p *Padding) Layout(children widgets.Children, constraints layout.Constraints, id widgets.WidgetID, ctx *widgets.LayoutCtx) geometry.Size {
	p.edges = paddingOf(ctx.Attribs(id))
	received := constraints

	var size geometry.Size
	children.First(func(child *widgets.Element, grand widgets.Children) {
		constraints.SubMaxWidth(p.edges.Horizontal())
		constraints.SubMaxHeight(p.edges.Vertical())
		size = child.Layout(grand, constraints, ctx).Add(p.edges.Size())
	})

	return received.Constrain(size)
}

func (p *Padding) Position(children widgets.Children, _ widgets.WidgetID, attrs widgets.AttributeLookup, ctx widgets.PositionCtx) {
	positionFirst(children, attrs, ctx.Pos.Add(p.edges.Offset()), ctx.Viewport)
}

// Edges returns the padding from the last layout.
func (p *Padding) Edges() layout.Edges {
	return p.edges
}

func paddingOf(attrs widgets.Attribs) layout.Edges {
	all, _ := attrs.Size("padding")
	e := layout.EdgeAll(all)
	for key, side := range map[string]*int{
		"padding-top":    &e.Top,
		"padding-right":  &e.Right,
		"padding-bottom": &e.Bottom,
		"padding-left":   &e.Left,
	} {
		if n, ok := attrs.Size(key); ok {
			*side = n
		}
	}
	return e
}
