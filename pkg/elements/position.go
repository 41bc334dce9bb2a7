package elements

import (
	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/layout"
	"github.com/grindlemire/tuicore/pkg/store"
	"github.com/grindlemire/tuicore/pkg/widgets"
)

// HorzEdge pins a child to the left or right edge.
type HorzEdge struct {
	FromRight bool
	Offset    int
}

// Left pins to the left edge.
func Left(n int) HorzEdge { return HorzEdge{Offset: n} }

// Right pins to the right edge.
func Right(n int) HorzEdge { return HorzEdge{FromRight: true, Offset: n} }

// VertEdge pins a child to the top or bottom edge.
type VertEdge struct {
	FromBottom bool
	Offset     int
}

// Top pins to the top edge.
func Top(n int) VertEdge { return VertEdge{Offset: n} }

// Bottom pins to the bottom edge.
func Bottom(n int) VertEdge { return VertEdge{FromBottom: true, Offset: n} }

// Placement selects what a Position is relative to.
type Placement uint8

const (
	// Relative places the child relative to the parent.
	Relative Placement = iota
	// Absolute places the child relative to the viewport.
	Absolute
)

func placementOf(attrs widgets.Attribs) Placement {
	if s, _ := attrs.Str("placement"); s == "absolute" {
		return Absolute
	}
	return Relative
}

// Position places its only child at an offset from one horizontal and one
// vertical edge. left wins over right and top over bottom; the default is
// the top left corner.
//
// Position floats: it is painted after its siblings, without clipping.
type Position struct {
	widgets.Base
	singleChild

	horz      HorzEdge
	vert      VertEdge
	placement Placement
	extent    geometry.Size
}

func (p *Position) Floats() bool {
	return true
}

func (p *Position) Layout(children widgets.Children, constraints layout.Constraints, id widgets.WidgetID, ctx *widgets.LayoutCtx) geometry.Size {
	attrs := ctx.Attribs(id)
	p.placement = placementOf(attrs)

	p.horz = Left(0)
	if left, ok := attrs.Size("left"); ok {
		p.horz = Left(left)
	} else if right, ok := attrs.Size("right"); ok {
		p.horz = Right(right)
	}

	p.vert = Top(0)
	if top, ok := attrs.Size("top"); ok {
		p.vert = Top(top)
	} else if bottom, ok := attrs.Size("bottom"); ok {
		p.vert = Bottom(bottom)
	}

	inner := constraints
	if p.placement == Absolute {
		inner = ctx.Viewport.Constraints()
	}

	child := layoutFirst(children, inner, ctx)

	switch {
	case !p.horz.FromRight:
		p.extent.Width = child.Width + p.horz.Offset
	case inner.WidthBounded():
		p.extent.Width = max(0, inner.MaxWidth()-p.horz.Offset)
	default:
		p.extent.Width = child.Width + p.horz.Offset
	}

	switch {
	case !p.vert.FromBottom:
		p.extent.Height = child.Height + p.vert.Offset
	case inner.HeightBounded():
		p.extent.Height = max(0, inner.MaxHeight()-p.vert.Offset)
	default:
		p.extent.Height = child.Height + p.vert.Offset
	}

	return constraints.Constrain(p.extent)
}

func (p *Position) Position(children widgets.Children, _ widgets.WidgetID, attrs widgets.AttributeLookup, ctx widgets.PositionCtx) {
	origin := ctx.Pos
	if p.placement == Absolute {
		origin = geometry.Origin
	}

	children.First(func(child *widgets.Element, grand widgets.Children) {
		size := child.Size()
		pos := origin

		if p.horz.FromRight {
			pos.X += p.extent.Width - size.Width
		} else {
			pos.X += p.horz.Offset
		}

		if p.vert.FromBottom {
			pos.Y += p.extent.Height - size.Height
		} else {
			pos.Y += p.vert.Offset
		}

		child.Position(grand, pos, attrs, ctx.Viewport)
	})
}

func (p *Position) Paint(children widgets.Children, _ widgets.WidgetID, attrs widgets.AttributeLookup, ctx widgets.SizedCtx, text *widgets.TextSession) {
	children.Each(func(child *widgets.Element, grand widgets.Children) store.Control {
		unclipped := ctx.ToUnsized()
		unclipped.ClearClip()
		child.Paint(grand, unclipped, text, attrs)
		return store.Continue
	})
}

// Edges returns the edges resolved by the last layout.
func (p *Position) Edges() (HorzEdge, VertEdge) {
	return p.horz, p.vert
}
