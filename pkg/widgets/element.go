package widgets

import (
	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/layout"
)

// Element wraps a widget with the size and position computed by the most
// recent layout and position passes. Both are overwritten every frame.
type Element struct {
	ident  string
	id     WidgetID
	widget Widget
	size   geometry.Size
	pos    geometry.Pos
}

// NewElement creates an element for widget w stored under id.
func NewElement(ident string, id WidgetID, w Widget) *Element {
	return &Element{ident: ident, id: id, widget: w}
}

// ID returns the element's widget ID.
func (e *Element) ID() WidgetID {
	return e.id
}

// Ident returns the name the element was created from, e.g. "container".
func (e *Element) Ident() string {
	return e.ident
}

// Widget returns the wrapped widget.
func (e *Element) Widget() Widget {
	return e.widget
}

// Size returns the size from the last layout pass.
func (e *Element) Size() geometry.Size {
	return e.size
}

// Pos returns the global position from the last position pass.
func (e *Element) Pos() geometry.Pos {
	return e.pos
}

// Region returns the area the element covers on screen.
func (e *Element) Region() geometry.Region {
	return geometry.RegionOf(e.pos, e.size)
}

// Floats reports whether the element paints in the floating layer.
func (e *Element) Floats() bool {
	return e.widget.Floats()
}

// Layout lays out the widget and caches the resulting size.
func (e *Element) Layout(children Children, constraints layout.Constraints, ctx *LayoutCtx) geometry.Size {
	e.size = e.widget.Layout(children, constraints, e.id, ctx)
	return e.size
}

// Position records the element's global position and positions its children.
func (e *Element) Position(children Children, pos geometry.Pos, attrs AttributeLookup, viewport layout.Viewport) {
	e.pos = pos
	e.widget.Position(children, e.id, attrs, PositionCtx{
		Pos:       pos,
		InnerSize: e.size,
		Viewport:  viewport,
	})
}

// Paint sizes the context from the cached size and position, then paints.
func (e *Element) Paint(children Children, ctx UnsizedCtx, text *TextSession, attrs AttributeLookup) {
	e.widget.Paint(children, e.id, attrs, ctx.IntoSized(e.size, e.pos), text)
}
