package widgets

import (
	"fmt"

	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/layout"
	"github.com/grindlemire/tuicore/pkg/store"
	"github.com/grindlemire/tuicore/pkg/value"
)

// WidgetID is a stable handle to a node in the widget tree.
type WidgetID = store.ID

// Children is the filtered view of an element's children handed to every pass.
type Children = store.ForEach[WidgetKind, Element]

// Widget is the capability every widget type implements.
//
// Layout must return a size within the constraints it received.
// Position is given the element's own global position in ctx and places
// the children. Paint draws through ctx, which is already sized and placed.
type Widget interface {
	Layout(children Children, constraints layout.Constraints, id WidgetID, ctx *LayoutCtx) geometry.Size
	Position(children Children, id WidgetID, attrs AttributeLookup, ctx PositionCtx)
	Paint(children Children, id WidgetID, attrs AttributeLookup, ctx SizedCtx, text *TextSession)
	Floats() bool
}

// ChildLimiter is implemented by widgets that accept a bounded number of
// children. Instantiation rejects trees that exceed the limit.
type ChildLimiter interface {
	MaxChildren() int
}

// Base supplies the default Position, Paint and Floats behaviour.
// Embed it and implement Layout.
type Base struct{}

// Position places every child at the element's own position.
func (Base) Position(children Children, _ WidgetID, attrs AttributeLookup, ctx PositionCtx) {
	PositionChildren(children, attrs, ctx.Pos, ctx.Viewport)
}

// Paint paints every child in order.
func (Base) Paint(children Children, _ WidgetID, attrs AttributeLookup, ctx SizedCtx, text *TextSession) {
	PaintChildren(children, attrs, ctx, text)
}

// Floats reports false: the widget is painted with its siblings.
func (Base) Floats() bool {
	return false
}

// PositionChildren positions each child at pos.
func PositionChildren(children Children, attrs AttributeLookup, pos geometry.Pos, viewport layout.Viewport) {
	children.Each(func(child *Element, grand Children) store.Control {
		child.Position(grand, pos, attrs, viewport)
		return store.Continue
	})
}

// PaintChildren paints each child with a fresh unsized context that
// inherits ctx's clip.
func PaintChildren(children Children, attrs AttributeLookup, ctx SizedCtx, text *TextSession) {
	children.Each(func(child *Element, grand Children) store.Control {
		child.Paint(grand, ctx.ToUnsized(), text, attrs)
		return store.Continue
	})
}

// WidgetRenderer is the drawing surface a terminal backend provides.
type WidgetRenderer interface {
	// Size returns the surface dimensions.
	Size() geometry.Size
	// DrawGlyph draws r at a global position already known to be on the surface.
	DrawGlyph(r rune, attrs value.Reader, pos geometry.Pos)
}

// As returns the element's widget as T.
// It panics if the widget is of another type; use TryAs to check.
func As[T any](e *Element) T {
	w, ok := TryAs[T](e)
	if !ok {
		panic(fmt.Sprintf("widgets: element %q (%d) holds %T, not %T", e.ident, e.id, e.widget, w))
	}
	return w
}

// TryAs returns the element's widget as T if it is one.
func TryAs[T any](e *Element) (T, bool) {
	w, ok := e.widget.(T)
	return w, ok
}
