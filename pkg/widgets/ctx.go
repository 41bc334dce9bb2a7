package widgets

import (
	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/layout"
)

// LayoutCtx is shared by every widget during the layout pass.
type LayoutCtx struct {
	attrs AttributeLookup

	// Viewport is the frame's full area. Absolutely placed widgets lay
	// their children out against its constraints.
	Viewport layout.Viewport

	// Text receives shaped text for the paint pass.
	Text *TextSession
}

// NewLayoutCtx creates a layout context.
func NewLayoutCtx(attrs AttributeLookup, viewport layout.Viewport, text *TextSession) *LayoutCtx {
	if text == nil {
		text = NewTextSession()
	}
	return &LayoutCtx{attrs: attrs, Viewport: viewport, Text: text}
}

// Attribs returns the attribute view of id.
func (c *LayoutCtx) Attribs(id WidgetID) Attribs {
	return AttribsOf(c.attrs, id)
}

// Lookup returns the underlying attribute lookup.
func (c *LayoutCtx) Lookup() AttributeLookup {
	return c.attrs
}

// PositionCtx is given to a widget's Position.
type PositionCtx struct {
	// Pos is the element's own global position.
	Pos geometry.Pos
	// InnerSize is the element's size from layout.
	InnerSize geometry.Size
	// Viewport is the frame's full area.
	Viewport layout.Viewport
}
