package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/value"
)

// paintCore is the state shared by both paint context types.
type paintCore struct {
	renderer WidgetRenderer
	clip     geometry.Region
	hasClip  bool
}

// Clip returns the active clip region, if any.
func (c paintCore) Clip() (geometry.Region, bool) {
	return c.clip, c.hasClip
}

// SetClipRegion narrows the clip to its intersection with region.
func (c *paintCore) SetClipRegion(region geometry.Region) {
	if c.hasClip {
		c.clip.IntersectWith(region)
		return
	}
	c.clip = region
	c.hasClip = true
}

// ClearClip removes the clip region.
func (c *paintCore) ClearClip() {
	c.clip = geometry.Region{}
	c.hasClip = false
}

// UnsizedCtx is a paint context that is not yet bound to an element.
// It cannot place glyphs.
type UnsizedCtx struct {
	paintCore
}

// NewUnsizedCtx creates an unclipped context drawing to renderer.
func NewUnsizedCtx(renderer WidgetRenderer) UnsizedCtx {
	return UnsizedCtx{paintCore{renderer: renderer}}
}

// IntoSized binds the context to an element of size at the global pos.
func (c UnsizedCtx) IntoSized(size geometry.Size, pos geometry.Pos) SizedCtx {
	return SizedCtx{paintCore: c.paintCore, size: size, pos: pos}
}

// SizedCtx paints within a single element. Glyph positions are local to
// the element.
type SizedCtx struct {
	paintCore
	size geometry.Size
	pos  geometry.Pos
}

// LocalSize returns the element's size.
func (c SizedCtx) LocalSize() geometry.Size {
	return c.size
}

// GlobalPos returns the element's top left corner on the surface.
func (c SizedCtx) GlobalPos() geometry.Pos {
	return c.pos
}

// ToUnsized returns a context for painting a child. The clip is kept.
func (c SizedCtx) ToUnsized() UnsizedCtx {
	return UnsizedCtx{c.paintCore}
}

// CreateRegion returns the element's area, narrowed by the clip.
func (c SizedCtx) CreateRegion() geometry.Region {
	r := geometry.RegionOf(c.pos, c.size)
	if c.hasClip {
		r.Constrain(c.clip)
	}
	return r
}

// PlaceGlyph draws r at the local position at and returns the cursor
// position after it.
//
// A newline moves to the start of the next row. A glyph that does not fit
// in the remaining width of the row is not drawn and ok is false, as is
// any advance past the last row. Zero-width glyphs are drawn at the
// cursor without moving it. Glyphs outside the clip or the surface are not
// drawn but still advance the cursor.
func (c SizedCtx) PlaceGlyph(r rune, attrs value.Reader, at geometry.LocalPos) (next geometry.LocalPos, ok bool) {
	if r == '\n' {
		return c.newline(at)
	}

	width := runewidth.RuneWidth(r)
	if at.X < 0 || at.Y < 0 || at.Y >= c.size.Height || at.X+width > c.size.Width || at.X >= c.size.Width {
		return at, false
	}

	global := c.pos.Add(at)
	if c.visible(global) {
		c.renderer.DrawGlyph(r, attrs, global)
	}
	if width == 0 {
		return at, true
	}

	next = geometry.NewLocalPos(at.X+width, at.Y)
	if next.X >= c.size.Width {
		return c.newline(at)
	}
	return next, true
}

// PlaceGlyphs draws s starting at at. It stops at the first glyph that
// could not be placed.
func (c SizedCtx) PlaceGlyphs(s string, attrs value.Reader, at geometry.LocalPos) (geometry.LocalPos, bool) {
	for _, r := range s {
		var ok bool
		if at, ok = c.PlaceGlyph(r, attrs, at); !ok {
			return at, false
		}
	}
	return at, true
}

func (c SizedCtx) newline(at geometry.LocalPos) (geometry.LocalPos, bool) {
	next := geometry.NewLocalPos(0, at.Y+1)
	return next, next.Y < c.size.Height
}

func (c SizedCtx) visible(global geometry.Pos) bool {
	if c.hasClip && !c.clip.Contains(global) {
		return false
	}
	surface := c.renderer.Size()
	return global.X >= 0 && global.Y >= 0 && global.X < surface.Width && global.Y < surface.Height
}
