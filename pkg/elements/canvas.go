package elements

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/layout"
	"github.com/grindlemire/tuicore/pkg/store"
	"github.com/grindlemire/tuicore/pkg/value"
	"github.com/grindlemire/tuicore/pkg/widgets"
)

// DefaultCanvasSize is the buffer size of a canvas that has not been laid out.
var DefaultCanvasSize = geometry.NewSize(32, 32)

// CanvasCell is an occupied canvas position.
type CanvasCell struct {
	Pos   geometry.LocalPos
	Glyph rune
	Attrs *value.Attributes

	seq uint64
}

// canvasBuffer is a sparse grid. index maps every position to the slab
// slot holding its cell, or store.NoID when vacant.
type canvasBuffer struct {
	cells *store.Slab[CanvasCell]
	index []store.ID
	size  geometry.Size
	seq   uint64
}

func newCanvasBuffer(size geometry.Size) *canvasBuffer {
	index := make([]store.ID, size.Area())
	for i := range index {
		index[i] = store.NoID
	}
	return &canvasBuffer{cells: store.NewSlab[CanvasCell](), index: index, size: size}
}

func (b *canvasBuffer) slot(pos geometry.LocalPos) int {
	if !b.size.Contains(pos) {
		return -1
	}
	return pos.Index(b.size.Width)
}

func (b *canvasBuffer) put(glyph rune, attrs *value.Attributes, pos geometry.LocalPos, seq uint64) {
	i := b.slot(pos)
	if i < 0 {
		return
	}

	cell := CanvasCell{Pos: pos, Glyph: glyph, Attrs: attrs, seq: seq}
	if id := b.index[i]; id != store.NoID {
		b.cells.Replace(id, cell)
		return
	}

	want := b.cells.NextID()
	if got := b.cells.Insert(cell); got != want {
		panic(fmt.Sprintf("canvas: cell stored in slot %d, want %d", got, want))
	}
	b.index[i] = want
}

func (b *canvasBuffer) get(pos geometry.LocalPos) (*CanvasCell, bool) {
	i := b.slot(pos)
	if i < 0 || b.index[i] == store.NoID {
		return nil, false
	}
	return b.cells.Get(b.index[i])
}

func (b *canvasBuffer) erase(pos geometry.LocalPos) {
	i := b.slot(pos)
	if i < 0 || b.index[i] == store.NoID {
		return
	}
	b.cells.Remove(b.index[i])
	b.index[i] = store.NoID
}

// ordered returns the cells in the order they were put.
func (b *canvasBuffer) ordered() []CanvasCell {
	cells := make([]CanvasCell, 0, b.cells.Len())
	for _, c := range b.cells.All() {
		cells = append(cells, *c)
	}
	slices.SortFunc(cells, bySeq)
	return cells
}

// resized copies the cells that fit into a buffer of the new size.
func (b *canvasBuffer) resized(size geometry.Size) *canvasBuffer {
	next := newCanvasBuffer(size)
	cells := b.cells.Drain()
	slices.SortFunc(cells, bySeq)
	for _, c := range cells {
		next.put(c.Glyph, c.Attrs, c.Pos, c.seq)
	}
	next.seq = b.seq
	return next
}

// Canvas is a sparse grid of glyphs written from code.
//
// During layout the grid takes the maximum size allowed by the constraints,
// further capped by width and height. Content inside the new size survives
// a resize; the rest is discarded.
type Canvas struct {
	widgets.Base
	leaf

	buffer *canvasBuffer
	pos    geometry.Pos
}

// NewCanvas creates a canvas with the default buffer size.
func NewCanvas() *Canvas {
	return &Canvas{buffer: newCanvasBuffer(DefaultCanvasSize)}
}

// Put writes glyph at pos, replacing any existing cell.
// Positions outside the canvas are ignored.
func (c *Canvas) Put(glyph rune, attrs *value.Attributes, pos geometry.LocalPos) {
	c.buffer.seq++
	c.buffer.put(glyph, attrs, pos, c.buffer.seq)
}

// Get returns the cell at pos. The cell may be modified in place until the
// next Put.
func (c *Canvas) Get(pos geometry.LocalPos) (*CanvasCell, bool) {
	return c.buffer.get(pos)
}

// Erase removes the cell at pos, if any.
func (c *Canvas) Erase(pos geometry.LocalPos) {
	c.buffer.erase(pos)
}

// Clear removes every cell.
func (c *Canvas) Clear() {
	c.buffer = newCanvasBuffer(c.buffer.size)
}

// Size returns the current buffer size.
func (c *Canvas) Size() geometry.Size {
	return c.buffer.size
}

// Resize changes the buffer size, keeping the cells that still fit.
func (c *Canvas) Resize(size geometry.Size) {
	if size != c.buffer.size {
		c.buffer = c.buffer.resized(size)
	}
}

// Translate converts a global position to a position on the canvas.
func (c *Canvas) Translate(global geometry.Pos) geometry.LocalPos {
	offset := global.Sub(c.pos)
	return geometry.NewLocalPos(offset.X, offset.Y)
}

// Cells iterates the occupied cells in the order they were put.
func (c *Canvas) Cells() iter.Seq[CanvasCell] {
	return func(yield func(CanvasCell) bool) {
		for _, cell := range c.buffer.ordered() {
			if !yield(cell) {
				return
			}
		}
	}
}

// Len returns the number of occupied cells.
func (c *Canvas) Len() int {
	return c.buffer.cells.Len()
}

func (c *Canvas) Layout(_ widgets.Children, constraints layout.Constraints, id widgets.WidgetID, ctx *widgets.LayoutCtx) geometry.Size {
	received := constraints
	attrs := ctx.Attribs(id)
	if width, ok := attrs.Size("width"); ok {
		constraints.SetMaxWidth(width)
	}
	if height, ok := attrs.Size("height"); ok {
		constraints.SetMaxHeight(height)
	}

	// an unbounded axis keeps the current extent
	size := constraints.Constrain(c.buffer.size)
	if constraints.WidthBounded() {
		size.Width = constraints.MaxWidth()
	}
	if constraints.HeightBounded() {
		size.Height = constraints.MaxHeight()
	}

	c.Resize(received.Constrain(size))
	return c.buffer.size
}

func (c *Canvas) Position(_ widgets.Children, _ widgets.WidgetID, _ widgets.AttributeLookup, ctx widgets.PositionCtx) {
	c.pos = ctx.Pos
}

func (c *Canvas) Paint(_ widgets.Children, _ widgets.WidgetID, _ widgets.AttributeLookup, ctx widgets.SizedCtx, _ *widgets.TextSession) {
	for _, cell := range c.buffer.ordered() {
		ctx.PlaceGlyph(cell.Glyph, cell.Attrs, cell.Pos)
	}
}

func bySeq(a, b CanvasCell) int {
	return cmp.Compare(a.seq, b.seq)
}
