package surface

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/value"
)

// Draw is one recorded DrawGlyph call.
type Draw struct {
	Rune  rune
	Pos   geometry.Pos
	Style Style
}

// Buffer is a fixed 2D grid of cells.
type Buffer struct {
	cells  []Cell
	width  int
	height int
	draws  []Draw
}

// NewBuffer creates a grid of the specified dimensions filled with spaces.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() geometry.Size {
	return geometry.NewSize(b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at pos, or a blank cell if pos is out of bounds.
func (b *Buffer) Cell(pos geometry.Pos) Cell {
	i := b.idx(pos.X, pos.Y)
	if i < 0 {
		return blank
	}
	return b.cells[i]
}

// DrawGlyph writes r at pos. Wide glyphs also claim the cell to their
// right; a wide glyph in the last column is replaced with a space.
// Zero-width glyphs combine with the glyph left of pos.
func (b *Buffer) DrawGlyph(r rune, attrs value.Reader, pos geometry.Pos) {
	style := StyleOf(attrs)
	b.draws = append(b.draws, Draw{Rune: r, Pos: pos, Style: style})

	i := b.idx(pos.X, pos.Y)
	if i < 0 {
		return
	}

	width := runewidth.RuneWidth(r)
	if width == 0 {
		b.combine(r, pos.X-1, pos.Y)
		return
	}

	b.clearWide(pos.X, pos.Y)
	if width == 2 {
		if pos.X+1 >= b.width {
			b.cells[i] = Cell{Rune: ' ', Style: style, Width: 1}
			return
		}
		b.clearWide(pos.X+1, pos.Y)
		b.cells[i] = Cell{Rune: r, Style: style, Width: 2}
		b.cells[i+1] = Cell{Style: style, Width: 0}
		return
	}
	b.cells[i] = Cell{Rune: r, Style: style, Width: 1}
}

// combine appends r to the glyph covering (x, y).
func (b *Buffer) combine(r rune, x, y int) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	if b.cells[i].IsContinuation() && x > 0 {
		i--
	}
	b.cells[i].Combining += string(r)
}

// clearWide blanks any wide glyph overlapping (x, y).
func (b *Buffer) clearWide(x, y int) {
	i := b.idx(x, y)
	cell := b.cells[i]
	switch {
	case cell.IsContinuation():
		if x > 0 {
			b.cells[i-1] = blank
		}
		b.cells[i] = blank
	case cell.Width == 2:
		b.cells[i] = blank
		if x+1 < b.width {
			b.cells[i+1] = blank
		}
	}
}

// Draws returns every DrawGlyph call since the last Clear, in order.
func (b *Buffer) Draws() []Draw {
	return b.draws
}

// Clear fills the buffer with spaces and forgets recorded draws.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
	}
	b.draws = b.draws[:0]
}

// Lines returns each row as a string. Continuation cells are skipped.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.Reset()
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			sb.WriteRune(cell.Rune)
			sb.WriteString(cell.Combining)
		}
		lines[y] = sb.String()
	}
	return lines
}

// String renders the buffer with rows separated by newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// StringTrimmed returns the buffer content with trailing spaces removed
// from each line.
func (b *Buffer) StringTrimmed() string {
	lines := b.Lines()
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
