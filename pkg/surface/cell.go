package surface

// Cell is a single character cell of a Buffer.
// Wide glyphs occupy two cells; the second is a continuation.
type Cell struct {
	Rune      rune   // The character (0 for continuation cells)
	Combining string // Zero-width runes drawn over Rune
	Style     Style  // Visual styling
	Width     uint8  // Display width (1 or 2; 0 for continuation)
}

// blank is the cell a Buffer is initialised with.
var blank = Cell{Rune: ' ', Width: 1}

// IsContinuation returns true if this cell is the second half of a wide glyph.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsEmpty returns true if the cell is an unstyled space.
func (c Cell) IsEmpty() bool {
	return c == blank
}
