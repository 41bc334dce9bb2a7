package geometry

// Pos is a global (screen) coordinate. It may be negative when a widget is
// positioned partially off screen.
type Pos struct {
	X, Y int
}

// Origin is the top-left corner of the screen.
var Origin = Pos{}

// NewPos creates a global position.
func NewPos(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add translates p by a local offset.
func (p Pos) Add(l LocalPos) Pos {
	return Pos{X: p.X + l.X, Y: p.Y + l.Y}
}

// Offset translates p by (dx, dy).
func (p Pos) Offset(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the offset from other to p.
func (p Pos) Sub(other Pos) Pos {
	return Pos{X: p.X - other.X, Y: p.Y - other.Y}
}

// LocalPos is a coordinate relative to the top-left of a widget.
// A child always starts at (0, 0) in its own local space.
type LocalPos struct {
	X, Y int
}

// NewLocalPos creates a local position.
func NewLocalPos(x, y int) LocalPos {
	return LocalPos{X: x, Y: y}
}

// Index converts the position to a row-major index for a grid of the given width.
// The result is only meaningful when 0 <= X < width.
func (l LocalPos) Index(width int) int {
	return l.Y*width + l.X
}
