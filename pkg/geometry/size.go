package geometry

// Size is a width and height in terminal cells.
type Size struct {
	Width, Height int
}

// ZeroSize is the empty size.
var ZeroSize = Size{}

// NewSize creates a Size with the given dimensions.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Add returns the component-wise sum of s and other.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Area returns the number of cells covered by the size.
// Negative dimensions count as zero.
func (s Size) Area() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Contains returns true if the local position lies inside the size,
// i.e. x < Width and y < Height.
func (s Size) Contains(p LocalPos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}
