package geometry

// Region is a closed rectangle in global coordinates.
// Both From (top-left) and To (bottom-right) are inside the region.
// A region whose From lies beyond its To on either axis contains nothing.
type Region struct {
	From, To Pos
}

// NewRegion creates a region spanning from..to inclusive.
func NewRegion(from, to Pos) Region {
	return Region{From: from, To: to}
}

// RegionOf returns the region covered by a size placed at pos.
// A zero size yields an empty region.
func RegionOf(pos Pos, size Size) Region {
	return Region{
		From: pos,
		To:   Pos{X: pos.X + size.Width - 1, Y: pos.Y + size.Height - 1},
	}
}

// IsEmpty returns true if the region contains no positions.
func (r Region) IsEmpty() bool {
	return r.From.X > r.To.X || r.From.Y > r.To.Y
}

// Width returns the number of columns covered by the region.
func (r Region) Width() int {
	return max(0, r.To.X-r.From.X+1)
}

// Height returns the number of rows covered by the region.
func (r Region) Height() int {
	return max(0, r.To.Y-r.From.Y+1)
}

// Contains returns true if pos lies inside the region.
// All four edges are inclusive.
func (r Region) Contains(pos Pos) bool {
	return pos.X >= r.From.X && pos.X <= r.To.X &&
		pos.Y >= r.From.Y && pos.Y <= r.To.Y
}

// Intersect returns the largest region contained by both r and other.
// Disjoint regions produce an empty region.
func (r Region) Intersect(other Region) Region {
	return Region{
		From: Pos{X: max(r.From.X, other.From.X), Y: max(r.From.Y, other.From.Y)},
		To:   Pos{X: min(r.To.X, other.To.X), Y: min(r.To.Y, other.To.Y)},
	}
}

// IntersectWith shrinks r in place to its intersection with other.
func (r *Region) IntersectWith(other Region) {
	*r = r.Intersect(other)
}

// Constrain shrinks r so it does not extend past other.
// It is the in-place form used while descending into nested clips.
func (r *Region) Constrain(other Region) {
	r.IntersectWith(other)
}
