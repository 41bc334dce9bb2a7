package layout

import "github.com/grindlemire/tuicore/pkg/geometry"

// Viewport is the fixed area a frame is rendered into.
type Viewport struct {
	size geometry.Size
}

// NewViewport creates a viewport of the given size.
func NewViewport(size geometry.Size) Viewport {
	return Viewport{size: size}
}

// Size returns the viewport size.
func (v Viewport) Size() geometry.Size {
	return v.size
}

// Constraints returns the loose constraints of the full viewport.
func (v Viewport) Constraints() Constraints {
	return New(v.size.Width, v.size.Height)
}

// Region returns the viewport area in global coordinates.
func (v Viewport) Region() geometry.Region {
	return geometry.RegionOf(geometry.Origin, v.size)
}
