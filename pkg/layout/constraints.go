package layout

import (
	"fmt"
	"math"

	"github.com/grindlemire/tuicore/pkg/geometry"
)

// Unbounded marks an axis with no maximum.
const Unbounded = math.MaxInt

// Constraints bound the size a widget may report from layout.
//
// The zero value is a tight 0x0 constraint. Use New or Loose for bounded
// constraints with no minimum.
type Constraints struct {
	minWidth, minHeight int
	maxWidth, maxHeight int
}

// New creates constraints with a zero minimum and the given maximum.
// Negative maximums are treated as zero.
func New(maxWidth, maxHeight int) Constraints {
	return Constraints{maxWidth: max(0, maxWidth), maxHeight: max(0, maxHeight)}
}

// Tight creates constraints that only admit the exact size.
func Tight(width, height int) Constraints {
	c := New(width, height)
	c.minWidth, c.minHeight = c.maxWidth, c.maxHeight
	return c
}

// Loose creates constraints with no minimum and no maximum.
func Loose() Constraints {
	return Constraints{maxWidth: Unbounded, maxHeight: Unbounded}
}

// MinWidth returns the minimum width.
func (c Constraints) MinWidth() int { return c.minWidth }

// MinHeight returns the minimum height.
func (c Constraints) MinHeight() int { return c.minHeight }

// MaxWidth returns the maximum width, or Unbounded.
func (c Constraints) MaxWidth() int { return c.maxWidth }

// MaxHeight returns the maximum height, or Unbounded.
func (c Constraints) MaxHeight() int { return c.maxHeight }

// MinSize returns the minimum size.
func (c Constraints) MinSize() geometry.Size {
	return geometry.NewSize(c.minWidth, c.minHeight)
}

// MaxSize returns the maximum size. Unbounded axes report Unbounded.
func (c Constraints) MaxSize() geometry.Size {
	return geometry.NewSize(c.maxWidth, c.maxHeight)
}

// WidthBounded reports whether the width has a finite maximum.
func (c Constraints) WidthBounded() bool { return c.maxWidth != Unbounded }

// HeightBounded reports whether the height has a finite maximum.
func (c Constraints) HeightBounded() bool { return c.maxHeight != Unbounded }

// IsTight reports whether only one size satisfies c.
func (c Constraints) IsTight() bool {
	return c.minWidth == c.maxWidth && c.minHeight == c.maxHeight
}

// MakeWidthTight fixes the width. The value is clamped into the current
// range first so the result never admits sizes c did not.
func (c *Constraints) MakeWidthTight(width int) {
	w := clamp(width, c.minWidth, c.maxWidth)
	c.minWidth, c.maxWidth = w, w
}

// MakeHeightTight fixes the height, clamped into the current range.
func (c *Constraints) MakeHeightTight(height int) {
	h := clamp(height, c.minHeight, c.maxHeight)
	c.minHeight, c.maxHeight = h, h
}

// SetMaxWidth lowers the maximum width. It never raises it.
func (c *Constraints) SetMaxWidth(width int) {
	c.maxWidth = min(c.maxWidth, max(0, width))
	c.minWidth = min(c.minWidth, c.maxWidth)
}

// SetMaxHeight lowers the maximum height. It never raises it.
func (c *Constraints) SetMaxHeight(height int) {
	c.maxHeight = min(c.maxHeight, max(0, height))
	c.minHeight = min(c.minHeight, c.maxHeight)
}

// SetMinWidth sets the minimum width, capped at the maximum.
func (c *Constraints) SetMinWidth(width int) {
	c.minWidth = clamp(width, 0, c.maxWidth)
}

// SetMinHeight sets the minimum height, capped at the maximum.
func (c *Constraints) SetMinHeight(height int) {
	c.minHeight = clamp(height, 0, c.maxHeight)
}

// SubMaxWidth shrinks the maximum width by n, stopping at zero rather
// than at the current minimum. The minimum follows the maximum down, so
// the result is always satisfiable. Unbounded stays unbounded.
func (c *Constraints) SubMaxWidth(n int) {
	if c.maxWidth == Unbounded {
		return
	}
	c.maxWidth = max(0, c.maxWidth-n)
	c.minWidth = min(c.minWidth, c.maxWidth)
}

// SubMaxHeight shrinks the maximum height by n, stopping at zero with the
// minimum following it down.
func (c *Constraints) SubMaxHeight(n int) {
	if c.maxHeight == Unbounded {
		return
	}
	c.maxHeight = max(0, c.maxHeight-n)
	c.minHeight = min(c.minHeight, c.maxHeight)
}

// Loosen returns c with the minimum dropped to zero.
func (c Constraints) Loosen() Constraints {
	c.minWidth, c.minHeight = 0, 0
	return c
}

// Constrain clamps s into [min, max] on both axes.
func (c Constraints) Constrain(s geometry.Size) geometry.Size {
	return geometry.NewSize(
		clamp(s.Width, c.minWidth, c.maxWidth),
		clamp(s.Height, c.minHeight, c.maxHeight),
	)
}

// Contains reports whether s satisfies c.
func (c Constraints) Contains(s geometry.Size) bool {
	return s.Width >= c.minWidth && s.Width <= c.maxWidth &&
		s.Height >= c.minHeight && s.Height <= c.maxHeight
}

// String formats the constraints for debug output.
func (c Constraints) String() string {
	return fmt.Sprintf("[%s..%s x %s..%s]",
		dim(c.minWidth), dim(c.maxWidth), dim(c.minHeight), dim(c.maxHeight))
}

func dim(v int) string {
	if v == Unbounded {
		return "inf"
	}
	return fmt.Sprint(v)
}

// clamp restricts v to [lo, hi]. lo wins if lo > hi.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
