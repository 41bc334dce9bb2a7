package value

import (
	"errors"
	"fmt"
	"strings"
)

// Hex is a 24-bit RGB colour.
type Hex struct {
	R, G, B uint8
}

// NewHex creates a Hex from its components.
func NewHex(r, g, b uint8) Hex {
	return Hex{R: r, G: g, B: b}
}

// ErrInvalidHex is returned by ParseHex for malformed input.
var ErrInvalidHex = errors.New("invalid hex color")

// ParseHex parses "#RRGGBB" or "#RGB". The leading '#' is optional.
func ParseHex(s string) (Hex, error) {
	h := strings.TrimPrefix(s, "#")

	switch len(h) {
	case 6:
		var out [3]uint8
		for i := range out {
			hi, okHi := nibble(h[i*2])
			lo, okLo := nibble(h[i*2+1])
			if !okHi || !okLo {
				return Hex{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			out[i] = hi<<4 | lo
		}
		return NewHex(out[0], out[1], out[2]), nil
	case 3:
		var out [3]uint8
		for i := range out {
			n, ok := nibble(h[i])
			if !ok {
				return Hex{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			// 0xF -> 0xFF
			out[i] = n<<4 | n
		}
		return NewHex(out[0], out[1], out[2]), nil
	default:
		return Hex{}, fmt.Errorf("%w: %q: expected #RGB or #RRGGBB", ErrInvalidHex, s)
	}
}

func nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// String formats the colour as "#rrggbb".
func (h Hex) String() string {
	return fmt.Sprintf("#%02x%02x%02x", h.R, h.G, h.B)
}
