package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/surface"
	"github.com/grindlemire/tuicore/pkg/value"
)

// Screen is a widget renderer backed by a tcell screen.
type Screen struct {
	screen tcell.Screen
}

// New wraps an initialised tcell screen.
func New(screen tcell.Screen) *Screen {
	return &Screen{screen: screen}
}

// Open creates and initialises a screen on the controlling terminal.
func Open() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return New(screen), nil
}

// Size returns the screen dimensions.
func (s *Screen) Size() geometry.Size {
	w, h := s.screen.Size()
	return geometry.NewSize(w, h)
}

// DrawGlyph writes r at pos using the style read from attrs. Zero-width
// glyphs combine with the glyph left of pos.
func (s *Screen) DrawGlyph(r rune, attrs value.Reader, pos geometry.Pos) {
	if runewidth.RuneWidth(r) == 0 {
		x := pos.X - 1
		mainc, comb, style, width := s.screen.GetContent(x, pos.Y)
		if width == 0 && x > 0 {
			x--
			mainc, comb, style, _ = s.screen.GetContent(x, pos.Y)
		}
		if x >= 0 {
			s.screen.SetContent(x, pos.Y, mainc, append(comb, r), style)
		}
		return
	}
	s.screen.SetContent(pos.X, pos.Y, r, nil, Style(surface.StyleOf(attrs)))
}

// Clear blanks the screen.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes drawn glyphs to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Tcell returns the wrapped screen, e.g. to poll events.
func (s *Screen) Tcell() tcell.Screen {
	return s.screen
}

// Style converts a cell style to a tcell style.
func Style(st surface.Style) tcell.Style {
	style := tcell.StyleDefault
	if st.HasFg {
		style = style.Foreground(Color(st.Fg))
	}
	if st.HasBg {
		style = style.Background(Color(st.Bg))
	}
	return style.
		Bold(st.Bold).
		Italic(st.Italic).
		Underline(st.Underline).
		Reverse(st.Reverse)
}

// Color converts a hex colour to a tcell true colour.
func Color(h value.Hex) tcell.Color {
	return tcell.NewRGBColor(int32(h.R), int32(h.G), int32(h.B))
}
