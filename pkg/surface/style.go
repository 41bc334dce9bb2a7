package surface

import "github.com/grindlemire/tuicore/pkg/value"

// Attribute keys read when drawing a glyph.
const (
	ForegroundKey = "foreground"
	BackgroundKey = "background"
	BoldKey       = "bold"
	ItalicKey     = "italic"
	UnderlineKey  = "underline"
	ReverseKey    = "reverse"
)

// Style is the visual style of a cell, resolved from glyph attributes.
type Style struct {
	Fg, Bg       value.Hex
	HasFg, HasBg bool
	Bold         bool
	Italic       bool
	Underline    bool
	Reverse      bool
}

// StyleOf reads a style from attrs. A nil reader yields the default style.
func StyleOf(attrs value.Reader) Style {
	var s Style
	if attrs == nil {
		return s
	}
	s.Fg, s.HasFg = attrs.Hex(ForegroundKey)
	s.Bg, s.HasBg = attrs.Hex(BackgroundKey)
	s.Bold = attrs.Bool(BoldKey)
	s.Italic = attrs.Bool(ItalicKey)
	s.Underline = attrs.Bool(UnderlineKey)
	s.Reverse = attrs.Bool(ReverseKey)
	return s
}

// IsDefault reports whether s carries no styling.
func (s Style) IsDefault() bool {
	return s == Style{}
}
