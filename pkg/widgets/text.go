package widgets

// Line is one shaped line of text.
type Line struct {
	Text  string
	Width int
}

// TextSession holds text shaped during layout so paint does not shape it
// again. It is reset at the start of every frame.
type TextSession struct {
	lines map[WidgetID][]Line
}

// NewTextSession creates an empty session.
func NewTextSession() *TextSession {
	return &TextSession{lines: make(map[WidgetID][]Line)}
}

// Set replaces the lines stored for id.
func (s *TextSession) Set(id WidgetID, lines []Line) {
	s.lines[id] = lines
}

// Lines returns the lines stored for id.
func (s *TextSession) Lines(id WidgetID) ([]Line, bool) {
	if s == nil {
		return nil, false
	}
	lines, ok := s.lines[id]
	return lines, ok
}

// Reset drops every stored line.
func (s *TextSession) Reset() {
	clear(s.lines)
}
