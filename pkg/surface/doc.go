// Package surface provides an in-memory glyph surface.
//
// Buffer implements widgets.WidgetRenderer over a fixed grid of cells.
// It is used to render frames in tests and to dump a frame as plain text.
package surface
