// Package elements provides the default widgets.
//
//   - container: sizes a single child with width, height, min-* and max-* attributes
//   - padding: insets a single child by padding and padding-{top,right,bottom,left}
//   - position: places a single child relative to its parent or to the viewport
//   - border: draws a frame around a single child
//   - text: paints the element value, wrapping at the available width
//   - canvas: a sparse grid of glyphs set from code
//
// Use Register to add them to a widgets.Registry.
package elements
