// Package tuicore renders declarative widget trees to terminal cells.
//
// Most callers only need this package: Build turns blueprints into a
// ready runtime using the default element set, and RenderString renders
// a frame to plain text. The building blocks live under pkg/:
// blueprint (tree descriptions and TOML scenes), widgets (the frame
// passes), elements (container, padding, position, border, text and
// canvas), surface (an in-memory cell buffer) and backend (a tcell
// screen).
package tuicore
