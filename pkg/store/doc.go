// Package store provides the arena types the render passes operate on.
//
// Slab is a slot-reclaiming pool of values addressed by integer IDs. Tree
// builds an owning, ordered tree on top of a Slab, and ForEach walks a
// tree's children through a Filter so every pass can apply its own
// inclusion rules without duplicating traversal logic.
//
// Nothing in this package is safe for concurrent use. A traversal holds
// pointers into the slab, so the tree must not be modified while one runs.
package store
