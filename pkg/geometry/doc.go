// Package geometry provides the value types shared by every render pass:
// sizes, global and local positions, and inclusive clipping regions.
//
// All types are small values. Methods never mutate their receiver unless the
// receiver is a pointer (IntersectWith).
package geometry
