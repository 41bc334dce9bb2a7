// Package widgets is the per-frame rendering core.
//
// A frame runs three passes over an arena of widget nodes:
//
//  1. Layout: constraints flow down, sizes flow back up.
//  2. Position: global positions flow down from the viewport origin.
//  3. Paint: each element gets a SizedCtx built from its cached size and
//     position and emits glyphs to a WidgetRenderer through the clip
//     pipeline. Floating elements are deferred and painted afterwards,
//     unclipped, so they draw above their siblings.
//
// Every pass walks the tree through a store.Filter, so structural nodes
// (control flow, loops, components) are passed through and hidden or
// excluded elements are skipped the same way everywhere.
//
// A Runtime and its tree are a single non-reentrant unit of work.
package widgets
