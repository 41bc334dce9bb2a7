// Package blueprint describes widget trees before they are instantiated.
//
// A blueprint is produced once, by a template compiler or by decoding a
// TOML scene, and is never modified by the rendering core. Each frame the
// core instantiates widgets from it into an arena.
//
// Scenes are written as TOML:
//
//	[viewport]
//	width = 20
//	height = 5
//
//	[[node]]
//	widget = "border"
//	attributes = { border-style = "rounded" }
//
//	  [[node.children]]
//	  widget = "text"
//	  value = "hello"
package blueprint
