// Package backend draws frames to a terminal through tcell.
package backend
