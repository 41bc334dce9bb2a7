// Package main provides the tuicore command line tool.
//
// Usage:
//
//	tuicore render [options] scene.toml   Render a TOML scene
//	tuicore widgets                       List the built-in widgets
//	tuicore help                          Show help
//
// Examples:
//
//	tuicore render scene.toml             Show the scene until a key is pressed
//	tuicore render --plain scene.toml     Print the frame as text
//	tuicore render -w 40 -h 10 scene.toml Render into a fixed 40x10 viewport
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `tuicore - render declarative widget scenes in the terminal

Usage:
  tuicore <command> [options] [path]

Commands:
  render      Render a TOML scene file
  widgets     List the built-in widgets
  version     Print version information
  help        Show this help message

Render options:
  -w N        Viewport width (default: scene, then terminal width)
  -h N        Viewport height (default: scene, then terminal height)
  --plain     Print the frame as text instead of drawing to the screen
  --log PATH  Write debug records to PATH (also TUICORE_DEBUG)

Examples:
  tuicore render scene.toml                Draw until a key is pressed
  tuicore render --plain scene.toml        Print the frame to stdout
  tuicore render -w 40 -h 10 scene.toml    Fixed 40x10 viewport
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "render":
		if err := runRender(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "widgets":
		runWidgets(os.Stdout)
	case "version":
		fmt.Printf("tuicore version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
