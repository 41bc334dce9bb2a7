package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/grindlemire/tuicore"
	"github.com/grindlemire/tuicore/internal/debug"
	"github.com/grindlemire/tuicore/pkg/backend"
	"github.com/grindlemire/tuicore/pkg/blueprint"
	"github.com/grindlemire/tuicore/pkg/elements"
	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/surface"
	"github.com/grindlemire/tuicore/pkg/widgets"
)

// fallbackSize is used when neither flags, the scene nor the terminal
// give a size.
var fallbackSize = geometry.NewSize(80, 24)

type renderOptions struct {
	width   int
	height  int
	plain   bool
	logPath string
	path    string
}

func parseRenderArgs(args []string) (renderOptions, error) {
	var opts renderOptions

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&opts.width, "w", 0, "viewport width")
	fs.IntVar(&opts.height, "h", 0, "viewport height")
	fs.BoolVar(&opts.plain, "plain", false, "print the frame as text")
	fs.StringVar(&opts.logPath, "log", "", "debug log path")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() != 1 {
		return opts, fmt.Errorf("render requires exactly one scene file")
	}
	if opts.width < 0 || opts.height < 0 {
		return opts, fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

// resolveSize picks the viewport size per axis. Flags win over the scene
// and the scene over the terminal. Zero means unset.
func resolveSize(flagSize, sceneSize, termSize geometry.Size) geometry.Size {
	pick := func(vals ...int) int {
		for _, v := range vals {
			if v > 0 {
				return v
			}
		}
		return 0
	}
	return geometry.NewSize(
		pick(flagSize.Width, sceneSize.Width, termSize.Width, fallbackSize.Width),
		pick(flagSize.Height, sceneSize.Height, termSize.Height, fallbackSize.Height),
	)
}

// runRender implements the render subcommand.
func runRender(args []string, stdout *os.File) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	if opts.logPath != "" {
		if err := debug.Init(opts.logPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	scene, err := blueprint.Load(opts.path)
	if err != nil {
		return err
	}

	fd := int(stdout.Fd())
	interactive := !opts.plain && term.IsTerminal(fd)

	var termSize geometry.Size
	if !interactive && term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			termSize = geometry.NewSize(w, h)
		}
	}

	flagSize := geometry.NewSize(opts.width, opts.height)
	sceneSize := geometry.NewSize(scene.Width, scene.Height)

	if interactive {
		return renderScreen(scene, flagSize, sceneSize)
	}
	return renderPlain(stdout, scene, resolveSize(flagSize, sceneSize, termSize))
}

// renderPlain renders one frame into a buffer and writes it as text.
func renderPlain(w io.Writer, scene *blueprint.Scene, size geometry.Size) error {
	f, err := tuicore.Build(scene.Nodes, widgets.WithViewport(size))
	if err != nil {
		return err
	}

	buf := surface.NewBuffer(size.Width, size.Height)
	f.Render(buf)
	if _, err := fmt.Fprintln(w, buf.StringTrimmed()); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// renderScreen draws the scene on the terminal and redraws on resize
// until a key is pressed.
func renderScreen(scene *blueprint.Scene, flagSize, sceneSize geometry.Size) error {
	screen, err := backend.Open()
	if err != nil {
		return err
	}
	defer screen.Close()

	viewport := func() geometry.Size {
		return resolveSize(flagSize, sceneSize, screen.Size())
	}

	f, err := tuicore.Build(scene.Nodes, widgets.WithViewport(viewport()))
	if err != nil {
		return err
	}

	for {
		screen.Clear()
		f.Render(screen)
		screen.Show()

		switch screen.Tcell().PollEvent().(type) {
		case *tcell.EventResize:
			screen.Tcell().Sync()
			f.SetViewport(viewport())
		case *tcell.EventKey, nil:
			return nil
		}
	}
}

// runWidgets implements the widgets subcommand.
func runWidgets(w io.Writer) {
	for _, name := range elements.NewRegistry().Names() {
		fmt.Fprintln(w, name)
	}
}
