package tuicore

import (
	"fmt"

	"github.com/grindlemire/tuicore/pkg/blueprint"
	"github.com/grindlemire/tuicore/pkg/elements"
	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/surface"
	"github.com/grindlemire/tuicore/pkg/value"
	"github.com/grindlemire/tuicore/pkg/widgets"
)

// Frame is an instantiated widget tree and the attributes it reads.
type Frame struct {
	*widgets.Runtime
	Attrs *value.Store
}

// Build instantiates bps with the default element registry.
func Build(bps []blueprint.Blueprint, opts ...widgets.RuntimeOption) (*Frame, error) {
	return BuildWith(elements.NewRegistry(), bps, opts...)
}

// BuildWith instantiates bps with widgets from reg.
func BuildWith(reg *widgets.Registry, bps []blueprint.Blueprint, opts ...widgets.RuntimeOption) (*Frame, error) {
	attrs := value.NewStore()
	tree, err := widgets.Instantiate(bps, reg, attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate: %w", err)
	}
	rt, err := widgets.NewRuntime(tree, attrs, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create runtime: %w", err)
	}
	return &Frame{Runtime: rt, Attrs: attrs}, nil
}

// BuildScene instantiates a decoded scene. A scene with a width and
// height fixes the viewport; otherwise the renderer's size is used.
func BuildScene(scene *blueprint.Scene, opts ...widgets.RuntimeOption) (*Frame, error) {
	if scene.Width > 0 && scene.Height > 0 {
		opts = append([]widgets.RuntimeOption{widgets.WithViewport(geometry.NewSize(scene.Width, scene.Height))}, opts...)
	}
	return Build(scene.Nodes, opts...)
}

// RenderString renders one frame of bps into a width x height buffer and
// returns its rows with trailing spaces removed.
func RenderString(bps []blueprint.Blueprint, width, height int) (string, error) {
	if width < 0 || height < 0 {
		return "", fmt.Errorf("invalid size %dx%d", width, height)
	}
	f, err := Build(bps, widgets.WithViewport(geometry.NewSize(width, height)))
	if err != nil {
		return "", err
	}
	buf := surface.NewBuffer(width, height)
	f.Render(buf)
	return buf.StringTrimmed(), nil
}
