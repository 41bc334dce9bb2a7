package elements

import (
	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/layout"
	"github.com/grindlemire/tuicore/pkg/widgets"
)

// Register adds every default widget to reg.
func Register(reg *widgets.Registry) {
	reg.Register("container", func() widgets.Widget { return &Container{} })
	reg.Register("padding", func() widgets.Widget { return &Padding{} })
	reg.Register("position", func() widgets.Widget { return &Position{} })
	reg.Register("border", func() widgets.Widget { return &Border{} })
	reg.Register("text", func() widgets.Widget { return &Text{} })
	reg.Register("canvas", func() widgets.Widget { return NewCanvas() })
}

// NewRegistry returns a registry holding the default widgets.
func NewRegistry() *widgets.Registry {
	reg := widgets.NewRegistry()
	Register(reg)
	return reg
}

// layoutFirst lays out the first child and returns its size, or zero
// if there is no child.
func layoutFirst(children widgets.Children, c layout.Constraints, ctx *widgets.LayoutCtx) geometry.Size {
	var size geometry.Size
	children.First(func(child *widgets.Element, grand widgets.Children) {
		size = child.Layout(grand, c, ctx)
	})
	return size
}

// positionFirst positions the first child at pos.
func positionFirst(children widgets.Children, attrs widgets.AttributeLookup, pos geometry.Pos, viewport layout.Viewport) {
	children.First(func(child *widgets.Element, grand widgets.Children) {
		child.Position(grand, pos, attrs, viewport)
	})
}

// singleChild limits a widget to one child.
type singleChild struct{}

func (singleChild) MaxChildren() int { return 1 }

// leaf rejects children.
type leaf struct{}

func (leaf) MaxChildren() int { return 0 }
