package elements

import (
	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/layout"
	"github.com/grindlemire/tuicore/pkg/widgets"
)

// Container sizes its only child.
//
// width and height make an axis tight, min-width and min-height raise the
// minimum, max-width and max-height lower the maximum. The container is at
// least as large as the narrowed minimum.
type Container struct {
	widgets.Base
	singleChild
}

func (c *Container) Layout(children widgets.Children, constraints layout.Constraints, id widgets.WidgetID, ctx *widgets.LayoutCtx) geometry.Size {
	received := constraints
	attrs := ctx.Attribs(id)

	if width, ok := attrs.Size("width"); ok {
		constraints.MakeWidthTight(width)
	}
	if height, ok := attrs.Size("height"); ok {
		constraints.MakeHeightTight(height)
	}
	if width, ok := attrs.Size("min-width"); ok {
		constraints.SetMinWidth(width)
	}
	if height, ok := attrs.Size("min-height"); ok {
		constraints.SetMinHeight(height)
	}
	if width, ok := attrs.Size("max-width"); ok {
		constraints.SetMaxWidth(width)
	}
	if height, ok := attrs.Size("max-height"); ok {
		constraints.SetMaxHeight(height)
	}

	size := layoutFirst(children, constraints, ctx)
	size.Width = max(size.Width, constraints.MinWidth())
	size.Height = max(size.Height, constraints.MinHeight())
	return received.Constrain(size)
}

func (c *Container) Position(children widgets.Children, _ widgets.WidgetID, attrs widgets.AttributeLookup, ctx widgets.PositionCtx) {
	positionFirst(children, attrs, ctx.Pos, ctx.Viewport)
}
