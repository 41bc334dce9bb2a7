package widgets

import (
	"testing"

	"github.com/grindlemire/tuicore/pkg/blueprint"
	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/layout"
	"github.com/grindlemire/tuicore/pkg/store"
	"github.com/grindlemire/tuicore/pkg/surface"
	"github.com/grindlemire/tuicore/pkg/value"
)

// box fills its area with the "glyph" attribute and lays its children out
// with the constraints it received. Its size comes from "w" and "h".
type box struct {
	Base
	floats bool
}

func (b *box) Layout(children Children, c layout.Constraints, id WidgetID, ctx *LayoutCtx) geometry.Size {
	children.Each(func(el *Element, grand Children) store.Control {
		el.Layout(grand, c, ctx)
		return store.Continue
	})
	attrs := ctx.Attribs(id)
	w, _ := attrs.Size("w")
	h, _ := attrs.Size("h")
	return c.Constrain(geometry.NewSize(w, h))
}

func (b *box) Paint(children Children, id WidgetID, attrs AttributeLookup, ctx SizedCtx, text *TextSession) {
	a := AttribsOf(attrs, id)
	if s, ok := a.Str("glyph"); ok && s != "" {
		r := []rune(s)[0]
		size := ctx.LocalSize()
		for y := 0; y < size.Height; y++ {
			for x := 0; x < size.Width; x++ {
				ctx.PlaceGlyph(r, a, geometry.NewLocalPos(x, y))
			}
		}
	}
	PaintChildren(children, attrs, ctx, text)
}

func (b *box) Floats() bool {
	return b.floats
}

// single accepts at most one child.
type single struct {
	box
}

func (*single) MaxChildren() int { return 1 }

func testRegistry() *Registry {
	reg := NewRegistry()
	reg.Register("box", func() Widget { return &box{} })
	reg.Register("float", func() Widget { return &box{floats: true} })
	reg.Register("single", func() Widget { return &single{} })
	return reg
}

func boxBP(ident string, w, h int, glyph string, children ...blueprint.Blueprint) *blueprint.Single {
	return blueprint.Element(ident, children...).
		With("w", value.Int(int64(w))).
		With("h", value.Int(int64(h))).
		With("glyph", value.Str(glyph))
}

// render instantiates bps and renders one frame to a w x h buffer.
func render(t *testing.T, w, h int, bps ...blueprint.Blueprint) (*Runtime, *surface.Buffer) {
	t.Helper()

	attrs := value.NewStore()
	tree, err := Instantiate(bps, testRegistry(), attrs)
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	rt, err := NewRuntime(tree, attrs)
	if err != nil {
		t.Fatalf("NewRuntime() error = %v", err)
	}
	buf := surface.NewBuffer(w, h)
	rt.Render(buf)
	return rt, buf
}
