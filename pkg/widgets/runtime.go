package widgets

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/grindlemire/tuicore/internal/debug"
	"github.com/grindlemire/tuicore/pkg/geometry"
	"github.com/grindlemire/tuicore/pkg/layout"
	"github.com/grindlemire/tuicore/pkg/store"
)

// RuntimeOption is a functional option for configuring a Runtime.
type RuntimeOption func(*Runtime) error

// WithViewport fixes the viewport size. By default the viewport follows
// the renderer's size.
func WithViewport(size geometry.Size) RuntimeOption {
	return func(r *Runtime) error {
		if size.Width < 0 || size.Height < 0 {
			return fmt.Errorf("viewport %dx%d must not be negative", size.Width, size.Height)
		}
		r.viewport = layout.NewViewport(size)
		r.fixed = true
		return nil
	}
}

// WithLogger sets the logger used for frame diagnostics.
// Default is the debug logger.
func WithLogger(l *slog.Logger) RuntimeOption {
	return func(r *Runtime) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		r.logger = l
		return nil
	}
}

// WithTextSession shares a text session with the caller, e.g. to inspect
// shaped lines after a frame.
func WithTextSession(s *TextSession) RuntimeOption {
	return func(r *Runtime) error {
		if s == nil {
			return fmt.Errorf("text session must not be nil")
		}
		r.text = s
		return nil
	}
}

// Runtime renders frames of a widget tree.
// It is not safe for concurrent use.
type Runtime struct {
	tree     *store.Tree[WidgetKind]
	attrs    AttributeLookup
	viewport layout.Viewport
	fixed    bool
	text     *TextSession
	logger   *slog.Logger
	deferred []WidgetID
}

// NewRuntime creates a runtime for tree reading attributes from attrs.
func NewRuntime(tree *store.Tree[WidgetKind], attrs AttributeLookup, opts ...RuntimeOption) (*Runtime, error) {
	r := &Runtime{
		tree:   tree,
		attrs:  attrs,
		text:   NewTextSession(),
		logger: debug.Logger(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Tree returns the widget tree.
func (r *Runtime) Tree() *store.Tree[WidgetKind] {
	return r.tree
}

// Viewport returns the current viewport.
func (r *Runtime) Viewport() layout.Viewport {
	return r.viewport
}

// SetViewport fixes the viewport for the following frames.
func (r *Runtime) SetViewport(size geometry.Size) {
	r.viewport = layout.NewViewport(size)
	r.fixed = true
}

// Text returns the text session of the last layout pass.
func (r *Runtime) Text() *TextSession {
	return r.text
}

// Element returns the element stored under id.
func (r *Runtime) Element(id WidgetID) (*Element, bool) {
	kind, ok := r.tree.Get(id)
	if !ok {
		return nil, false
	}
	el, ok := (*kind).(*Element)
	return el, ok
}

func (r *Runtime) roots(filter store.Filter[WidgetKind, Element]) Children {
	return store.NewForEach(r.tree.Roots(), r.tree, filter)
}

// Layout runs the layout pass. Every root is laid out against the
// viewport constraints.
func (r *Runtime) Layout() {
	r.text.Reset()
	ctx := NewLayoutCtx(r.attrs, r.viewport, r.text)
	constraints := r.viewport.Constraints()
	r.roots(LayoutFilter(r.attrs)).Each(func(el *Element, children Children) store.Control {
		el.Layout(children, constraints, ctx)
		return store.Continue
	})
}

// Position runs the position pass. Every root is placed at the origin.
func (r *Runtime) Position() {
	r.roots(LayoutFilter(r.attrs)).Each(func(el *Element, children Children) store.Control {
		el.Position(children, geometry.Origin, r.attrs, r.viewport)
		return store.Continue
	})
}

// Paint runs the paint pass followed by the floating layer. Floating
// elements are painted unclipped in the order they were reached, after
// everything else.
func (r *Runtime) Paint(renderer WidgetRenderer) {
	r.deferred = r.deferred[:0]
	filter := PaintFilter(r.attrs, &r.deferred)

	ctx := NewUnsizedCtx(renderer)
	r.roots(filter).Each(func(el *Element, children Children) store.Control {
		el.Paint(children, ctx, r.text, r.attrs)
		return store.Continue
	})

	// Floats reached while painting a float are appended and painted in
	// the same loop.
	for i := 0; i < len(r.deferred); i++ {
		id := r.deferred[i]
		el, ok := r.Element(id)
		if !ok {
			continue
		}
		node, _ := r.tree.Node(id)
		children := store.NewForEach(node.Children(), r.tree, filter)
		el.Paint(children, NewUnsizedCtx(renderer), r.text, r.attrs)
	}
}

// Render runs a complete frame. Unless a viewport was fixed, the frame
// covers the renderer's current size.
func (r *Runtime) Render(renderer WidgetRenderer) {
	if !r.fixed {
		r.viewport = layout.NewViewport(renderer.Size())
	}

	start := time.Now()
	r.Layout()
	laidOut := time.Now()
	r.Position()
	positioned := time.Now()
	r.Paint(renderer)

	r.logger.Debug("frame",
		"viewport", r.viewport.Size(),
		"nodes", r.tree.Len(),
		"floats", len(r.deferred),
		"layout", laidOut.Sub(start),
		"position", positioned.Sub(laidOut),
		"paint", time.Since(positioned),
	)
}
