package widgets

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/grindlemire/tuicore/internal/debug"
	"github.com/grindlemire/tuicore/pkg/blueprint"
	"github.com/grindlemire/tuicore/pkg/store"
	"github.com/grindlemire/tuicore/pkg/value"
)

var (
	// ErrUnknownWidget is returned when a blueprint names a widget that
	// is not registered.
	ErrUnknownWidget = errors.New("unknown widget")

	// ErrArity is returned when a widget has more children than it accepts.
	ErrArity = errors.New("too many children")
)

// Factory creates a new widget instance.
type Factory func() Widget

// Registry maps widget names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Lookup returns the factory for name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered widget names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Instantiate builds a widget tree from bps. Element attributes, and the
// element value under value.ValueKey, are written to attrs.
func Instantiate(bps []blueprint.Blueprint, reg *Registry, attrs *value.Store) (*store.Tree[WidgetKind], error) {
	in := &instantiator{
		tree:   store.NewTree[WidgetKind](),
		reg:    reg,
		attrs:  attrs,
		logger: debug.Logger(),
	}
	for _, bp := range bps {
		if err := in.build(store.NoID, bp); err != nil {
			return nil, err
		}
	}
	return in.tree, nil
}

type instantiator struct {
	tree   *store.Tree[WidgetKind]
	reg    *Registry
	attrs  *value.Store
	logger *slog.Logger
}

func (in *instantiator) add(parent WidgetID, kind WidgetKind) WidgetID {
	if parent == store.NoID {
		return in.tree.InsertRoot(kind)
	}
	id, ok := in.tree.Insert(parent, kind)
	if !ok {
		panic(fmt.Sprintf("widgets: parent %d vanished during instantiation", parent))
	}
	return id
}

func (in *instantiator) buildAll(parent WidgetID, bps []blueprint.Blueprint) error {
	for _, bp := range bps {
		if err := in.build(parent, bp); err != nil {
			return err
		}
	}
	return nil
}

func (in *instantiator) build(parent WidgetID, bp blueprint.Blueprint) error {
	switch b := bp.(type) {
	case *blueprint.Single:
		return in.single(parent, b)

	case *blueprint.Loop:
		loop := in.add(parent, &Loop{Binding: b.Binding})
		for i, item := range b.Data {
			iter := in.add(loop, &Iteration{Binding: b.Binding, Index: i, Value: item})
			if err := in.buildAll(iter, b.Body); err != nil {
				return err
			}
		}
		return nil

	case *blueprint.ControlFlow:
		cf := in.add(parent, &ControlFlow{})
		shown := b.If.Holds()
		if err := in.buildAll(in.add(cf, &If{Show: shown}), b.If.Body); err != nil {
			return err
		}
		for _, branch := range b.Elses {
			show := !shown && branch.Holds()
			shown = shown || show
			if err := in.buildAll(in.add(cf, &Else{Show: show}), branch.Body); err != nil {
				return err
			}
		}
		return nil

	case *blueprint.Component:
		return in.buildAll(in.add(parent, &Component{Name: b.Name}), b.Body)

	default:
		return fmt.Errorf("unsupported blueprint %T", bp)
	}
}

func (in *instantiator) single(parent WidgetID, b *blueprint.Single) error {
	factory, ok := in.reg.Lookup(b.Ident)
	if !ok {
		in.logger.Warn("unknown widget", "ident", b.Ident)
		return fmt.Errorf("%w: %q", ErrUnknownWidget, b.Ident)
	}

	widget := factory()
	id := in.tree.NextID()
	if got := in.add(parent, NewElement(b.Ident, id, widget)); got != id {
		panic(fmt.Sprintf("widgets: element %q stored as %d, want %d", b.Ident, got, id))
	}

	attrs := value.NewAttributes()
	for _, a := range b.Attributes {
		attrs.Set(a.Key, a.Value)
	}
	if b.Value != nil {
		attrs.Set(value.ValueKey, *b.Value)
	}
	in.attrs.Set(id, attrs)

	if err := in.buildAll(id, b.Children); err != nil {
		return err
	}

	if limiter, ok := widget.(ChildLimiter); ok {
		node, _ := in.tree.Node(id)
		count := store.NewForEach(node.Children(), in.tree, LayoutFilter(nil)).Len()
		if count > limiter.MaxChildren() {
			return fmt.Errorf("%w: %q accepts %d, got %d", ErrArity, b.Ident, limiter.MaxChildren(), count)
		}
	}
	return nil
}
