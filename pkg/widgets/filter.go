package widgets

import "github.com/grindlemire/tuicore/pkg/store"

var (
	_ store.Filter[WidgetKind, Element] = layoutFilter{}
	_ store.Filter[WidgetKind, Element] = (*paintFilter)(nil)
)

// layoutFilter is used by the layout and position passes. It yields
// elements, skips excluded elements and hidden branches, and passes
// through every other structural node.
type layoutFilter struct {
	attrs AttributeLookup
}

// LayoutFilter returns the filter the layout and position passes use.
func LayoutFilter(attrs AttributeLookup) store.Filter[WidgetKind, Element] {
	return layoutFilter{attrs: attrs}
}

func (f layoutFilter) Filter(id WidgetID, kind *WidgetKind, _ []*store.Node) (*Element, store.Verdict) {
	el, verdict := structural(*kind)
	if el == nil {
		return nil, verdict
	}
	if DisplayOf(AttribsOf(f.attrs, id)) == DisplayExclude {
		return nil, store.Stop
	}
	return el, store.Include
}

// paintFilter additionally skips hidden elements. When deferred is set,
// floating elements are skipped and their IDs appended to it.
type paintFilter struct {
	attrs    AttributeLookup
	deferred *[]WidgetID
}

// PaintFilter returns the filter the paint pass uses. Floating elements
// are appended to deferred instead of being yielded; pass nil to paint
// them inline.
func PaintFilter(attrs AttributeLookup, deferred *[]WidgetID) store.Filter[WidgetKind, Element] {
	return &paintFilter{attrs: attrs, deferred: deferred}
}

func (f *paintFilter) Filter(id WidgetID, kind *WidgetKind, _ []*store.Node) (*Element, store.Verdict) {
	el, verdict := structural(*kind)
	if el == nil {
		return nil, verdict
	}
	if DisplayOf(AttribsOf(f.attrs, id)) != DisplayShow {
		return nil, store.Stop
	}
	if f.deferred != nil && el.Floats() {
		*f.deferred = append(*f.deferred, id)
		return nil, store.Stop
	}
	return el, store.Include
}

// structural returns the element for element nodes, and the verdict for
// every other kind.
func structural(kind WidgetKind) (*Element, store.Verdict) {
	switch k := kind.(type) {
	case *Element:
		return k, store.Include
	case *If:
		if !k.Show {
			return nil, store.Stop
		}
	case *Else:
		if !k.Show {
			return nil, store.Stop
		}
	}
	return nil, store.PassThrough
}
