package store

import (
	"slices"
	"testing"
)

type item struct {
	name  string
	kind  string // "el", "marker" or "hidden"
	width int
}

// itemFilter yields elements, passes through markers and stops at hidden nodes.
type itemFilter struct{}

func (itemFilter) Filter(_ ID, in *item, _ []*Node) (*item, Verdict) {
	switch in.kind {
	case "marker":
		return nil, PassThrough
	case "hidden":
		return nil, Stop
	default:
		return in, Include
	}
}

func buildTree(t *testing.T) *Tree[item] {
	t.Helper()
	tr := NewTree[item]()
	root := tr.InsertRoot(item{name: "root", kind: "el"})
	a, _ := tr.Insert(root, item{name: "a", kind: "el"})
	tr.Insert(a, item{name: "a1", kind: "el"})
	m, _ := tr.Insert(root, item{name: "loop", kind: "marker"})
	tr.Insert(m, item{name: "m1", kind: "el"})
	tr.Insert(m, item{name: "m2", kind: "el"})
	h, _ := tr.Insert(root, item{name: "hidden", kind: "hidden"})
	tr.Insert(h, item{name: "h1", kind: "el"})
	tr.Insert(root, item{name: "b", kind: "el"})
	return tr
}

func names(f ForEach[item, item]) []string {
	var out []string
	f.Each(func(v *item, _ ForEach[item, item]) Control {
		out = append(out, v.name)
		return Continue
	})
	return out
}

func TestForEach_FilterVerdicts(t *testing.T) {
	tr := buildTree(t)
	root := tr.Roots()[0]
	children := NewForEach[item, item](root.Children(), tr, itemFilter{})

	got := names(children)
	want := []string{"a", "m1", "m2", "b"}
	if !slices.Equal(got, want) {
		t.Errorf("Each() visited %v, want %v", got, want)
	}
	if n := children.Len(); n != 4 {
		t.Errorf("Len() = %d, want 4", n)
	}
}

func TestForEach_BreakStopsIteration(t *testing.T) {
	tr := buildTree(t)
	children := NewForEach[item, item](tr.Roots()[0].Children(), tr, itemFilter{})

	var seen []string
	ctrl := children.Each(func(v *item, _ ForEach[item, item]) Control {
		seen = append(seen, v.name)
		if v.name == "m1" {
			return Break
		}
		return Continue
	})

	if ctrl != Break {
		t.Errorf("Each() = %v, want Break", ctrl)
	}
	if !slices.Equal(seen, []string{"a", "m1"}) {
		t.Errorf("Each() visited %v, want [a m1]", seen)
	}
}

func TestForEach_FirstAndNested(t *testing.T) {
	tr := buildTree(t)
	children := NewForEach[item, item](tr.Roots()[0].Children(), tr, itemFilter{})

	var first string
	var nested []string
	ok := children.First(func(v *item, grand ForEach[item, item]) {
		first = v.name
		nested = names(grand)
	})
	if !ok || first != "a" {
		t.Errorf("First() = %q, %v, want \"a\", true", first, ok)
	}
	if !slices.Equal(nested, []string{"a1"}) {
		t.Errorf("nested children = %v, want [a1]", nested)
	}

	empty := NewForEach[item, item](nil, tr, itemFilter{})
	if empty.First(func(*item, ForEach[item, item]) {}) {
		t.Error("First() on empty view = true, want false")
	}
}

func TestForEach_MutatesPayloadInPlace(t *testing.T) {
	tr := buildTree(t)
	children := NewForEach[item, item](tr.Roots()[0].Children(), tr, itemFilter{})

	children.Each(func(v *item, _ ForEach[item, item]) Control {
		v.width = len(v.name)
		return Continue
	})

	for _, n := range tr.Roots()[0].Children() {
		v, _ := tr.Get(n.ID())
		if v.kind == "el" && v.width != len(v.name) {
			t.Errorf("%s.width = %d, want %d", v.name, v.width, len(v.name))
		}
	}
}

func TestTree_RemoveFreesSubtree(t *testing.T) {
	tr := buildTree(t)
	before := tr.Len()
	root := tr.Roots()[0]
	loop := root.Children()[1]

	tr.Remove(loop.ID())

	if tr.Len() != before-3 {
		t.Errorf("Len() after Remove = %d, want %d", tr.Len(), before-3)
	}
	if _, ok := tr.Get(loop.ID()); ok {
		t.Error("Get(removed) ok = true, want false")
	}
	if len(root.Children()) != 3 {
		t.Errorf("root has %d children, want 3", len(root.Children()))
	}

	// Freed slots are reused by the next insert.
	next := tr.NextID()
	id, ok := tr.Insert(root.ID(), item{name: "c", kind: "el"})
	if !ok || id != next {
		t.Errorf("Insert() = %d, %v, want %d, true", id, ok, next)
	}
}

func TestTree_InsertUnknownParent(t *testing.T) {
	tr := NewTree[item]()
	if _, ok := tr.Insert(42, item{}); ok {
		t.Error("Insert(unknown parent) ok = true, want false")
	}
}
