package store

// Verdict is a filter's decision for a single node.
type Verdict uint8

const (
	// Include yields the node to the caller, who decides whether to descend.
	Include Verdict = iota
	// PassThrough does not yield the node but visits its children in its place.
	PassThrough
	// Stop skips the node and its entire subtree.
	Stop
)

// Control is returned by a ForEach callback.
type Control uint8

const (
	// Continue moves on to the next sibling.
	Continue Control = iota
	// Break ends the iteration after the current child.
	Break
)

// Filter decides, per node, how a traversal treats it.
//
// When the verdict is Include the returned view is passed to the callback;
// it is ignored for the other verdicts.
type Filter[In, Out any] interface {
	Filter(id ID, input *In, children []*Node) (*Out, Verdict)
}

// ForEach is a filtered view over a list of sibling nodes.
// It never changes the shape of the tree.
type ForEach[In, Out any] struct {
	nodes  []*Node
	tree   *Tree[In]
	filter Filter[In, Out]
}

// NewForEach creates a view over nodes using filter.
func NewForEach[In, Out any](nodes []*Node, tree *Tree[In], filter Filter[In, Out]) ForEach[In, Out] {
	return ForEach[In, Out]{nodes: nodes, tree: tree, filter: filter}
}

// Each calls fn for every included node in order, descending through
// pass-through nodes. It returns Break if fn stopped the iteration.
func (f ForEach[In, Out]) Each(fn func(out *Out, children ForEach[In, Out]) Control) Control {
	for _, n := range f.nodes {
		in, ok := f.tree.Get(n.id)
		if !ok {
			continue
		}
		out, verdict := f.filter.Filter(n.id, in, n.children)
		switch verdict {
		case Stop:
			continue
		case PassThrough:
			if f.descend(n.children).Each(fn) == Break {
				return Break
			}
		case Include:
			if fn(out, f.descend(n.children)) == Break {
				return Break
			}
		}
	}
	return Continue
}

// First calls fn with the first included node only.
// It reports whether such a node existed.
func (f ForEach[In, Out]) First(fn func(out *Out, children ForEach[In, Out])) bool {
	found := false
	f.Each(func(out *Out, children ForEach[In, Out]) Control {
		found = true
		fn(out, children)
		return Break
	})
	return found
}

// Len counts the nodes the filter includes at this level.
func (f ForEach[In, Out]) Len() int {
	count := 0
	f.Each(func(*Out, ForEach[In, Out]) Control {
		count++
		return Continue
	})
	return count
}

// IsEmpty reports whether the view has no unfiltered nodes.
func (f ForEach[In, Out]) IsEmpty() bool {
	return len(f.nodes) == 0
}

func (f ForEach[In, Out]) descend(nodes []*Node) ForEach[In, Out] {
	return ForEach[In, Out]{nodes: nodes, tree: f.tree, filter: f.filter}
}
