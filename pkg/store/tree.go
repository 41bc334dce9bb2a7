package store

// Node is one entry in a Tree. It owns its children in insertion order.
type Node struct {
	id       ID
	parent   ID
	children []*Node
}

// ID returns the slab ID of the node's value.
func (n *Node) ID() ID {
	return n.id
}

// Parent returns the parent's ID, or NoID for a root.
func (n *Node) Parent() ID {
	return n.parent
}

// Children returns the node's children. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

type entry[T any] struct {
	node  *Node
	value T
}

// Tree is an owning arena of values arranged as an ordered forest.
type Tree[T any] struct {
	roots  []*Node
	values *Slab[entry[T]]
}

// NewTree creates an empty tree.
func NewTree[T any]() *Tree[T] {
	return &Tree[T]{values: NewSlab[entry[T]]()}
}

// NextID returns the ID the next inserted value will receive.
func (t *Tree[T]) NextID() ID {
	return t.values.NextID()
}

// InsertRoot appends a new top-level node holding v.
func (t *Tree[T]) InsertRoot(v T) ID {
	n := &Node{parent: NoID}
	n.id = t.values.Insert(entry[T]{node: n, value: v})
	t.roots = append(t.roots, n)
	return n.id
}

// Insert appends a new child holding v to parent.
// It reports false if parent does not exist.
func (t *Tree[T]) Insert(parent ID, v T) (ID, bool) {
	p, ok := t.values.Get(parent)
	if !ok {
		return NoID, false
	}
	pn := p.node
	n := &Node{parent: parent}
	n.id = t.values.Insert(entry[T]{node: n, value: v})
	pn.children = append(pn.children, n)
	return n.id, true
}

// Remove deletes the node and its whole subtree, freeing their IDs.
func (t *Tree[T]) Remove(id ID) {
	e, ok := t.values.Get(id)
	if !ok {
		return
	}
	n := e.node
	if n.parent == NoID {
		t.roots = detach(t.roots, n)
	} else if p, ok := t.values.Get(n.parent); ok {
		p.node.children = detach(p.node.children, n)
	}
	t.free(n)
}

func (t *Tree[T]) free(n *Node) {
	for _, c := range n.children {
		t.free(c)
	}
	t.values.Remove(n.id)
}

func detach(nodes []*Node, n *Node) []*Node {
	for i, c := range nodes {
		if c == n {
			return append(nodes[:i:i], nodes[i+1:]...)
		}
	}
	return nodes
}

// Get returns a pointer to the value stored under id.
func (t *Tree[T]) Get(id ID) (*T, bool) {
	e, ok := t.values.Get(id)
	if !ok {
		return nil, false
	}
	return &e.value, true
}

// Node returns the tree node for id.
func (t *Tree[T]) Node(id ID) (*Node, bool) {
	e, ok := t.values.Get(id)
	if !ok {
		return nil, false
	}
	return e.node, true
}

// Roots returns the top-level nodes in insertion order.
func (t *Tree[T]) Roots() []*Node {
	return t.roots
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	return t.values.Len()
}
