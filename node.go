package trie

import "weak"

// Node is a single position in a trie. Every node except the root holds the
// edge label that leads into it from its parent.
type Node[T comparable] struct {
	value       T
	hasValue    bool
	terminating bool
	children    map[T]*Node[T]
	// parent does not keep the parent alive; the parent owns its children.
	parent weak.Pointer[Node[T]]
}

func newRoot[T comparable]() *Node[T] {
	return &Node[T]{children: make(map[T]*Node[T])}
}

// add creates a child for the given label unless one already exists.
func (n *Node[T]) add(child T) {
	if _, ok := n.children[child]; ok {
		return
	}
	n.children[child] = &Node[T]{
		value:    child,
		hasValue: true,
		children: make(map[T]*Node[T]),
		parent:   weak.Make(n),
	}
}

// Value returns the edge label of the node. The root has none.
func (n *Node[T]) Value() (T, bool) { return n.value, n.hasValue }

// IsTerminating reports whether an inserted word ends at this node.
func (n *Node[T]) IsTerminating() bool { return n.terminating }

// Parent returns the node this one hangs off, or nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent.Value() }

// Child returns the child reached by the given label.
func (n *Node[T]) Child(label T) (*Node[T], bool) {
	child, ok := n.children[label]
	return child, ok
}

// Len returns the number of children.
func (n *Node[T]) Len() int { return len(n.children) }
