package steptree

// Find returns every node in the tree satisfying the predicate, in pre-order:
// the node itself is visited before its children, children left to right.
// Matching never prunes the search — descent continues into the children of a
// matching node.
//
// The predicate is expected to be total; a panicking predicate is a caller
// contract violation.
func (n *Node) Find(pred func(*Node) bool) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		if pred(cur) {
			out = append(out, cur)
		}
		for _, c := range cur.nested {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Reduce folds fn over the tree in pre-order: the node is folded first, then
// each child's subtree left to right, threading the accumulator through every
// visit. It is a package-level function rather than a method because methods
// cannot introduce type parameters.
func Reduce[A any](n *Node, init A, fn func(*Node, A) A) A {
	acc := fn(n, init)
	for _, c := range n.nested {
		acc = Reduce(c, acc, fn)
	}
	return acc
}

// Count returns the total number of nodes in the tree, the node itself
// included.
func (n *Node) Count() int {
	return Reduce(n, 0, func(_ *Node, c int) int { return c + 1 })
}

// RootCauses returns the failing leaves of the tree, in pre-order: the first
// causes of failure with no deeper explanation beneath them.
func (n *Node) RootCauses() []*Node {
	return n.Find(func(c *Node) bool {
		return c.Errored() && len(c.nested) == 0
	})
}
