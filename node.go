package steptree

// Node is one recorded step of a computation: a label identifying what ran,
// the value that went in, the value that came out, and the ordered sub-steps
// that ran underneath. Nodes form a finite, acyclic tree, with each parent
// exclusively owning its children.
//
// A Node is constructed once, when the step it records has finished executing,
// and never mutates afterwards. Trees are therefore built bottom-up, leaves
// first, and are safe for concurrent read-only traversal and rendering without
// any synchronization.
type Node struct {
	step   any
	input  any
	output any
	nested []*Node
}

// New constructs a node for a finished step. The step label, input, and output
// are opaque to the package, except that the output encodes success or failure
// by convention — see [Normalize]. The children are captured at construction
// and must not be modified or reused by the caller afterwards; their order is
// execution order.
func New(step, input, output any, nested ...*Node) *Node {
	children := make([]*Node, len(nested))
	copy(children, nested)
	return &Node{
		step:   step,
		input:  input,
		output: output,
		nested: children,
	}
}

// Step returns the opaque label identifying what ran.
func (n *Node) Step() any { return n.step }

// Input returns the opaque value that went into the step.
func (n *Node) Input() any { return n.input }

// Output returns the raw output of the step, before normalization.
func (n *Node) Output() any { return n.output }

// Nested returns the sub-steps in execution order. The returned slice is owned
// by the node and must be treated as read-only. It is empty for leaves.
func (n *Node) Nested() []*Node { return n.nested }

// Result returns the canonical success or failure form of the node's output.
func (n *Node) Result() Result { return Normalize(n.output) }

// Errored reports whether the node's output normalizes to a failure.
func (n *Node) Errored() bool { return n.Result().Errored() }

// Succeeded reports whether the node's output normalizes to a success. It is
// always the exact opposite of Errored.
func (n *Node) Succeeded() bool { return !n.Errored() }
