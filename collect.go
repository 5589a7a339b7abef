package steptree

// Signal tells the collector whether to keep iterating after an item has been
// combined into the accumulator.
type Signal int

const (
	// Continue proceeds to the next item.
	Continue Signal = iota

	// Halt stops the collection; remaining items are never visited.
	Halt
)

// Mapped is what one collected item produced: the trace node or nodes recorded
// for it, and the normalized result fed to the combiner.
type Mapped struct {
	Nodes  []*Node
	Result Result
}

// MapOne wraps a single trace node, taking the result from the node's own
// output.
func MapOne(n *Node) Mapped {
	return Mapped{Nodes: []*Node{n}, Result: n.Result()}
}

// MapMany wraps a step that produced several trace nodes with an explicit
// overall result.
func MapMany(nodes []*Node, r Result) Mapped {
	return Mapped{Nodes: nodes, Result: r}
}

//
//
//

// CollectWhile drives an ordered sequence of sub-steps. For each item, in
// order, the mapper executes the step and yields its traces and result. The
// traces are appended to the collected list first, and only then is the result
// combined into the accumulator — so a halting item's own traces are always
// included. When the combiner signals Halt, iteration stops and the remaining
// items are never visited.
//
// The finalizer is applied to the final accumulator before returning; nil
// means no finalization. Returns the full ordered trace list and the
// finalized accumulator. The accumulator is local to the call and must not be
// shared across concurrent invocations.
func CollectWhile[T, A any](
	items []T,
	mapper func(T) Mapped,
	init A,
	combiner func(Result, A) (Signal, A),
	finalize func(A) A,
) ([]*Node, A) {
	var (
		traces = []*Node{}
		acc    = init
	)
	for _, item := range items {
		m := mapper(item)
		traces = append(traces, m.Nodes...)

		signal, next := combiner(m.Result, acc)
		acc = next
		if signal == Halt {
			break
		}
	}
	if finalize != nil {
		acc = finalize(acc)
	}
	return traces, acc
}

// Collect maps every item and aggregates the results with [Combine], starting
// from the empty success outcome and never halting early. The returned trace
// list preserves item order regardless of the success/failure mix, and the
// returned outcome is finalized to arrival order.
func Collect[T any](items []T, mapper func(T) Mapped) ([]*Node, Outcome) {
	return CollectWhile(items, mapper, NewOutcome(), func(r Result, acc Outcome) (Signal, Outcome) {
		return Continue, Combine(r, acc)
	}, Outcome.Finalize)
}
