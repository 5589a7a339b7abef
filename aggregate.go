package steptree

import "fmt"

// Outcome accumulates a sequence of per-item results into one overall
// success-or-failure outcome. It is either a success carrying the values seen
// so far, or a failure carrying the reasons seen so far. The zero value is the
// empty success, which is the canonical starting accumulator.
//
// Items are stored most-recent-first while accumulating; Finalize restores
// arrival order. An Outcome is a value and is never shared: each Combine
// returns a new one, so an in-progress aggregation must stay local to a single
// goroutine.
type Outcome struct {
	errored bool
	items   []any
}

// NewOutcome returns the empty success outcome.
func NewOutcome() Outcome { return Outcome{} }

// OK reports whether the outcome is still in success mode.
func (o Outcome) OK() bool { return !o.errored }

// Errored reports whether the outcome has switched to failure mode.
func (o Outcome) Errored() bool { return o.errored }

// Items returns the accumulated values (success mode) or reasons (failure
// mode), in storage order: most-recent-first before Finalize, arrival order
// after. The returned slice is owned by the outcome and must be treated as
// read-only.
func (o Outcome) Items() []any { return o.items }

// Finalize returns a copy of the outcome with its items reversed, restoring
// arrival order.
func (o Outcome) Finalize() Outcome {
	items := make([]any, len(o.items))
	for i, v := range o.items {
		items[len(items)-1-i] = v
	}
	return Outcome{errored: o.errored, items: items}
}

// Result converts the outcome to a canonical result carrying the item list.
func (o Outcome) Result() Result {
	if o.errored {
		return Failure(o.items)
	}
	return Success(o.items)
}

// String returns an operator-readable representation of the outcome.
func (o Outcome) String() string {
	if o.errored {
		return fmt.Sprintf("Failure(%v)", o.items)
	}
	return fmt.Sprintf("Success(%v)", o.items)
}

//
//
//

// Combine merges one more result into the accumulator and returns the new
// accumulator. The merge rules:
//
//   - success + success: the value is prepended to the accumulated values.
//   - success + failure: the accumulator switches to failure mode, all
//     previously accumulated successes are discarded, and only the new
//     failure reason survives.
//   - failure + success: the success is ignored, the accumulator is returned
//     unchanged.
//   - failure + failure: the reason is prepended. A reason that is itself a
//     []any is flattened one level, each element prepended individually with
//     their relative order preserved.
func Combine(r Result, acc Outcome) Outcome {
	switch {
	case acc.errored && r.OK():
		return acc

	case acc.errored:
		if reasons, ok := r.Reason().([]any); ok {
			items := acc.items
			for _, reason := range reasons {
				items = prepend(items, reason)
			}
			return Outcome{errored: true, items: items}
		}
		return Outcome{errored: true, items: prepend(acc.items, r.Reason())}

	case r.Errored():
		return Outcome{errored: true, items: []any{r.Reason()}}

	default:
		return Outcome{items: prepend(acc.items, r.Value())}
	}
}

// Finalize restores arrival order in accumulators with a list payload:
// an [Outcome] or a []any is reversed, and any other accumulator is passed
// through unchanged. It is the default finalizer of [CollectWhile].
func Finalize(acc any) any {
	switch v := acc.(type) {
	case Outcome:
		return v.Finalize()
	case []any:
		items := make([]any, len(v))
		for i, e := range v {
			items[len(items)-1-i] = e
		}
		return items
	default:
		return acc
	}
}

func prepend(items []any, v any) []any {
	out := make([]any, 0, len(items)+1)
	out = append(out, v)
	return append(out, items...)
}
