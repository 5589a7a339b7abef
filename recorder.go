package steptree

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// Recorder is a convenience layer that drives step execution and builds trace
// nodes bottom-up, so callers don't have to hand-assemble trees. Each recorder
// carries a ULID identifying the recording run, useful for correlating reports
// from the same execution.
//
// A Recorder is not safe for concurrent use; record steps sequentially, from
// one goroutine.
type Recorder struct {
	id    ulid.ULID
	nodes []*Node
}

// NewRecorder creates a recorder with a fresh run ID.
func NewRecorder() *Recorder {
	return &Recorder{id: ulid.Make()}
}

// ID returns the run ID of the recording.
func (r *Recorder) ID() string { return r.id.String() }

// Nodes returns the recorded top-level steps, in execution order.
func (r *Recorder) Nodes() []*Node { return r.nodes }

// Record runs fn with the given input and records a leaf node with whatever
// fn returns as the raw output. A panic in fn is recovered and recorded as a
// failure output, so a recording never unwinds past the recorder.
func (r *Recorder) Record(step, input any, fn func(input any) any) *Node {
	output := runStep(func() any { return fn(input) })
	n := New(step, input, output)
	r.nodes = append(r.nodes, n)
	return n
}

// Group runs fn with a nested recorder and records a node whose children are
// the steps fn recorded on it, in order. Panics are recovered as in Record.
func (r *Recorder) Group(step, input any, fn func(sub *Recorder) any) *Node {
	sub := &Recorder{id: r.id}
	output := runStep(func() any { return fn(sub) })
	n := New(step, input, output, sub.nodes...)
	r.nodes = append(r.nodes, n)
	return n
}

func runStep(fn func() any) (output any) {
	defer func() {
		if rec := recover(); rec != nil {
			output = Err{Reason: fmt.Sprintf("panic: %v", rec)}
		}
	}()
	return fn()
}
