// Package steptree records the execution of a computation as an immutable
// tree of steps — what ran, what went in, what came out, and which sub-steps
// ran underneath — and renders that tree as a depth-controllable, color-coded
// inspection report for debugging and failure diagnosis.
//
// The basic idea is that every finished step becomes a [Node], built
// bottom-up with its children supplied at construction, after which the tree
// never mutates. Step outputs encode success or failure by convention, and
// [Normalize] maps any output to a canonical [Result]. On top of the tree sit
// generic traversals ([Node.Find], [Reduce], [Node.RootCauses]), an
// aggregation algebra ([Combine], [Outcome]) that merges per-item results
// into one overall outcome, and a collector ([CollectWhile], [Collect]) that
// drives ordered sub-step execution with optional early termination.
//
// [Render] produces the report. A [Depth] policy controls how much of the
// tree a pass exposes: a bounded number of levels, error-only pruning that
// collapses passing subtrees while fully expanding failing ones, or the whole
// tree. Collapsed subtrees are summarized by omission lines carrying their
// node counts, so a report always accounts for everything that ran.
//
// The package is fully synchronous and performs no I/O. A completed tree is
// safe for concurrent read-only traversal and rendering. Callers who prefer
// not to assemble nodes by hand can drive execution through a [Recorder].
package steptree
