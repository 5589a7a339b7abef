package steptree

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a set of rules that can be applied to an individual trace node,
// which will either be allowed (pass) or rejected (fail).
type Filter struct {
	IsErrored bool   `json:"is_errored,omitempty"`
	IsSuccess bool   `json:"is_success,omitempty"`
	IsLeaf    bool   `json:"is_leaf,omitempty"`
	Query     string `json:"query,omitempty"`
	program   *vm.Program
}

// Normalize must be called before the filter can be used.
func (f *Filter) Normalize() []error {
	var errs []error

	if err := f.compileQuery(); err != nil {
		errs = append(errs, fmt.Errorf("query: %w", err))
	}

	return errs
}

// String returns an operator-readable representation of the filter.
func (f Filter) String() string {
	var elems []string

	if f.IsErrored {
		elems = append(elems, "IsErrored")
	}

	if f.IsSuccess {
		elems = append(elems, "IsSuccess")
	}

	if f.IsLeaf {
		elems = append(elems, "IsLeaf")
	}

	if f.Query != "" {
		elems = append(elems, fmt.Sprintf("Query='%s'", f.Query))
	}

	if len(elems) <= 0 {
		return "(allow all)"
	}

	return strings.Join(elems, " ")
}

// Allow returns true if the provided node satisfies all of the conditions in
// the filter.
func (f *Filter) Allow(n *Node) bool {
	if f.IsErrored {
		if !n.Errored() {
			return false
		}
	}

	if f.IsSuccess {
		if n.Errored() {
			return false
		}
	}

	if f.IsLeaf {
		if len(n.Nested()) > 0 {
			return false
		}
	}

	f.compileQuery()
	if f.program != nil {
		out, err := expr.Run(f.program, queryEnv(n))
		if err != nil {
			return false
		}
		b, ok := out.(bool)
		return ok && b
	}

	return true
}

func (f *Filter) compileQuery() error {
	if f.program != nil {
		return nil
	}

	if f.Query == "" {
		return nil
	}

	program, err := expr.Compile(f.Query, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		f.Query = ""
		return fmt.Errorf("invalid, ignoring (%w)", err)
	}

	f.program = program
	return nil
}

// queryEnv is the expression environment for one node. Step labels are
// exposed as display text so queries can match them regardless of value type;
// the rest are live values.
func queryEnv(n *Node) map[string]any {
	res := n.Result()
	return map[string]any{
		"step":    Display(n.Step(), 0),
		"input":   n.Input(),
		"ok":      res.OK(),
		"errored": res.Errored(),
		"leaf":    len(n.Nested()) == 0,
		"value":   res.Value(),
		"reason":  res.Reason(),
		"nested":  len(n.Nested()),
	}
}

// Search returns every node in the tree allowed by the filter, in pre-order.
func (n *Node) Search(f *Filter) []*Node {
	return n.Find(f.Allow)
}
