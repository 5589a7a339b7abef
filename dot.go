package steptree

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// DOT renders the trace tree as a Graphviz digraph, one graph node per trace
// node in pre-order, edges from parent to child in execution order. Failing
// nodes are colored red. The graph name defaults to "trace" when empty.
//
// The output is a textual export of the tree's shape for visual inspection;
// it carries display text only, not the underlying values.
func DOT(root *Node, name string) (string, error) {
	if name == "" {
		name = "trace"
	}

	g := gographviz.NewGraph()
	if err := g.SetName(name); err != nil {
		return "", fmt.Errorf("set graph name: %w", err)
	}
	if err := g.SetDir(true); err != nil {
		return "", fmt.Errorf("set digraph: %w", err)
	}

	seq := 0
	var add func(n *Node) (string, error)
	add = func(n *Node) (string, error) {
		id := fmt.Sprintf("n%d", seq)
		seq++

		label := fmt.Sprintf("%s %s", Display(n.Step(), displayMaxInline), n.Result().String())
		attrs := map[string]string{
			"label": fmt.Sprintf("%q", label),
			"shape": `"box"`,
		}
		if n.Errored() {
			attrs["color"] = `"red"`
		}
		if err := g.AddNode(name, id, attrs); err != nil {
			return "", fmt.Errorf("add node %s: %w", id, err)
		}

		for _, c := range n.Nested() {
			cid, err := add(c)
			if err != nil {
				return "", err
			}
			if err := g.AddEdge(id, cid, true, nil); err != nil {
				return "", fmt.Errorf("add edge %s -> %s: %w", id, cid, err)
			}
		}

		return id, nil
	}

	if _, err := add(root); err != nil {
		return "", err
	}

	return g.String(), nil
}
