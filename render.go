package steptree

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Depth is the policy controlling how much of the nested tree a render pass
// exposes. It is a closed union of three policies: a bounded number of levels,
// error-only pruning, and unbounded. The zero value is Bounded(0).
type Depth struct {
	mode depthMode
	n    int
}

type depthMode int

const (
	depthBounded depthMode = iota
	depthErrorOnly
	depthUnbounded
)

// Bounded renders at most n levels of nesting. Below the bound, each subtree
// is replaced by a single omission line counting all of its transitive
// descendants. Negative n is treated as 0.
func Bounded(n int) Depth {
	if n < 0 {
		n = 0
	}
	return Depth{mode: depthBounded, n: n}
}

// ErrorOnly fully collapses passing subtrees into omission lines and expands
// failing subtrees without a depth bound, recursively applying the same rule —
// so passing branches under a failing ancestor still collapse.
func ErrorOnly() Depth { return Depth{mode: depthErrorOnly} }

// Unbounded renders every descendant at every level, and never emits an
// omission line.
func Unbounded() Depth { return Depth{mode: depthUnbounded} }

// String returns an operator-readable representation of the policy.
func (d Depth) String() string {
	switch d.mode {
	case depthErrorOnly:
		return "ErrorOnly"
	case depthUnbounded:
		return "Unbounded"
	default:
		return fmt.Sprintf("Bounded(%d)", d.n)
	}
}

//
//
//

// Options configures a render pass. The zero value gives the defaults: depth
// Bounded(0), no indentation, no colors, and the package [Display] function.
type Options struct {
	// Depth is the depth policy for the nested section.
	Depth Depth

	// Indent prefixes every line of the report with this many spaces. It is
	// purely cosmetic. Negative is treated as 0.
	Indent int

	// Colors enables ANSI color codes in the report. Whether the destination
	// terminal actually supports color is the caller's concern.
	Colors bool

	// Display renders values as bounded text. Nil means [Display].
	Display DisplayFunc
}

const (
	displayMaxLine   = 120 // top-level data and result lines
	displayMaxInline = 32  // previews inside nested lines
)

// Styles are built on a renderer with a forced ANSI profile, so that enabling
// colors produces the same bytes regardless of where output ends up.
var (
	styleRenderer = func() *lipgloss.Renderer {
		r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI))
		r.SetColorProfile(termenv.ANSI)
		return r
	}()

	styleOK      = styleRenderer.NewStyle().Foreground(lipgloss.Color("2"))
	styleError   = styleRenderer.NewStyle().Foreground(lipgloss.Color("1"))
	styleOmitted = styleRenderer.NewStyle().Faint(true)
)

// Render produces the inspection report for a trace tree. The report has a
// header line reflecting the root's success or failure, a data line with the
// root's input, the root's step label, a nested section governed by the depth
// policy, and a final line with the root's normalized result. Every line of a
// nested level is prefixed with one vertical marker per level.
//
// Render is total over arbitrary step, input, and output values, and is
// deterministic given identical tree, options, and display function.
func Render(n *Node, opts Options) string {
	display := opts.Display
	if display == nil {
		display = Display
	}
	indent := opts.Indent
	if indent < 0 {
		indent = 0
	}

	r := &renderer{
		indent:  strings.Repeat(" ", indent),
		display: display,
		colors:  opts.Colors,
	}

	if n.Succeeded() {
		r.line(0, r.style(styleOK, "Trace<OK>"))
	} else {
		r.line(0, r.style(styleError, "Trace<ERROR>"))
	}
	r.line(1, display(n.input, displayMaxLine))
	r.line(1, display(n.step, displayMaxLine))
	r.nested(n, opts.Depth, 2)
	r.line(1, r.result(n, displayMaxLine))

	return r.sb.String()
}

//
//
//

type renderer struct {
	sb      strings.Builder
	indent  string
	display DisplayFunc
	colors  bool
}

func (r *renderer) line(level int, s string) {
	r.sb.WriteString(r.indent)
	r.sb.WriteString(strings.Repeat("| ", level))
	r.sb.WriteString(s)
	r.sb.WriteByte('\n')
}

func (r *renderer) style(st lipgloss.Style, s string) string {
	if !r.colors {
		return s
	}
	return st.Render(s)
}

// nested renders the children section of n at the given level, dispatching on
// the depth policy. Each policy decides, per direct child, between a rendered
// subtree and an omission contribution.
func (r *renderer) nested(n *Node, depth Depth, level int) {
	switch depth.mode {
	case depthBounded:
		if depth.n == 0 {
			if omitted := n.Count() - 1; omitted > 0 {
				r.omission(level, omitted)
			}
			return
		}
		for _, c := range n.nested {
			r.child(c, Bounded(depth.n-1), level)
		}

	case depthErrorOnly:
		pending := 0
		for _, c := range n.nested {
			if c.Succeeded() {
				pending += c.Count()
				continue
			}
			if pending > 0 {
				r.omission(level, pending)
				pending = 0
			}
			r.child(c, ErrorOnly(), level)
		}
		if pending > 0 {
			r.omission(level, pending)
		}

	case depthUnbounded:
		for _, c := range n.nested {
			r.child(c, Unbounded(), level)
		}
	}
}

// child renders one direct child compactly: step label and input preview,
// the child's own nested section under the given (already decremented) depth,
// and a result preview. Leaves collapse to a single line.
func (r *renderer) child(c *Node, depth Depth, level int) {
	head := r.display(c.step, displayMaxInline) + " " + r.display(c.input, displayMaxInline)
	tail := "=> " + r.result(c, displayMaxInline)

	if len(c.nested) == 0 {
		r.line(level, head+" "+tail)
		return
	}
	r.line(level, head)
	r.nested(c, depth, level+1)
	r.line(level, tail)
}

func (r *renderer) result(n *Node, max int) string {
	res := n.Result()
	if res.Errored() {
		return r.style(styleError, "error: "+r.display(res.Reason(), max))
	}
	return r.style(styleOK, "ok: "+r.display(res.Value(), max))
}

func (r *renderer) omission(level, count int) {
	noun := "steps"
	if count == 1 {
		noun = "step"
	}
	r.line(level, r.style(styleOmitted, fmt.Sprintf("(%d %s omitted)", count, noun)))
}
