package steptree

import (
	"fmt"
	"strings"
)

// DisplayFunc renders an arbitrary value as a single line of text, bounded to
// at most max runes when max is positive. Implementations must be total: any
// value, never a panic. The renderer consumes this capability for every value
// it shows.
type DisplayFunc func(v any, max int) string

// Display is the default DisplayFunc. It favors a value's own string forms,
// falls back to fmt, escapes newlines to keep report lines intact, and
// truncates over-long text with a trailing ellipsis. A String or Error method
// that panics is caught and rendered as a placeholder, keeping Display total.
func Display(v any, max int) string {
	s := displayRaw(v)
	s = strings.ReplaceAll(s, "\n", `\n`)
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func displayRaw(v any) (s string) {
	defer func() {
		if rec := recover(); rec != nil {
			s = fmt.Sprintf("%T(unrenderable)", v)
		}
	}()
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
