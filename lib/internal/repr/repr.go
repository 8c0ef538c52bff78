// Package repr renders elements for the display strings of the collection
// types. Strings are rendered in single quotes with escaping, so that
// Deque.String() produces Deque('a', 'b', 'c') while numeric elements render
// bare, as in Deque(1, 2, 3).
package repr

import (
	"fmt"
	"strconv"
	"strings"
)

// Repr returns the display form of a single element.
func Repr(v any) string {
	switch x := v.(type) {
	case string:
		return quote(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Join renders a sequence of elements as "e1, e2, e3".
func Join[T any](elems []T) string {
	var b strings.Builder
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Repr(e))
	}
	return b.String()
}

// quote renders s in single quotes, escaping as strconv would but with the
// quote characters swapped.
func quote(s string) string {
	q := strconv.Quote(s)
	inner := q[1 : len(q)-1]
	inner = strings.ReplaceAll(inner, `\"`, `"`)
	inner = strings.ReplaceAll(inner, `'`, `\'`)
	return "'" + inner + "'"
}
