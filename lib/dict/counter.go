package dict

import (
	"iter"
	"slices"
	"strings"

	"github.com/gollections/gollections/lib/internal/repr"
)

// Counter is a multiset over Dict[K, int]: a count is kept per key, and
// reading a missing key yields zero without mutating the counter.
type Counter[K comparable] struct {
	d *Dict[K, int]
}

// NewCounter returns an empty counter.
func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{d: New[K, int]()}
}

// CounterOf returns a counter tallying elems.
func CounterOf[K comparable](elems ...K) *Counter[K] {
	c := NewCounter[K]()
	for _, e := range elems {
		c.Add(e, 1)
	}
	return c
}

// Clone returns a deep copy.
func (c *Counter[K]) Clone() *Counter[K] {
	return &Counter[K]{d: c.d.Clone()}
}

// Take moves the contents into a new counter, leaving c valid and empty.
func (c *Counter[K]) Take() *Counter[K] {
	return &Counter[K]{d: c.d.Take()}
}

// Len returns the number of distinct keys, including those whose count has
// been explicitly set to zero or below.
func (c *Counter[K]) Len() int { return c.d.Len() }

// Count returns the count for k, zero when absent. Never mutates.
func (c *Counter[K]) Count(k K) int { return c.d.GetDefault(k, 0) }

// Set overwrites the count for k.
func (c *Counter[K]) Set(k K, n int) { c.d.Set(k, n) }

// Add adds n to k's count (n may be negative).
func (c *Counter[K]) Add(k K, n int) { c.d.Set(k, c.Count(k)+n) }

// Subtract subtracts n from k's count. The result may go negative.
func (c *Counter[K]) Subtract(k K, n int) { c.Add(k, -n) }

// Pop removes k and returns its count; a KeyError when absent.
func (c *Counter[K]) Pop(k K) (int, error) { return c.d.Pop(k) }

// Total returns the sum of all counts.
func (c *Counter[K]) Total() int {
	total := 0
	for v := range c.d.Values() {
		total += v
	}
	return total
}

// MostCommon returns up to n key/count pairs ordered by descending count,
// ties broken by insertion order. n < 0 returns all.
func (c *Counter[K]) MostCommon(n int) []Item[K] {
	items := make([]Item[K], 0, c.Len())
	for k, v := range c.d.Items() {
		items = append(items, Item[K]{Key: k, Count: v})
	}
	slices.SortStableFunc(items, func(a, b Item[K]) int { return b.Count - a.Count })
	if n >= 0 && n < len(items) {
		items = items[:n]
	}
	return items
}

// Item is one key/count pair of a counter.
type Item[K comparable] struct {
	Key   K
	Count int
}

// --------------------------------------------------------------------------
// Multiset Arithmetic
//
// The keep/drop boundary follows counter (not group) semantics: addition,
// union and intersection discard non-positive results, while subtraction
// is true subtraction and keeps negative counts.
// --------------------------------------------------------------------------

// AddCounter returns a new counter with summed counts over the union of
// keys, dropping keys whose sum is not positive.
func (c *Counter[K]) AddCounter(other *Counter[K]) *Counter[K] {
	out := NewCounter[K]()
	for k, v := range c.d.Items() {
		if n := v + other.Count(k); n > 0 {
			out.Set(k, n)
		}
	}
	for k, v := range other.d.Items() {
		if !c.d.Has(k) && v > 0 {
			out.Set(k, v)
		}
	}
	return out
}

// SubCounter returns a new counter subtracting other's counts over the
// union of keys. Negative results are kept.
func (c *Counter[K]) SubCounter(other *Counter[K]) *Counter[K] {
	out := NewCounter[K]()
	for k, v := range c.d.Items() {
		out.Set(k, v-other.Count(k))
	}
	for k, v := range other.d.Items() {
		if !c.d.Has(k) {
			out.Set(k, -v)
		}
	}
	return out
}

// Intersect returns a new counter keeping the minimum of the two counts,
// only for keys where that minimum is positive. The side with fewer keys
// drives the probe.
func (c *Counter[K]) Intersect(other *Counter[K]) *Counter[K] {
	small, large := c, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	out := NewCounter[K]()
	for k, v := range small.d.Items() {
		if n := min(v, large.Count(k)); n > 0 {
			out.Set(k, n)
		}
	}
	return out
}

// Union returns a new counter keeping the maximum of the two counts,
// dropping keys where that maximum is not positive.
func (c *Counter[K]) Union(other *Counter[K]) *Counter[K] {
	out := NewCounter[K]()
	for k, v := range c.d.Items() {
		if n := max(v, other.Count(k)); n > 0 {
			out.Set(k, n)
		}
	}
	for k, v := range other.d.Items() {
		if !c.d.Has(k) && v > 0 {
			out.Set(k, v)
		}
	}
	return out
}

// Neg returns a new counter with every count negated; equivalent to
// subtracting c from an empty counter, so negative results are kept.
func (c *Counter[K]) Neg() *Counter[K] {
	return NewCounter[K]().SubCounter(c)
}

// --------------------------------------------------------------------------
// Iteration and Display
// --------------------------------------------------------------------------

// Keys iterates distinct keys in first-insertion order.
func (c *Counter[K]) Keys() iter.Seq[K] { return c.d.Keys() }

// Items iterates key/count pairs in first-insertion order.
func (c *Counter[K]) Items() iter.Seq2[K, int] { return c.d.Items() }

// String implements fmt.Stringer, rendering as Counter('a': 3, 'b': 1).
func (c *Counter[K]) String() string {
	var b strings.Builder
	b.WriteString("Counter(")
	first := true
	for k, v := range c.d.Items() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(repr.Repr(k))
		b.WriteString(": ")
		b.WriteString(repr.Repr(v))
	}
	b.WriteString(")")
	return b.String()
}
