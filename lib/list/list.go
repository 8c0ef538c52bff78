package list

import (
	"errors"
	"fmt"
	"iter"

	"github.com/gollections/gollections/lib/growth"
	"github.com/gollections/gollections/lib/internal/repr"
)

// --------------------------------------------------------------------------
// Constants and Errors
// --------------------------------------------------------------------------

// smallBufferSize is the inline capacity of every List. It doubles as the
// floor below which a heap-backed list never shrinks.
const smallBufferSize = 4

var (
	// ErrEmpty is returned by Pop on an empty list.
	ErrEmpty = errors.New("list: pop from empty list")

	// ErrNotFound is returned by Index when the value is absent within the
	// searched bounds.
	ErrNotFound = errors.New("list: value not found")

	// ErrIndexRange is returned by Index when the start bound itself lies
	// beyond the current length, and by Pop for an out-of-range index. This
	// is a usage error, distinct from ErrNotFound.
	ErrIndexRange = errors.New("list: index out of range")
)

// --------------------------------------------------------------------------
// Type and Constructors
// --------------------------------------------------------------------------

// List is a contiguous, owning, resizable sequence. The zero value is an
// empty list using its inline buffer.
type List[T any] struct {
	inline  [smallBufferSize]T
	heap    []T // nil until the list spills to the heap
	size    int
	spilled bool
}

// New returns an empty list backed by its inline buffer.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding elems in order.
func Of[T any](elems ...T) *List[T] {
	l := &List[T]{}
	l.Extend(elems...)
	return l
}

// WithCapacity returns an empty heap-backed list with exactly the given
// capacity. Panics if n is negative.
func WithCapacity[T any](n int) *List[T] {
	if n < 0 {
		panic(fmt.Sprintf("list: negative capacity %d", n))
	}
	return &List[T]{heap: make([]T, n), spilled: true}
}

// Clone returns a deep copy of the list. The copy owns its own buffer and
// uses inline storage when the source does.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{size: l.size, spilled: l.spilled}
	if l.spilled {
		c.heap = make([]T, len(l.heap))
		copy(c.heap, l.heap[:l.size])
	} else {
		copy(c.inline[:], l.inline[:l.size])
	}
	return c
}

// Take transfers ownership of the backing buffer into a new list and leaves
// the source valid and empty (inline mode, zero capacity beyond inline).
func (l *List[T]) Take() *List[T] {
	moved := &List[T]{inline: l.inline, heap: l.heap, size: l.size, spilled: l.spilled}
	*l = List[T]{}
	return moved
}

// --------------------------------------------------------------------------
// Introspection
// --------------------------------------------------------------------------

// Len returns the number of live elements.
func (l *List[T]) Len() int { return l.size }

// Cap returns the number of allocated slots (inline or heap).
func (l *List[T]) Cap() int {
	if l.spilled {
		return len(l.heap)
	}
	return smallBufferSize
}

// Spilled reports whether the list has migrated to heap storage.
func (l *List[T]) Spilled() bool { return l.spilled }

// buf returns the active backing storage, full capacity.
func (l *List[T]) buf() []T {
	if l.spilled {
		return l.heap
	}
	return l.inline[:]
}

// --------------------------------------------------------------------------
// Element Access
// --------------------------------------------------------------------------

// At returns the element at index i. Negative indices count from the end
// (-1 is the last element). Out-of-bounds access is a fatal bounds error.
func (l *List[T]) At(i int) T {
	return l.buf()[l.checkBounds(i)]
}

// Set overwrites the element at index i. Negative indices count from the
// end. Out-of-bounds access is a fatal bounds error.
func (l *List[T]) Set(i int, v T) {
	l.buf()[l.checkBounds(i)] = v
}

// checkBounds normalizes a possibly-negative index and panics when it does
// not address a live element.
func (l *List[T]) checkBounds(i int) int {
	idx := i
	if idx < 0 {
		idx += l.size
	}
	if idx < 0 || idx >= l.size {
		panic(fmt.Sprintf("list: index %d out of range with length %d", i, l.size))
	}
	return idx
}

// --------------------------------------------------------------------------
// Mutation
// --------------------------------------------------------------------------

// Append adds v at the end, growing per the shared policy when full.
// Amortized O(1).
func (l *List[T]) Append(v T) {
	if l.size == l.Cap() {
		l.grow(l.size + 1)
	}
	l.buf()[l.size] = v
	l.size++
}

// Extend appends every element of elems in order, growing at most once.
func (l *List[T]) Extend(elems ...T) {
	if need := l.size + len(elems); need > l.Cap() {
		l.grow(need)
	}
	copy(l.buf()[l.size:], elems)
	l.size += len(elems)
}

// Insert places v at position i, shifting later elements one slot right.
// Negative indices count from the end; out-of-range indices clamp to
// [0, Len()] instead of failing. O(n).
func (l *List[T]) Insert(i int, v T) {
	idx := i
	if idx < 0 {
		idx += l.size
	}
	if idx < 0 {
		idx = 0
	}
	if idx > l.size {
		idx = l.size
	}
	if l.size == l.Cap() {
		l.grow(l.size + 1)
	}
	b := l.buf()
	copy(b[idx+1:l.size+1], b[idx:l.size])
	b[idx] = v
	l.size++
}

// Pop removes and returns the element at the given index (default: last).
// Returns ErrEmpty on an empty list and ErrIndexRange when the index does
// not address a live element. Triggers a shrink check after removal.
func (l *List[T]) Pop(index ...int) (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrEmpty
	}
	idx := l.size - 1
	if len(index) > 0 {
		idx = index[0]
		if idx < 0 {
			idx += l.size
		}
		if idx < 0 || idx >= l.size {
			return zero, fmt.Errorf("%w: %d with length %d", ErrIndexRange, index[0], l.size)
		}
	}
	b := l.buf()
	v := b[idx]
	copy(b[idx:l.size-1], b[idx+1:l.size])
	l.size--
	b[l.size] = zero // release the vacated slot
	l.maybeShrink()
	return v, nil
}

// Clear removes every element, releasing element references but keeping the
// current buffer.
func (l *List[T]) Clear() {
	var zero T
	b := l.buf()
	for i := 0; i < l.size; i++ {
		b[i] = zero
	}
	l.size = 0
}

// Reverse reverses the list in place.
func (l *List[T]) Reverse() {
	b := l.buf()
	for i, j := 0, l.size-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// --------------------------------------------------------------------------
// Growth and Shrink
// --------------------------------------------------------------------------

// grow reallocates to the policy capacity for the required minimum and
// migrates inline storage to the heap. A spilled list never returns to the
// inline buffer.
func (l *List[T]) grow(required int) {
	newCap := growth.Next(l.Cap(), required)
	next := make([]T, newCap)
	copy(next, l.buf()[:l.size])
	l.heap = next
	l.spilled = true
}

// maybeShrink reallocates to a smaller heap buffer when usage has dropped
// to a quarter of capacity. The inline buffer is the floor; the list stays
// spilled regardless.
func (l *List[T]) maybeShrink() {
	if !l.spilled {
		return
	}
	newCap, ok := growth.Shrink(l.size, len(l.heap), smallBufferSize)
	if !ok {
		return
	}
	next := make([]T, newCap)
	copy(next, l.heap[:l.size])
	l.heap = next
}

// --------------------------------------------------------------------------
// Search
// --------------------------------------------------------------------------

// Index returns the position of the first occurrence of v within the
// optional [start, stop) bounds. Bounds follow slice normalization:
// negative values count from the end and out-of-range values clamp - except
// that a start beyond the current length is reported as ErrIndexRange, a
// usage error distinct from ErrNotFound.
//
// Index is a free function rather than a method so that List itself is not
// constrained to comparable elements.
func Index[T comparable](l *List[T], v T, bounds ...int) (int, error) {
	start, stop := 0, l.size
	if len(bounds) > 0 {
		start = bounds[0]
		if start < 0 {
			start += l.size
			if start < 0 {
				start = 0
			}
		} else if start > l.size {
			return 0, fmt.Errorf("%w: start %d with length %d", ErrIndexRange, bounds[0], l.size)
		}
	}
	if len(bounds) > 1 {
		stop = bounds[1]
		if stop < 0 {
			stop += l.size
		}
		if stop > l.size {
			stop = l.size
		}
	}
	b := l.buf()
	for i := start; i < stop; i++ {
		if b[i] == v {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

// Contains reports whether v occurs in the list.
func Contains[T comparable](l *List[T], v T) bool {
	_, err := Index(l, v)
	return err == nil
}

// Count returns the number of occurrences of v.
func Count[T comparable](l *List[T], v T) int {
	n := 0
	b := l.buf()
	for i := 0; i < l.size; i++ {
		if b[i] == v {
			n++
		}
	}
	return n
}

// --------------------------------------------------------------------------
// Slicing, Concatenation, Repetition
// --------------------------------------------------------------------------

// Slice returns a new owned list holding the elements selected by the
// half-open [start, stop) range with the given step. Negative indices count
// from the end, out-of-range bounds clamp, and a negative step iterates in
// reverse. Panics if step is zero.
func (l *List[T]) Slice(start, stop, step int) *List[T] {
	if step == 0 {
		panic("list: slice step cannot be zero")
	}
	lo, hi := normalizeSlice(start, stop, step, l.size)
	out := New[T]()
	b := l.buf()
	if step > 0 {
		for i := lo; i < hi; i += step {
			out.Append(b[i])
		}
	} else {
		for i := lo; i > hi; i += step {
			out.Append(b[i])
		}
	}
	return out
}

// normalizeSlice maps python slice bounds onto [0, size]. For a negative
// step the returned hi is exclusive on the low side (may be -1).
func normalizeSlice(start, stop, step, size int) (int, int) {
	if start < 0 {
		start += size
	}
	if stop < 0 {
		stop += size
	}
	if step > 0 {
		if start < 0 {
			start = 0
		}
		if start > size {
			start = size
		}
		if stop < 0 {
			stop = 0
		}
		if stop > size {
			stop = size
		}
	} else {
		if start > size-1 {
			start = size - 1
		}
		if start < 0 {
			start = -1
		}
		if stop > size-1 {
			stop = size - 1
		}
		if stop < 0 {
			stop = -1
		}
	}
	return start, stop
}

// Concat returns a new list holding the elements of l followed by those of
// other. Neither operand is modified.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	out := WithCapacity[T](max(l.size+other.size, smallBufferSize))
	out.Extend(l.buf()[:l.size]...)
	out.Extend(other.buf()[:other.size]...)
	return out
}

// Repeat returns a new list holding n concatenated copies of l. Panics if
// n is negative; n == 0 yields an empty list.
func (l *List[T]) Repeat(n int) *List[T] {
	if n < 0 {
		panic(fmt.Sprintf("list: negative repetition count %d", n))
	}
	out := New[T]()
	for i := 0; i < n; i++ {
		out.Extend(l.buf()[:l.size]...)
	}
	return out
}

// --------------------------------------------------------------------------
// Iteration and Display
// --------------------------------------------------------------------------

// Values iterates over the elements in order. The iterator borrows the live
// buffer: mutating the list during iteration is the caller's responsibility
// to avoid.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		b := l.buf()
		for i := 0; i < l.size; i++ {
			if !yield(b[i]) {
				return
			}
		}
	}
}

// String implements fmt.Stringer, rendering as List(e1, e2, e3) with
// elements individually repr'd.
func (l *List[T]) String() string {
	return "List(" + repr.Join(l.buf()[:l.size]) + ")"
}
