package deque

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

const (
	// defaultCapacity is the ring size of a deque created without hints.
	defaultCapacity = 64

	// Unbounded marks a deque without a maximum length.
	Unbounded = -1
)

var (
	// ErrEmpty is returned by Pop, PopLeft and the peek operations on an
	// empty deque.
	ErrEmpty = errors.New("deque: empty")

	// ErrNotFound is returned by Remove when the value is absent.
	ErrNotFound = errors.New("deque: value not found")

	// ErrFull is returned by Insert when the deque is at its maximum length.
	ErrFull = errors.New("deque: maxlen reached")
)

// --------------------------------------------------------------------------
// Type, Config and Constructors
// --------------------------------------------------------------------------

// Deque is a double-ended queue over a power-of-two ring buffer.
type Deque[T any] struct {
	buf        []T
	head, tail uint // free-running; logical length is tail-head
	mask       uint
	maxlen     int // Unbounded when no cap applies
	minCap     int
	shrink     bool
}

// Config carries the construction hints for WithConfig. The zero value
// yields the same deque as New: default capacity, unbounded, auto-shrink on.
type Config struct {
	// Capacity is the initial ring size; rounded up to a power of two.
	// Zero picks a default (64, or one derived from Maxlen).
	Capacity int
	// MinCapacity is the floor below which the ring never shrinks; rounded
	// up to a power of two. Zero picks the initial capacity as the floor
	// when Maxlen is set, 64 otherwise.
	MinCapacity int
	// Maxlen caps the logical length; insertions beyond it evict from the
	// opposite end. Zero or negative means unbounded.
	Maxlen int
	// NoShrink disables the automatic shrink-on-removal check.
	NoShrink bool
}

// New returns an empty unbounded deque with the default capacity.
func New[T any]() *Deque[T] {
	return WithConfig[T](Config{})
}

// Of returns an unbounded deque holding elems in order.
func Of[T any](elems ...T) *Deque[T] {
	d := WithConfig[T](Config{Capacity: len(elems)})
	d.Extend(elems...)
	return d
}

// WithConfig returns an empty deque built from cfg. Panics on negative
// capacity hints; a deliberate construction error is not recoverable.
func WithConfig[T any](cfg Config) *Deque[T] {
	if cfg.Capacity < 0 {
		panic(fmt.Sprintf("deque: negative capacity %d", cfg.Capacity))
	}
	if cfg.MinCapacity < 0 {
		panic(fmt.Sprintf("deque: negative min capacity %d", cfg.MinCapacity))
	}

	maxlen := cfg.Maxlen
	if maxlen <= 0 {
		maxlen = Unbounded
	}

	capacity := cfg.Capacity
	if capacity == 0 {
		if maxlen > 0 {
			// A power-of-two maxlen doubles so tail never collides with
			// head while the deque is full.
			if growth.CeilPow2(maxlen) == maxlen {
				capacity = 2 * maxlen
			} else {
				capacity = growth.CeilPow2(maxlen)
			}
		} else {
			capacity = defaultCapacity
		}
	}
	capacity = growth.CeilPow2(capacity)

	minCap := cfg.MinCapacity
	if minCap == 0 {
		if maxlen > 0 {
			minCap = capacity
		} else {
			minCap = defaultCapacity
		}
	}
	minCap = growth.CeilPow2(minCap)
	if capacity < minCap {
		capacity = minCap
	}

	return &Deque[T]{
		buf:    make([]T, capacity),
		mask:   uint(capacity - 1),
		maxlen: maxlen,
		minCap: minCap,
		shrink: !cfg.NoShrink,
	}
}

// Clone returns a deep copy carrying the same configuration.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{
		buf:    make([]T, len(d.buf)),
		mask:   d.mask,
		maxlen: d.maxlen,
		minCap: d.minCap,
		shrink: d.shrink,
		tail:   uint(d.Len()),
	}
	for i := uint(0); i < c.tail; i++ {
		c.buf[i] = d.buf[(d.head+i)&d.mask]
	}
	return c
}

// Take transfers buffer ownership into a new deque and leaves the source
// valid and empty at its minimum capacity, configuration retained.
func (d *Deque[T]) Take() *Deque[T] {
	moved := &Deque[T]{
		buf: d.buf, head: d.head, tail: d.tail, mask: d.mask,
		maxlen: d.maxlen, minCap: d.minCap, shrink: d.shrink,
	}
	d.buf = make([]T, d.minCap)
	d.mask = uint(d.minCap - 1)
	d.head, d.tail = 0, 0
	return moved
}

// --------------------------------------------------------------------------
// Introspection
// --------------------------------------------------------------------------

// Len returns the number of live elements.
func (d *Deque[T]) Len() int { return int(d.tail - d.head) }

// Cap returns the current ring size.
func (d *Deque[T]) Cap() int { return len(d.buf) }

// Maxlen returns the configured maximum length, or Unbounded.
func (d *Deque[T]) Maxlen() int { return d.maxlen }

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool { return d.head == d.tail }

// --------------------------------------------------------------------------
// Element Access
// --------------------------------------------------------------------------

// At returns the element at logical index i. Negative indices count from
// the back. Out-of-bounds access is a fatal bounds error.
func (d *Deque[T]) At(i int) T {
	return d.buf[(d.head+d.checkBounds(i))&d.mask]
}

// Set overwrites the element at logical index i. Negative indices count
// from the back. Out-of-bounds access is a fatal bounds error.
func (d *Deque[T]) Set(i int, v T) {
	d.buf[(d.head+d.checkBounds(i))&d.mask] = v
}

func (d *Deque[T]) checkBounds(i int) uint {
	idx := i
	if idx < 0 {
		idx += d.Len()
	}
	if idx < 0 || idx >= d.Len() {
		panic(fmt.Sprintf("deque: index %d out of range with length %d", i, d.Len()))
	}
	return uint(idx)
}

// PeekFront returns the first element without removing it.
func (d *Deque[T]) PeekFront() (T, error) {
	if d.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return d.buf[d.head&d.mask], nil
}

// PeekBack returns the last element without removing it.
func (d *Deque[T]) PeekBack() (T, error) {
	if d.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return d.buf[(d.tail-1)&d.mask], nil
}

// --------------------------------------------------------------------------
// Append / Prepend
// --------------------------------------------------------------------------

// Append adds v at the back. At maxlen the oldest element (front) is
// evicted first, keeping the length constant. Amortized O(1).
func (d *Deque[T]) Append(v T) {
	if d.maxlen >= 0 && d.Len() == d.maxlen {
		d.evictFront()
	}
	d.growIfFull()
	d.buf[d.tail&d.mask] = v
	d.tail++
}

// AppendLeft adds v at the front. At maxlen the element at the back is
// evicted first. Amortized O(1).
func (d *Deque[T]) AppendLeft(v T) {
	if d.maxlen >= 0 && d.Len() == d.maxlen {
		d.evictBack()
	}
	d.growIfFull()
	d.head--
	d.buf[d.head&d.mask] = v
}

// Extend appends every element of elems in order. With a maxlen shorter
// than the input only the last maxlen input elements survive.
func (d *Deque[T]) Extend(elems ...T) {
	for _, v := range elems {
		d.Append(v)
	}
}

// ExtendLeft prepends the elements one by one, which reverses their order
// relative to the input: ExtendLeft(1, 2, 3) leaves 3, 2, 1 at the front.
func (d *Deque[T]) ExtendLeft(elems ...T) {
	for _, v := range elems {
		d.AppendLeft(v)
	}
}

func (d *Deque[T]) evictFront() {
	var zero T
	d.buf[d.head&d.mask] = zero
	d.head++
}

func (d *Deque[T]) evictBack() {
	var zero T
	d.tail--
	d.buf[d.tail&d.mask] = zero
}

// --------------------------------------------------------------------------
// Pop / Remove
// --------------------------------------------------------------------------

// Pop removes and returns the last element. Returns ErrEmpty on an empty
// deque. Runs the shrink check when auto-shrink is enabled. O(1).
func (d *Deque[T]) Pop() (T, error) {
	var zero T
	if d.Empty() {
		return zero, ErrEmpty
	}
	d.tail--
	i := d.tail & d.mask
	v := d.buf[i]
	d.buf[i] = zero
	d.maybeShrink()
	return v, nil
}

// PopLeft removes and returns the first element. Returns ErrEmpty on an
// empty deque. Runs the shrink check when auto-shrink is enabled. O(1).
func (d *Deque[T]) PopLeft() (T, error) {
	var zero T
	if d.Empty() {
		return zero, ErrEmpty
	}
	i := d.head & d.mask
	v := d.buf[i]
	d.buf[i] = zero
	d.head++
	d.maybeShrink()
	return v, nil
}

// Remove deletes the first occurrence of v in logical order, shifting the
// cheaper side to close the gap. Returns ErrNotFound when absent.
//
// Remove is a free function rather than a method so that Deque itself is
// not constrained to comparable elements.
func Remove[T comparable](d *Deque[T], v T) error {
	n := d.Len()
	for i := 0; i < n; i++ {
		if d.buf[(d.head+uint(i))&d.mask] == v {
			d.removeAt(i)
			return nil
		}
	}
	return ErrNotFound
}

// removeAt closes the gap at logical index i by shifting whichever side is
// shorter, then runs the shrink check.
func (d *Deque[T]) removeAt(i int) {
	var zero T
	n := d.Len()
	if i < n/2 {
		// Shift the prefix right by one.
		for j := uint(i); j > 0; j-- {
			d.buf[(d.head+j)&d.mask] = d.buf[(d.head+j-1)&d.mask]
		}
		d.buf[d.head&d.mask] = zero
		d.head++
	} else {
		// Shift the suffix left by one.
		for j := uint(i); j < uint(n-1); j++ {
			d.buf[(d.head+j)&d.mask] = d.buf[(d.head+j+1)&d.mask]
		}
		d.tail--
		d.buf[d.tail&d.mask] = zero
	}
	d.maybeShrink()
}

// --------------------------------------------------------------------------
// Insert
// --------------------------------------------------------------------------

// Insert places v at logical position i. Negative indices count from the
// back; out-of-range positions clamp to the nearest end. The shorter side
// is shifted, so cost is O(min(i, len-i)). Returns ErrFull when the deque
// is at maxlen.
func (d *Deque[T]) Insert(i int, v T) error {
	n := d.Len()
	if d.maxlen >= 0 && n == d.maxlen {
		return ErrFull
	}
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 {
		idx = 0
	}
	if idx > n {
		idx = n
	}
	d.growIfFull()
	if idx < n/2 {
		// Open the gap by moving the prefix left.
		d.head--
		for j := uint(0); j < uint(idx); j++ {
			d.buf[(d.head+j)&d.mask] = d.buf[(d.head+j+1)&d.mask]
		}
	} else {
		// Open the gap by moving the suffix right.
		for j := uint(n); j > uint(idx); j-- {
			d.buf[(d.head+j)&d.mask] = d.buf[(d.head+j-1)&d.mask]
		}
		d.tail++
	}
	d.buf[(d.head+uint(idx))&d.mask] = v
	return nil
}

// --------------------------------------------------------------------------
// Rotate
// --------------------------------------------------------------------------

// Rotate rotates the deque n steps to the right (negative n rotates left)
// purely by stepping the cursors, moving one boundary element per step.
// Cost is O(min(|n| mod len, len)).
func (d *Deque[T]) Rotate(n int) {
	length := d.Len()
	if length <= 1 {
		return
	}
	n %= length
	if n < 0 {
		n += length
	}
	if n == 0 {
		return
	}
	if n > length/2 {
		n -= length // rotating left is cheaper
	}
	var zero T
	for ; n > 0; n-- { // right: back to front
		v := d.buf[(d.tail-1)&d.mask]
		d.tail--
		d.head--
		if (d.tail & d.mask) != (d.head & d.mask) {
			d.buf[d.tail&d.mask] = zero
		}
		d.buf[d.head&d.mask] = v
	}
	for ; n < 0; n++ { // left: front to back
		v := d.buf[d.head&d.mask]
		d.head++
		d.tail++
		if ((d.head - 1) & d.mask) != ((d.tail - 1) & d.mask) {
			d.buf[(d.head-1)&d.mask] = zero
		}
		d.buf[(d.tail-1)&d.mask] = v
	}
}

// --------------------------------------------------------------------------
// Concatenation and Repetition
// --------------------------------------------------------------------------

// Concat returns a new deque holding the elements of d followed by those of
// other. The result inherits d's configuration; if the combined length
// exceeds d's maxlen, excess is trimmed from the front regardless of which
// operand contributed it.
func (d *Deque[T]) Concat(other *Deque[T]) *Deque[T] {
	out := d.Clone()
	out.ConcatInPlace(other)
	return out
}

// ConcatInPlace appends every element of other to d, applying d's maxlen
// eviction. Appending a deque to itself is supported.
func (d *Deque[T]) ConcatInPlace(other *Deque[T]) {
	// Snapshot the source: appends may evict from or resize the very ring
	// being read when other aliases d.
	elems := make([]T, other.Len())
	for i := range elems {
		elems[i] = other.buf[(other.head+uint(i))&other.mask]
	}
	for _, v := range elems {
		d.Append(v)
	}
}

// Repeat returns a new deque with d's configuration holding n concatenated
// copies of d. Panics if n is negative; n == 0 yields an empty deque reset
// to its minimum capacity.
func (d *Deque[T]) Repeat(n int) *Deque[T] {
	if n < 0 {
		panic(fmt.Sprintf("deque: negative repetition count %d", n))
	}
	out := WithConfig[T](Config{
		Capacity:    d.minCap,
		MinCapacity: d.minCap,
		Maxlen:      d.maxlen,
		NoShrink:    !d.shrink,
	})
	for i := 0; i < n; i++ {
		out.ConcatInPlace(d)
	}
	return out
}

// --------------------------------------------------------------------------
// Search
// --------------------------------------------------------------------------

// Contains reports whether v occurs in the deque.
func Contains[T comparable](d *Deque[T], v T) bool {
	n := d.Len()
	for i := 0; i < n; i++ {
		if d.buf[(d.head+uint(i))&d.mask] == v {
			return true
		}
	}
	return false
}

// Count returns the number of occurrences of v.
func Count[T comparable](d *Deque[T], v T) int {
	c := 0
	n := d.Len()
	for i := 0; i < n; i++ {
		if d.buf[(d.head+uint(i))&d.mask] == v {
			c++
		}
	}
	return c
}

// --------------------------------------------------------------------------
// Sizing
// --------------------------------------------------------------------------

// growIfFull doubles the ring before an insertion that would not fit,
// unwrapping the contents into linear order starting at index zero.
func (d *Deque[T]) growIfFull() {
	if d.Len() < len(d.buf) {
		return
	}
	d.resize(growth.Next(len(d.buf), d.Len()+1))
}

// maybeShrink halves the ring once usage drops to a quarter of capacity,
// but never below the minimum capacity and only when auto-shrink is on.
func (d *Deque[T]) maybeShrink() {
	if !d.shrink {
		return
	}
	newCap, ok := growth.Shrink(d.Len(), len(d.buf), d.minCap)
	if !ok {
		return
	}
	d.resize(newCap)
}

// resize reallocates the ring to newCap (a power of two >= Len) and
// unwraps the contents to start at index zero.
func (d *Deque[T]) resize(newCap int) {
	length := uint(d.Len())
	next := make([]T, newCap)
	for i := uint(0); i < length; i++ {
		next[i] = d.buf[(d.head+i)&d.mask]
	}
	d.buf = next
	d.mask = uint(newCap - 1)
	d.head = 0
	d.tail = length
}

// Clear removes every element in O(n) (element slots are released for the
// garbage collector), keeping the current capacity.
func (d *Deque[T]) Clear() {
	var zero T
	for i := d.head; i != d.tail; i++ {
		d.buf[i&d.mask] = zero
	}
	d.head, d.tail = 0, 0
}

// --------------------------------------------------------------------------
// Iteration and Display
// --------------------------------------------------------------------------

// Values iterates front to back. The iterator borrows the live ring:
// mutating the deque during iteration is the caller's responsibility to
// avoid.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := d.Len()
		for i := 0; i < n; i++ {
			if !yield(d.buf[(d.head+uint(i))&d.mask]) {
				return
			}
		}
	}
}

// String implements fmt.Stringer, rendering as Deque(e1, e2, e3) with
// elements individually repr'd.
func (d *Deque[T]) String() string {
	elems := make([]T, 0, d.Len())
	for v := range d.Values() {
		elems = append(elems, v)
	}
	return "Deque(" + repr.Join(elems) + ")"
}
