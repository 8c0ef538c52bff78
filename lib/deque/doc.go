// Package deque implements Deque, a generic double-ended queue over a
// power-of-two ring buffer.
//
// The buffer is addressed through two free-running cursors, head and tail,
// masked into the buffer on every access. Logical length is tail-head, so an
// empty ring and a completely full one are always distinguishable without a
// sacrificial slot. Growth unwraps the ring into a fresh linear buffer
// starting at index zero; shrinking (optional, on by default) halves the
// buffer once usage drops to a quarter of capacity, never below the
// configured minimum capacity.
//
// A deque may carry a maximum length. Once at maxlen, inserting at one end
// evicts the element at the opposite end, so append drops the oldest element
// and AppendLeft drops the newest-at-the-back. When maxlen is itself a power
// of two the ring allocates twice that, keeping capacity strictly above the
// logical length at all times.
//
// Index conventions match package list: accessors take negative indices,
// Insert clamps out-of-range positions, and out-of-bounds At/Set is a fatal
// bounds error.
//
// Thread-safety: a Deque is an unsynchronized value type. Concurrent use of
// a single instance requires external synchronization.
package deque
