package dict

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/gollections/gollections/lib/growth"
	"github.com/gollections/gollections/lib/internal/repr"
	"github.com/gollections/gollections/lib/option"
)

// --------------------------------------------------------------------------
// Constants and Errors
// --------------------------------------------------------------------------

const (
	// slotEmpty marks an index slot that has never held an entry; reaching
	// one terminates a probe sequence.
	slotEmpty = -1
	// slotDeleted is a tombstone: the slot held an entry that was removed.
	// Probes skip it, and inserts may reuse it.
	slotDeleted = -2

	// initialIndexCapacity is the index size of a fresh table.
	initialIndexCapacity = 8
)

// ErrKeyNotFound is the sentinel wrapped by every KeyError.
var ErrKeyNotFound = errors.New("dict: key not found")

// KeyError reports a lookup of an absent key, carrying the key itself.
type KeyError[K comparable] struct {
	Key K
}

func (e *KeyError[K]) Error() string {
	return fmt.Sprintf("dict: key not found: %s", repr.Repr(e.Key))
}

func (e *KeyError[K]) Unwrap() error { return ErrKeyNotFound }

// --------------------------------------------------------------------------
// Type and Constructors
// --------------------------------------------------------------------------

// entry is one slot of the dense, insertion-ordered backing array.
type entry[K comparable, V any] struct {
	key   K
	value V
	hash  uint64
	live  bool
}

// Dict is a generic hash table preserving first-insertion iteration order.
type Dict[K comparable, V any] struct {
	index   []int32 // power-of-two probed array of entry positions
	entries []entry[K, V]
	count   int // live entries
	deleted int // tombstones in index
	scan    int // first possibly-live entry, advanced lazily by PopItem
	hasher  Hasher[K]
}

// New returns an empty dict using a per-instance seeded default hasher.
func New[K comparable, V any]() *Dict[K, V] {
	return NewWithHasher[K, V](defaultHasher[K]())
}

// NewWithHasher returns an empty dict hashing keys with h.
func NewWithHasher[K comparable, V any](h Hasher[K]) *Dict[K, V] {
	return &Dict[K, V]{
		index:  newIndex(initialIndexCapacity),
		hasher: h,
	}
}

// Pair is one key/value pair, used by the variadic constructor.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Of returns a dict holding pairs, insertion order following their first
// occurrence. A repeated key overwrites in place.
func Of[K comparable, V any](pairs ...Pair[K, V]) *Dict[K, V] {
	d := WithCapacity[K, V](len(pairs))
	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}
	return d
}

// WithCapacity returns an empty dict pre-sized so n insertions trigger no
// rebuild. Panics on negative n.
func WithCapacity[K comparable, V any](n int) *Dict[K, V] {
	if n < 0 {
		panic(fmt.Sprintf("dict: negative capacity %d", n))
	}
	// Index stays under 2/3 load at n live entries.
	indexCap := growth.CeilPow2(n*3/2 + 1)
	if indexCap < initialIndexCapacity {
		indexCap = initialIndexCapacity
	}
	return &Dict[K, V]{
		index:   newIndex(indexCap),
		entries: make([]entry[K, V], 0, n),
		hasher:  defaultHasher[K](),
	}
}

func newIndex(capacity int) []int32 {
	idx := make([]int32, capacity)
	for i := range idx {
		idx[i] = slotEmpty
	}
	return idx
}

// Clone returns a deep copy sharing the hasher (hash values are cached per
// entry, so the copy probes identically).
func (d *Dict[K, V]) Clone() *Dict[K, V] {
	c := &Dict[K, V]{
		index:   make([]int32, len(d.index)),
		entries: make([]entry[K, V], len(d.entries)),
		count:   d.count,
		deleted: d.deleted,
		scan:    d.scan,
		hasher:  d.hasher,
	}
	copy(c.index, d.index)
	copy(c.entries, d.entries)
	return c
}

// Take moves the contents into a new dict, leaving d valid and empty.
func (d *Dict[K, V]) Take() *Dict[K, V] {
	out := &Dict[K, V]{
		index:   d.index,
		entries: d.entries,
		count:   d.count,
		deleted: d.deleted,
		scan:    d.scan,
		hasher:  d.hasher,
	}
	d.index = newIndex(initialIndexCapacity)
	d.entries = nil
	d.count = 0
	d.deleted = 0
	d.scan = 0
	return out
}

// --------------------------------------------------------------------------
// Introspection
// --------------------------------------------------------------------------

// Len returns the number of live entries.
func (d *Dict[K, V]) Len() int { return d.count }

// Has reports whether k is present.
func (d *Dict[K, V]) Has(k K) bool {
	_, ok := d.lookup(k)
	return ok
}

// --------------------------------------------------------------------------
// Lookup
// --------------------------------------------------------------------------

// lookup returns the index-array position of k's slot and whether k is
// present. Tombstones are skipped, never treated as terminating the probe.
func (d *Dict[K, V]) lookup(k K) (int, bool) {
	h := d.hasher(k)
	mask := uint64(len(d.index) - 1)
	for i := h & mask; ; i = (i + 1) & mask {
		s := d.index[i]
		if s == slotEmpty {
			return 0, false
		}
		if s == slotDeleted {
			continue
		}
		if e := &d.entries[s]; e.hash == h && e.key == k {
			return int(i), true
		}
	}
}

// Get returns the value for k and whether it is present.
func (d *Dict[K, V]) Get(k K) (V, bool) {
	if slot, ok := d.lookup(k); ok {
		return d.entries[d.index[slot]].value, true
	}
	var zero V
	return zero, false
}

// Find returns the value for k as an Optional.
func (d *Dict[K, V]) Find(k K) option.Optional[V] {
	if v, ok := d.Get(k); ok {
		return option.Some(v)
	}
	return option.None[V]()
}

// Lookup returns the value for k as a Result whose error state carries a
// KeyError naming the missing key.
func (d *Dict[K, V]) Lookup(k K) option.Result[V] {
	if v, ok := d.Get(k); ok {
		return option.Ok(v)
	}
	return option.Err[V](&KeyError[K]{Key: k})
}

// GetDefault returns the value for k, or def when absent.
func (d *Dict[K, V]) GetDefault(k K, def V) V {
	if v, ok := d.Get(k); ok {
		return v
	}
	return def
}

// --------------------------------------------------------------------------
// Mutation
// --------------------------------------------------------------------------

// Set inserts or updates the value for k. An existing key is overwritten
// in place and keeps its original insertion position; a new key is
// appended to the iteration order. Amortized O(1).
func (d *Dict[K, V]) Set(k K, v V) {
	d.maybeRebuild(1)

	h := d.hasher(k)
	mask := uint64(len(d.index) - 1)
	tombstone := -1
	for i := h & mask; ; i = (i + 1) & mask {
		s := d.index[i]
		switch {
		case s == slotEmpty:
			pos := i
			if tombstone >= 0 {
				pos = uint64(tombstone)
				d.deleted--
			}
			d.index[pos] = int32(len(d.entries))
			d.entries = append(d.entries, entry[K, V]{key: k, value: v, hash: h, live: true})
			d.count++
			return
		case s == slotDeleted:
			if tombstone < 0 {
				tombstone = int(i)
			}
		default:
			if e := &d.entries[s]; e.hash == h && e.key == k {
				e.value = v
				return
			}
		}
	}
}

// Pop removes k and returns its value. Returns a KeyError when absent.
func (d *Dict[K, V]) Pop(k K) (V, error) {
	slot, ok := d.lookup(k)
	if !ok {
		var zero V
		return zero, &KeyError[K]{Key: k}
	}
	return d.removeSlot(slot), nil
}

// PopDefault removes k and returns its value, or def when absent.
func (d *Dict[K, V]) PopDefault(k K, def V) V {
	slot, ok := d.lookup(k)
	if !ok {
		return def
	}
	return d.removeSlot(slot)
}

// Delete removes k if present and reports whether it was.
func (d *Dict[K, V]) Delete(k K) bool {
	slot, ok := d.lookup(k)
	if ok {
		d.removeSlot(slot)
	}
	return ok
}

// PopItem removes and returns the oldest live entry (first-inserted).
// Returns a wrapped ErrKeyNotFound when the dict is empty.
func (d *Dict[K, V]) PopItem() (K, V, error) {
	for d.scan < len(d.entries) {
		if !d.entries[d.scan].live {
			d.scan++
			continue
		}
		e := d.entries[d.scan]
		slot, ok := d.lookup(e.key)
		if !ok {
			panic("dict: live entry missing from index")
		}
		v := d.removeSlot(slot)
		return e.key, v, nil
	}
	var zk K
	var zv V
	return zk, zv, fmt.Errorf("%w: pop from empty dict", ErrKeyNotFound)
}

// removeSlot tombstones the index slot, marks the entry dead, and triggers
// a compacting rebuild once tombstones pass their threshold.
func (d *Dict[K, V]) removeSlot(slot int) V {
	pos := d.index[slot]
	e := &d.entries[pos]
	v := e.value
	var zeroEntry entry[K, V]
	zeroEntry.hash = e.hash
	*e = zeroEntry // release key and value references; keeps live == false

	d.index[slot] = slotDeleted
	d.count--
	d.deleted++
	d.maybeRebuild(0)
	return v
}

// Clear removes every entry, resetting to the initial index capacity.
func (d *Dict[K, V]) Clear() {
	d.index = newIndex(initialIndexCapacity)
	d.entries = nil
	d.count = 0
	d.deleted = 0
	d.scan = 0
}

// --------------------------------------------------------------------------
// Rebuild
// --------------------------------------------------------------------------

// maybeRebuild rehashes when the upcoming insertion would push combined
// load (live + tombstones) past 2/3 of the index, or when tombstones alone
// exceed a quarter of it. The index doubles only when live entries need
// the room; otherwise the rebuild is a same-size compaction dropping
// tombstones and dead entries.
func (d *Dict[K, V]) maybeRebuild(incoming int) {
	indexCap := len(d.index)
	load := d.count + d.deleted + incoming
	if load*3 <= indexCap*2 && d.deleted*4 <= indexCap {
		return
	}
	newCap := indexCap
	if (d.count+incoming)*3 > indexCap*2 {
		newCap = growth.CeilPow2(growth.Next(indexCap, indexCap+1))
	}
	d.rebuild(newCap)
}

// rebuild reindexes all live entries into a fresh index of the given
// capacity, compacting the entries array and dropping tombstones.
// Insertion order is preserved.
func (d *Dict[K, V]) rebuild(newCap int) {
	compacted := make([]entry[K, V], 0, d.count)
	for _, e := range d.entries {
		if e.live {
			compacted = append(compacted, e)
		}
	}
	idx := newIndex(newCap)
	mask := uint64(newCap - 1)
	for pos := range compacted {
		i := compacted[pos].hash & mask
		for idx[i] != slotEmpty {
			i = (i + 1) & mask
		}
		idx[i] = int32(pos)
	}
	d.index = idx
	d.entries = compacted
	d.deleted = 0
	d.scan = 0
}

// --------------------------------------------------------------------------
// Iteration and Display
// --------------------------------------------------------------------------

// Keys iterates live keys in first-insertion order. Iterators borrow the
// live table: mutating the dict during iteration is the caller's
// responsibility to avoid.
func (d *Dict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range d.entries {
			if d.entries[i].live && !yield(d.entries[i].key) {
				return
			}
		}
	}
}

// Values iterates live values in first-insertion order of their keys.
func (d *Dict[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range d.entries {
			if d.entries[i].live && !yield(d.entries[i].value) {
				return
			}
		}
	}
}

// Items iterates live key/value pairs in first-insertion order.
func (d *Dict[K, V]) Items() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range d.entries {
			if d.entries[i].live && !yield(d.entries[i].key, d.entries[i].value) {
				return
			}
		}
	}
}

// Range calls f for every live pair in first-insertion order until f
// returns false.
func (d *Dict[K, V]) Range(f func(K, V) bool) {
	for k, v := range d.Items() {
		if !f(k, v) {
			return
		}
	}
}

// String implements fmt.Stringer, rendering as Dict('a': 1, 'b': 2).
func (d *Dict[K, V]) String() string {
	var b strings.Builder
	b.WriteString("Dict(")
	first := true
	for k, v := range d.Items() {
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
