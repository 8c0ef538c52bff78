package dict

import (
	"fmt"
	"iter"

	"github.com/gollections/gollections/lib/internal/repr"
)

// Set is an insertion-ordered set of keys, a thin policy layer over
// Dict[K, struct{}] exposing only key operations plus the set algebra.
type Set[K comparable] struct {
	d *Dict[K, struct{}]
}

// NewSet returns an empty set.
func NewSet[K comparable]() *Set[K] {
	return &Set[K]{d: New[K, struct{}]()}
}

// SetOf returns a set holding elems, insertion order following their first
// occurrence.
func SetOf[K comparable](elems ...K) *Set[K] {
	s := NewSet[K]()
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Clone returns a deep copy.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{d: s.d.Clone()}
}

// Take moves the contents into a new set, leaving s valid and empty.
func (s *Set[K]) Take() *Set[K] {
	return &Set[K]{d: s.d.Take()}
}

// Len returns the number of elements.
func (s *Set[K]) Len() int { return s.d.Len() }

// Add inserts k; adding a present element keeps its original position.
func (s *Set[K]) Add(k K) { s.d.Set(k, struct{}{}) }

// Contains reports whether k is in the set.
func (s *Set[K]) Contains(k K) bool { return s.d.Has(k) }

// Discard removes k if present and reports whether it was.
func (s *Set[K]) Discard(k K) bool { return s.d.Delete(k) }

// Remove removes k, returning a KeyError when absent.
func (s *Set[K]) Remove(k K) error {
	if !s.d.Delete(k) {
		return &KeyError[K]{Key: k}
	}
	return nil
}

// Pop removes and returns the earliest-inserted element. The order is part
// of the contract: repeated pops drain the set oldest-first. Returns a
// wrapped ErrKeyNotFound when empty.
func (s *Set[K]) Pop() (K, error) {
	k, _, err := s.d.PopItem()
	if err != nil {
		var zero K
		return zero, fmt.Errorf("%w: pop from empty set", ErrKeyNotFound)
	}
	return k, nil
}

// Clear removes every element.
func (s *Set[K]) Clear() { s.d.Clear() }

// --------------------------------------------------------------------------
// Algebra
// --------------------------------------------------------------------------

// Union returns a new set with every element of s followed by the elements
// of other not already present.
func (s *Set[K]) Union(other *Set[K]) *Set[K] {
	out := s.Clone()
	for k := range other.Values() {
		out.Add(k)
	}
	return out
}

// Intersection returns a new set with the elements present in both,
// probing the larger side with the smaller for efficiency. Order follows
// the smaller set's insertion order.
func (s *Set[K]) Intersection(other *Set[K]) *Set[K] {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	out := NewSet[K]()
	for k := range small.Values() {
		if large.Contains(k) {
			out.Add(k)
		}
	}
	return out
}

// Difference returns a new set with the elements of s absent from other.
func (s *Set[K]) Difference(other *Set[K]) *Set[K] {
	out := NewSet[K]()
	for k := range s.Values() {
		if !other.Contains(k) {
			out.Add(k)
		}
	}
	return out
}

// SymmetricDifference returns a new set with the elements in exactly one
// of the two sets.
func (s *Set[K]) SymmetricDifference(other *Set[K]) *Set[K] {
	out := s.Difference(other)
	for k := range other.Values() {
		if !s.Contains(k) {
			out.Add(k)
		}
	}
	return out
}

// IsSubset reports whether every element of s is in other.
func (s *Set[K]) IsSubset(other *Set[K]) bool {
	if s.Len() > other.Len() {
		return false
	}
	for k := range s.Values() {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every element of other is in s.
func (s *Set[K]) IsSuperset(other *Set[K]) bool {
	return other.IsSubset(s)
}

// Equal reports whether both sets hold exactly the same elements,
// regardless of insertion order.
func (s *Set[K]) Equal(other *Set[K]) bool {
	return s.Len() == other.Len() && s.IsSubset(other)
}

// --------------------------------------------------------------------------
// Iteration and Display
// --------------------------------------------------------------------------

// Values iterates elements in first-insertion order.
func (s *Set[K]) Values() iter.Seq[K] { return s.d.Keys() }

// String implements fmt.Stringer, rendering as Set(1, 2, 3).
func (s *Set[K]) String() string {
	elems := make([]K, 0, s.Len())
	for k := range s.Values() {
		elems = append(elems, k)
	}
	return "Set(" + repr.Join(elems) + ")"
}
