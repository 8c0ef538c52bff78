package dict

import (
	"errors"
	"slices"
	"testing"
)

func elemsOf[K comparable](s *Set[K]) []K {
	out := make([]K, 0, s.Len())
	for k := range s.Values() {
		out = append(out, k)
	}
	return out
}

func TestSetAddContains(t *testing.T) {
	s := NewSet[int]()
	s.Add(1)
	s.Add(2)
	s.Add(1) // duplicate, no effect

	if s.Len() != 2 {
		t.Fatalf("Len = %d", s.Len())
	}
	if !s.Contains(1) || !s.Contains(2) || s.Contains(3) {
		t.Fatal("membership wrong")
	}
}

func TestSetPopOldestFirst(t *testing.T) {
	s := SetOf(1, 2, 3)
	for _, want := range []int{1, 2, 3} {
		got, err := s.Pop()
		if err != nil || got != want {
			t.Fatalf("Pop = (%d, %v), want %d", got, err, want)
		}
	}
	if _, err := s.Pop(); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Pop on empty = %v", err)
	}
}

func TestSetRemoveDiscard(t *testing.T) {
	s := SetOf("a", "b")

	if err := s.Remove("a"); err != nil {
		t.Fatal(err)
	}
	err := s.Remove("a")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Remove on absent = %v", err)
	}
	var ke *KeyError[string]
	if !errors.As(err, &ke) || ke.Key != "a" {
		t.Fatalf("error should carry the key, got %v", err)
	}

	if !s.Discard("b") {
		t.Fatal("Discard(b) should report removal")
	}
	if s.Discard("b") {
		t.Fatal("Discard on absent should report false")
	}
}

func TestSetInsertionOrder(t *testing.T) {
	s := SetOf(3, 1, 2, 1, 3)
	if got := elemsOf(s); !slices.Equal(got, []int{3, 1, 2}) {
		t.Fatalf("order = %v, want [3 1 2]", got)
	}
}

func TestSetUnion(t *testing.T) {
	a := SetOf(1, 2)
	b := SetOf(2, 3)
	u := a.Union(b)
	if got := elemsOf(u); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("Union = %v", got)
	}
	// Operands untouched.
	if a.Len() != 2 || b.Len() != 2 {
		t.Fatal("Union mutated an operand")
	}
}

func TestSetIntersection(t *testing.T) {
	a := SetOf(1, 2, 3, 4)
	b := SetOf(3, 4, 5)
	if got := elemsOf(a.Intersection(b)); !slices.Equal(got, []int{3, 4}) {
		t.Fatalf("Intersection = %v", got)
	}
	if got := a.Intersection(NewSet[int]()); got.Len() != 0 {
		t.Fatalf("Intersection with empty = %v", elemsOf(got))
	}
}

func TestSetDifference(t *testing.T) {
	a := SetOf(1, 2, 3)
	b := SetOf(2)
	if got := elemsOf(a.Difference(b)); !slices.Equal(got, []int{1, 3}) {
		t.Fatalf("Difference = %v", got)
	}
	if got := elemsOf(a.SymmetricDifference(b)); !slices.Equal(got, []int{1, 3}) {
		t.Fatalf("SymmetricDifference = %v", got)
	}
	c := SetOf(2, 4)
	if got := elemsOf(a.SymmetricDifference(c)); !slices.Equal(got, []int{1, 3, 4}) {
		t.Fatalf("SymmetricDifference = %v", got)
	}
}

func TestSetSubsetSuperset(t *testing.T) {
	a := SetOf(1, 2)
	b := SetOf(1, 2, 3)

	if !a.IsSubset(b) || a.IsSuperset(b) {
		t.Fatal("a should be a strict subset of b")
	}
	if !b.IsSuperset(a) {
		t.Fatal("b should be a superset of a")
	}
	if !a.IsSubset(a) || !a.IsSuperset(a) {
		t.Fatal("a set is its own subset and superset")
	}
	if b.IsSubset(a) {
		t.Fatal("larger set cannot be a subset of a smaller one")
	}
}

func TestSetEqual(t *testing.T) {
	a := SetOf(1, 2, 3)
	b := SetOf(3, 2, 1) // same elements, different order
	if !a.Equal(b) {
		t.Fatal("order must not matter for Equal")
	}
	if a.Equal(SetOf(1, 2)) {
		t.Fatal("different sizes must not be equal")
	}
	if a.Equal(SetOf(1, 2, 4)) {
		t.Fatal("different elements must not be equal")
	}
}

func TestSetClone(t *testing.T) {
	a := SetOf(1)
	b := a.Clone()
	b.Add(2)
	if a.Len() != 1 || b.Len() != 2 {
		t.Fatal("clone must be independent")
	}
}

func TestSetTake(t *testing.T) {
	a := SetOf(1, 2)
	b := a.Take()
	if a.Len() != 0 || b.Len() != 2 {
		t.Fatal("Take should move the contents")
	}
	a.Add(3) // source stays usable
	if !a.Contains(3) || b.Contains(3) {
		t.Fatal("source and moved set must be independent")
	}
}

func TestSetClear(t *testing.T) {
	s := SetOf(1, 2)
	s.Clear()
	if s.Len() != 0 || s.Contains(1) {
		t.Fatal("Clear should empty the set")
	}
}

func TestSetString(t *testing.T) {
	if got := SetOf(1, 2).String(); got != "Set(1, 2)" {
		t.Errorf("String = %q", got)
	}
	if got := SetOf("a").String(); got != "Set('a')" {
		t.Errorf("String = %q", got)
	}
	if got := NewSet[int]().String(); got != "Set()" {
		t.Errorf("String = %q", got)
	}
}
