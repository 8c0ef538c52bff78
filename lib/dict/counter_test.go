package dict

import (
	"errors"
	"slices"
	"testing"
)

func counts[K comparable](c *Counter[K]) map[K]int {
	out := make(map[K]int, c.Len())
	for k, v := range c.Items() {
		out[k] = v
	}
	return out
}

func TestCounterMissingReadsZero(t *testing.T) {
	c := NewCounter[string]()
	if got := c.Count("nope"); got != 0 {
		t.Fatalf("Count on missing = %d", got)
	}
	// Reading must not materialize the key.
	if c.Len() != 0 {
		t.Fatalf("Len = %d after read of missing key", c.Len())
	}
}

func TestCounterAddAndSet(t *testing.T) {
	c := NewCounter[string]()
	c.Add("a", 1)
	c.Add("a", 2)
	c.Set("b", 5)
	c.Add("b", -7)

	if got := c.Count("a"); got != 3 {
		t.Fatalf("Count(a) = %d", got)
	}
	if got := c.Count("b"); got != -2 {
		t.Fatalf("Count(b) = %d", got)
	}
	// Explicitly stored non-positive counts stay visible.
	if c.Len() != 2 {
		t.Fatalf("Len = %d", c.Len())
	}
}

func TestCounterOf(t *testing.T) {
	c := CounterOf("a", "b", "a", "a")
	if c.Count("a") != 3 || c.Count("b") != 1 {
		t.Fatalf("counts = %v", counts(c))
	}
	if c.Total() != 4 {
		t.Fatalf("Total = %d", c.Total())
	}
}

func TestCounterPop(t *testing.T) {
	c := NewCounter[string]()
	c.Add("a", 1)
	c.Add("b", 2)

	v, err := c.Pop("a")
	if err != nil || v != 1 {
		t.Fatalf("Pop(a) = (%d, %v)", v, err)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d after pop", c.Len())
	}
	if _, err := c.Pop("a"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Pop on missing = %v", err)
	}
}

func TestCounterMostCommon(t *testing.T) {
	c := NewCounter[string]()
	c.Add("a", 1)
	c.Add("b", 3)
	c.Add("c", 3) // ties with b, inserted later
	c.Add("d", 2)

	all := c.MostCommon(-1)
	wantKeys := []string{"b", "c", "d", "a"} // ties in insertion order
	gotKeys := make([]string, len(all))
	for i, it := range all {
		gotKeys[i] = it.Key
	}
	if !slices.Equal(gotKeys, wantKeys) {
		t.Fatalf("MostCommon order = %v, want %v", gotKeys, wantKeys)
	}

	top := c.MostCommon(2)
	if len(top) != 2 || top[0].Key != "b" || top[1].Key != "c" {
		t.Fatalf("MostCommon(2) = %v", top)
	}
	if got := c.MostCommon(0); len(got) != 0 {
		t.Fatalf("MostCommon(0) = %v", got)
	}
}

func TestCounterAddCounter(t *testing.T) {
	c1 := NewCounter[string]()
	c1.Add("a", 2)
	c1.Add("b", -1)
	c2 := NewCounter[string]()
	c2.Add("a", 1)
	c2.Add("b", -1)
	c2.Add("c", 3)

	sum := c1.AddCounter(c2)
	want := map[string]int{"a": 3, "c": 3} // b sums to -2 and is dropped
	if got := counts(sum); len(got) != len(want) || got["a"] != 3 || got["c"] != 3 {
		t.Fatalf("AddCounter = %v, want %v", got, want)
	}
}

func TestCounterSubCounterKeepsNegatives(t *testing.T) {
	c1 := NewCounter[string]()
	c1.Add("a", 1)
	c2 := NewCounter[string]()
	c2.Add("a", 3)
	c2.Add("b", 2)

	diff := c1.SubCounter(c2)
	if diff.Count("a") != -2 || diff.Count("b") != -2 {
		t.Fatalf("SubCounter = %v", counts(diff))
	}
}

func TestCounterAddThenSubIsNotRoundTrip(t *testing.T) {
	// (c1 + c2) - c2 loses keys whose sum was dropped at the addition, so
	// the round trip is not an identity.
	c1 := NewCounter[string]()
	c1.Add("a", -1)
	c2 := NewCounter[string]()
	c2.Add("a", 1)

	sum := c1.AddCounter(c2) // a: 0, dropped
	if sum.Len() != 0 {
		t.Fatalf("sum = %v", counts(sum))
	}
	back := sum.SubCounter(c2)
	if back.Count("a") != -1 {
		t.Fatalf("back = %v", counts(back))
	}
	// back has a: -1 from subtraction alone, not c1's original entry; a
	// second addition would drop it again.
	if got := back.AddCounter(c2); got.Len() != 0 {
		t.Fatalf("re-add = %v", counts(got))
	}
}

func TestCounterIntersect(t *testing.T) {
	c1 := NewCounter[string]()
	c1.Add("a", 3)
	c1.Add("b", 1)
	c1.Set("c", -2)
	c2 := NewCounter[string]()
	c2.Add("a", 2)
	c2.Add("c", 5)

	got := counts(c1.Intersect(c2))
	if len(got) != 1 || got["a"] != 2 {
		t.Fatalf("Intersect = %v", got)
	}
}

func TestCounterUnion(t *testing.T) {
	c1 := NewCounter[string]()
	c1.Add("a", 3)
	c1.Set("b", -1)
	c2 := NewCounter[string]()
	c2.Add("a", 1)
	c2.Set("b", -2)
	c2.Add("c", 4)

	got := counts(c1.Union(c2))
	if len(got) != 2 || got["a"] != 3 || got["c"] != 4 {
		t.Fatalf("Union = %v", got)
	}
}

func TestCounterNeg(t *testing.T) {
	c := NewCounter[string]()
	c.Add("a", 2)
	c.Set("b", -3)

	n := c.Neg()
	if n.Count("a") != -2 || n.Count("b") != 3 {
		t.Fatalf("Neg = %v", counts(n))
	}
}

func TestCounterClone(t *testing.T) {
	c := CounterOf("a")
	d := c.Clone()
	d.Add("a", 9)
	if c.Count("a") != 1 {
		t.Fatal("clone must be independent")
	}
}

func TestCounterTake(t *testing.T) {
	c := CounterOf("a", "a")
	moved := c.Take()
	if c.Len() != 0 || moved.Count("a") != 2 {
		t.Fatal("Take should move the contents")
	}
}

func TestCounterKeysOrder(t *testing.T) {
	c := CounterOf("b", "a", "b")
	var got []string
	for k := range c.Keys() {
		got = append(got, k)
	}
	if !slices.Equal(got, []string{"b", "a"}) {
		t.Fatalf("key order = %v", got)
	}
}

func TestCounterString(t *testing.T) {
	c := NewCounter[string]()
	c.Add("a", 3)
	if got := c.String(); got != "Counter('a': 3)" {
		t.Errorf("String = %q", got)
	}
	if got := NewCounter[int]().String(); got != "Counter()" {
		t.Errorf("String = %q", got)
	}
}
