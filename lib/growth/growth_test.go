package growth

import "testing"

func TestNext(t *testing.T) {
	tests := []struct {
		current, required, want int
	}{
		{0, 0, DefaultCapacity},
		{0, 1, DefaultCapacity},
		{0, 100, 100},
		{2, 3, 4},
		{4, 5, 8},
		{8, 9, 16},
		{4, 100, 100},
	}

	for _, tt := range tests {
		if got := Next(tt.current, tt.required); got != tt.want {
			t.Errorf("Next(%d, %d) = %d, want %d", tt.current, tt.required, got, tt.want)
		}
	}
}

func TestNextIsDeterministicSequence(t *testing.T) {
	// Growing from capacity 2 one element at a time must yield 4 then 8.
	c := 2
	c = Next(c, c+1)
	if c != 4 {
		t.Fatalf("first growth from 2: got %d, want 4", c)
	}
	c = Next(c, c+1)
	if c != 8 {
		t.Fatalf("second growth: got %d, want 8", c)
	}
}

func TestShrink(t *testing.T) {
	tests := []struct {
		size, capacity, floor int
		want                  int
		ok                    bool
	}{
		{0, 16, 4, 8, true},
		{4, 16, 4, 8, true},
		{5, 16, 4, 16, false},   // above quarter
		{1, 4, 4, 4, false},     // at floor already
		{0, 8, 8, 8, false},     // capacity == floor
		{2, 8, 4, 4, true},      // halved hits floor
		{0, 64, 16, 32, true},   // halves, stays above floor
		{16, 64, 4, 32, true},   // exactly a quarter
		{17, 64, 4, 64, false},  // just above a quarter
		{3, 16, 16, 16, false},  // floor dominates
	}

	for _, tt := range tests {
		got, ok := Shrink(tt.size, tt.capacity, tt.floor)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Shrink(%d, %d, %d) = (%d, %v), want (%d, %v)",
				tt.size, tt.capacity, tt.floor, got, ok, tt.want, tt.ok)
		}
	}
}

func TestShrinkNeverBelowFloor(t *testing.T) {
	for capacity := 1; capacity <= 1024; capacity *= 2 {
		for size := 0; size <= capacity; size++ {
			got, _ := Shrink(size, capacity, 8)
			if got < 8 && capacity >= 8 {
				t.Fatalf("Shrink(%d, %d, 8) went below floor: %d", size, capacity, got)
			}
			if got < size {
				t.Fatalf("Shrink(%d, %d, 8) cannot hold live elements: %d", size, capacity, got)
			}
		}
	}
}

func TestCeilPow2(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8},
		{7, 8}, {8, 8}, {9, 16}, {1000, 1024}, {1024, 1024}, {1025, 2048},
	}
	for _, tt := range tests {
		if got := CeilPow2(tt.in); got != tt.want {
			t.Errorf("CeilPow2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
