package growth

import "math/bits"

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	// DefaultCapacity is the capacity given to a zero-capacity structure on
	// its first growth when no larger minimum is required.
	DefaultCapacity = 4

	// factor is the multiplicative growth factor. Doubling keeps capacity
	// sequences reproducible (2 -> 4 -> 8 -> ...) and total append cost O(n).
	factor = 2

	// shrinkDenominator: a structure shrinks once its live size has dropped
	// to <= capacity/shrinkDenominator.
	shrinkDenominator = 4
)

// --------------------------------------------------------------------------
// Growth
// --------------------------------------------------------------------------

// Next returns the capacity a structure should reallocate to, given its
// current capacity and the minimum number of slots it needs.
//
// A zero-capacity structure jumps to DefaultCapacity (or straight to required
// if that is larger). Otherwise capacity doubles, or jumps to required when
// doubling would not reach it.
func Next(current, required int) int {
	if current == 0 {
		return max(DefaultCapacity, required)
	}
	return max(required, current*factor)
}

// --------------------------------------------------------------------------
// Shrink
// --------------------------------------------------------------------------

// Shrink reports whether a structure holding size live elements in capacity
// slots should reallocate to a smaller buffer, and to which capacity.
//
// The structure shrinks only when size has dropped to a quarter of capacity
// or less, and the halved capacity stays at or above floor. The returned
// capacity is always >= max(size, floor).
func Shrink(size, capacity, floor int) (int, bool) {
	if capacity <= floor {
		return capacity, false
	}
	if size > capacity/shrinkDenominator {
		return capacity, false
	}
	next := max(capacity/factor, floor, size)
	if next >= capacity {
		return capacity, false
	}
	return next, true
}

// --------------------------------------------------------------------------
// Power-of-two rounding
// --------------------------------------------------------------------------

// CeilPow2 returns the smallest power of two >= n. Values below one round up
// to one. Used by structures whose index arithmetic relies on mask operations
// (the deque ring and the dict index array).
func CeilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << (bits.Len(uint(n - 1)))
}
