// Package growth implements the shared capacity policy used by every
// resizable collection in this library (list, deque, dict).
//
// The policy is deliberately simple and fully deterministic so that capacity
// sequences are reproducible across runs and platforms:
//
//   - Growing doubles the current capacity (or jumps straight to the required
//     minimum when doubling is not enough). Starting from capacity 2, repeated
//     growth yields 4, 8, 16, ...
//   - Shrinking only happens once the live size has dropped to a quarter of
//     the allocated capacity, and never below a per-structure floor. This
//     bounds retained memory after a burst-then-drain usage pattern at the
//     cost of strict amortized O(1) under pathological append/pop alternation
//     right at the boundary - an explicit trade-off, not an accident.
//
// Thread-safety: all functions are pure and safe for concurrent use.
package growth
