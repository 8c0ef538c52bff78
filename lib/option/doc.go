// Package option provides the single-slot sum types used as the return
// channel for fallible lookups across the collection packages:
//
//   - Optional[T]: a value that is either present or absent. Forcing the
//     value out of an absent Optional is a programmer error and panics; use
//     Get or OrElse for the checked paths.
//
//   - Result[T]: like Optional, but the absent state carries an error
//     payload describing why no value is available.
//
// Both types are plain immutable-by-convention value types. The zero value
// of Optional[T] is None; the zero value of Result[T] is an Ok holding T's
// zero value, so Results should always be built through Ok, Err or ErrFrom.
//
// Thread-safety: values are not synchronized. Copies are independent; a
// single instance must not be mutated (via Take) from multiple goroutines
// without external synchronization.
package option
