// Package list implements List, a generic, owning, contiguous and resizable
// sequence with a small-buffer optimization.
//
// The first few elements live in a fixed inline buffer embedded in the
// structure, so short-lived small lists never touch the heap. Once the
// inline capacity is exceeded (or an explicit capacity is requested) the
// list migrates permanently to heap storage; it never migrates back. The
// active storage mode is transparent to every operation and observable only
// through Cap and Spilled.
//
// Growth and shrinkage follow the shared policy in lib/growth: capacity
// doubles when full, and a removal that leaves the list at a quarter of its
// capacity reallocates to half (never below the inline capacity).
//
// Index conventions follow the dynamic-language ergonomics the library
// emulates: accessors accept negative indices counting from the end, Insert
// clamps out-of-range indices instead of failing, and Slice implements
// half-open slicing with negative steps. Out-of-bounds element access by
// value (At/Set) is a programmer error and panics.
//
// Thread-safety: a List is an unsynchronized value type. Concurrent use of
// a single instance requires external synchronization.
package list
