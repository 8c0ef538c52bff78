package dict

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher computes the hash of a key. Implementations must satisfy the
// standard contract: equal keys produce equal hashes for the lifetime of
// the table using them.
type Hasher[K comparable] func(K) uint64

// defaultHasher returns a maphash-backed Hasher with a fresh per-instance
// seed, so probe distributions differ between tables and runs.
func defaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// XXHasher returns an xxhash-backed Hasher for string keys. Unlike the
// default hasher it is deterministic across runs, which makes probe-order
// dependent behavior reproducible.
func XXHasher() Hasher[string] {
	return xxhash.Sum64String
}
