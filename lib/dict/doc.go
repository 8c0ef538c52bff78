// Package dict implements an insertion-ordered generic hash table and two
// thin policy layers over it, Set and Counter.
//
// Dict separates hashing from storage: a probed index array of power-of-two
// size maps hashes to positions in a dense entries slice that preserves
// first-insertion order. Collisions resolve by linear probing. Deleting a
// key tombstones its index slot and marks the entry dead; probe sequences
// skip tombstones, and iteration skips dead entries, so iteration always
// replays live keys in the order they were first inserted. Once tombstones
// accumulate past a quarter of the index, or the combined load of live
// entries and tombstones passes two thirds, the table rebuilds - same size
// for pure compaction, doubled when live entries need the room.
//
// Hashing is an injected capability: a Hasher[K] function with the usual
// contract (equal keys hash equal). New seeds a hasher per instance from
// hash/maphash; XXHasher offers an xxhash-based alternative for string
// keys.
//
// Set wraps Dict[K, struct{}] and adds the multiset algebra; Counter wraps
// Dict[K, int] where missing keys read as zero.
//
// Thread-safety: all three types are unsynchronized value types. Concurrent
// use of a single instance requires external synchronization.
package dict
