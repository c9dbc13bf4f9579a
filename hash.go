package symtable

import "github.com/cespare/xxhash/v2"

// A Hasher maps a key to a 64-bit hash code. The table reduces the code
// modulo the current bucket count, so a Hasher must be a pure function
// of the key bytes: the same key must yield the same code on every call.
type Hasher func(key string) uint64

// hashMultiplier is the odd constant of the classic multiply-and-add
// string hash.
const hashMultiplier = 65599

// HashString is the default Hasher. It folds every byte of key into the
// accumulator as hash*65599 + byte, relying on uint64 wraparound, which
// spreads identifier-like keys well across prime bucket counts.
func HashString(key string) uint64 {
	var hash uint64
	for i := 0; i < len(key); i++ {
		hash = hash*hashMultiplier + uint64(key[i])
	}
	return hash
}

// XXHash is an alternative Hasher backed by xxHash. It is faster than
// HashString on long keys and distributes arbitrary binary keys well.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}
