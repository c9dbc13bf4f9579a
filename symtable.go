package symtable

import "strings"

// bucketCounts is the fixed ascending sequence of bucket-array sizes the
// table steps through as it grows. The values are primes to reduce
// clustering when hash codes share common factors with the table size.
var bucketCounts = [...]int{509, 1021, 2039, 4093, 8191, 16381, 32749, 65521}

// binding is one key/value entry in a bucket chain. The stored key is a
// private copy detached from caller memory; the value is an opaque
// caller-owned reference the table never copies or inspects.
type binding struct {
	key   string
	value any
	next  *binding
}

// SymTable is a symbol table mapping unique string keys to opaque values,
// backed by a separate-chaining hash table. The bucket array grows through
// the prime sizes in bucketCounts whenever the number of bindings would
// exceed the number of buckets, keeping the average chain length at or
// below one until the largest size is reached; past that point chains
// simply lengthen.
//
// A SymTable is not safe for concurrent use without external
// synchronization.
type SymTable struct {
	buckets []*binding
	sizeIdx int // index into bucketCounts for the current capacity
	length  int
	hash    Hasher
}

// New returns an empty SymTable at the smallest capacity, distributing
// keys with HashString.
func New() *SymTable {
	return NewHasher(HashString)
}

// NewHasher returns an empty SymTable that distributes keys with h.
// h must be a pure function of the key bytes. NewHasher panics if h is
// nil.
func NewHasher(h Hasher) *SymTable {
	if h == nil {
		panic("symtable: nil Hasher")
	}
	return &SymTable{
		buckets: make([]*binding, bucketCounts[0]),
		hash:    h,
	}
}

// Len returns the number of bindings in the table.
func (st *SymTable) Len() int {
	return st.length
}

func (st *SymTable) bucketIndex(key string) int {
	return int(st.hash(key) % uint64(len(st.buckets)))
}

// lookup returns the binding holding key, or nil if key is not bound.
func (st *SymTable) lookup(key string) *binding {
	for b := st.buckets[st.bucketIndex(key)]; b != nil; b = b.next {
		if b.key == key {
			return b
		}
	}
	return nil
}

// Put adds a binding for key referencing value and reports true. If key
// is already bound, the table is left unchanged and Put reports false.
// The table keeps a private copy of key, so the caller is free to reuse
// or mutate whatever buffer the key came from; value is stored as given
// and handed back unchanged by later lookups.
func (st *SymTable) Put(key string, value any) bool {
	if st.lookup(key) != nil {
		return false
	}
	if st.length >= len(st.buckets) {
		st.grow()
	}
	// Index under the possibly just-grown capacity.
	idx := st.bucketIndex(key)
	st.buckets[idx] = &binding{
		key:   strings.Clone(key),
		value: value,
		next:  st.buckets[idx],
	}
	st.length++
	return true
}

// grow advances the bucket array to the next size in bucketCounts and
// rehashes every binding by relinking its node onto the new array; no
// binding or key is reallocated. At the largest size grow is a no-op.
func (st *SymTable) grow() {
	if st.sizeIdx == len(bucketCounts)-1 {
		return
	}
	next := make([]*binding, bucketCounts[st.sizeIdx+1])
	for _, b := range st.buckets {
		for b != nil {
			rest := b.next
			idx := int(st.hash(b.key) % uint64(len(next)))
			b.next = next[idx]
			next[idx] = b
			b = rest
		}
	}
	st.buckets = next
	st.sizeIdx++
}

// Replace overwrites the value bound to key, leaving the binding in
// place, and returns the value that was there before. If key is not
// bound, the table is unchanged and Replace returns (nil, false).
func (st *SymTable) Replace(key string, value any) (any, bool) {
	b := st.lookup(key)
	if b == nil {
		return nil, false
	}
	old := b.value
	b.value = value
	return old, true
}

// Contains reports whether key is bound.
func (st *SymTable) Contains(key string) bool {
	return st.lookup(key) != nil
}

// Get returns the value bound to key, or (nil, false) if key is not
// bound.
func (st *SymTable) Get(key string) (any, bool) {
	b := st.lookup(key)
	if b == nil {
		return nil, false
	}
	return b.value, true
}

// Remove deletes the binding for key and returns the value it held. If
// key is not bound, the table is unchanged and Remove returns
// (nil, false). The bucket array never shrinks.
func (st *SymTable) Remove(key string) (any, bool) {
	idx := st.bucketIndex(key)
	var prev *binding
	for b := st.buckets[idx]; b != nil; b = b.next {
		if b.key != key {
			prev = b
			continue
		}
		if prev == nil {
			st.buckets[idx] = b.next
		} else {
			prev.next = b.next
		}
		value := b.value
		b.value = nil
		b.next = nil
		st.length--
		return value, true
	}
	return nil, false
}

// Map calls apply(key, value, extra) once for every binding, in bucket
// order and then chain order within a bucket, passing extra through
// unchanged on each call. apply must not insert or remove bindings while
// Map is running. Map panics if apply is nil.
func (st *SymTable) Map(apply func(key string, value any, extra any), extra any) {
	if apply == nil {
		panic("symtable: nil apply function")
	}
	for _, b := range st.buckets {
		for ; b != nil; b = b.next {
			apply(b.key, b.value, extra)
		}
	}
}

// Clear removes every binding and resets the table to its smallest
// capacity. Each chain link is severed so a stale reference into a chain
// cannot keep the rest of it reachable.
func (st *SymTable) Clear() {
	for _, b := range st.buckets {
		for b != nil {
			rest := b.next
			b.value = nil
			b.next = nil
			b = rest
		}
	}
	st.buckets = make([]*binding, bucketCounts[0])
	st.sizeIdx = 0
	st.length = 0
}
