package symtable

import "strings"

// ListTable is the reference backend: a single unsorted chain holding
// every binding. It honors the same contract as SymTable, but the
// lookup-family operations walk the whole chain, so it suits small
// tables and differential testing of the hash-backed implementation.
//
// Like SymTable, a ListTable is not safe for concurrent use without
// external synchronization.
type ListTable struct {
	first  *binding
	length int
}

// NewList returns an empty ListTable.
func NewList() *ListTable {
	return &ListTable{}
}

// Len returns the number of bindings in the table.
func (lt *ListTable) Len() int {
	return lt.length
}

func (lt *ListTable) lookup(key string) *binding {
	for b := lt.first; b != nil; b = b.next {
		if b.key == key {
			return b
		}
	}
	return nil
}

// Put adds a binding for key referencing value and reports true, or
// reports false leaving the table unchanged if key is already bound.
// The table keeps a private copy of key.
func (lt *ListTable) Put(key string, value any) bool {
	if lt.lookup(key) != nil {
		return false
	}
	lt.first = &binding{
		key:   strings.Clone(key),
		value: value,
		next:  lt.first,
	}
	lt.length++
	return true
}

// Replace overwrites the value bound to key and returns the prior value,
// or (nil, false) leaving the table unchanged if key is not bound.
func (lt *ListTable) Replace(key string, value any) (any, bool) {
	b := lt.lookup(key)
	if b == nil {
		return nil, false
	}
	old := b.value
	b.value = value
	return old, true
}

// Contains reports whether key is bound.
func (lt *ListTable) Contains(key string) bool {
	return lt.lookup(key) != nil
}

// Get returns the value bound to key, or (nil, false) if key is not
// bound.
func (lt *ListTable) Get(key string) (any, bool) {
	b := lt.lookup(key)
	if b == nil {
		return nil, false
	}
	return b.value, true
}

// Remove deletes the binding for key and returns the value it held, or
// (nil, false) leaving the table unchanged if key is not bound.
func (lt *ListTable) Remove(key string) (any, bool) {
	var prev *binding
	for b := lt.first; b != nil; b = b.next {
		if b.key != key {
			prev = b
			continue
		}
		if prev == nil {
			lt.first = b.next
		} else {
			prev.next = b.next
		}
		value := b.value
		b.value = nil
		b.next = nil
		lt.length--
		return value, true
	}
	return nil, false
}

// Map calls apply(key, value, extra) once for every binding, most
// recently inserted first. apply must not insert or remove bindings
// while Map is running. Map panics if apply is nil.
func (lt *ListTable) Map(apply func(key string, value any, extra any), extra any) {
	if apply == nil {
		panic("symtable: nil apply function")
	}
	for b := lt.first; b != nil; b = b.next {
		apply(b.key, b.value, extra)
	}
}

// Clear removes every binding, severing each chain link.
func (lt *ListTable) Clear() {
	for b := lt.first; b != nil; {
		rest := b.next
		b.value = nil
		b.next = nil
		b = rest
	}
	lt.first = nil
	lt.length = 0
}
