/*
Package symtable provides a symbol table mapping unique string keys to
opaque caller-owned values.

SymTable is designed as a reusable building block, for example a
compiler's identifier table or an in-process key/value cache. It stores
a private copy of every key, so its correctness never depends on the
caller keeping the original key buffer alive or unmodified, and it
treats values as opaque references: the exact value stored is the exact
value handed back by Get, Replace, and Remove.

Basic usage:

	import symtable "github.com/andy-yh-lau/My-COS217-A3"

	st := symtable.New()

	if !st.Put("ident", declSite) {
		// "ident" was already bound; the table is unchanged.
	}

	if v, ok := st.Get("ident"); ok {
		fmt.Println("bound to:", v)
	}

	st.Map(func(key string, value any, extra any) {
		fmt.Println(key, value)
	}, nil)

Features:

  - Separate-chaining hash table with one linked chain per bucket
  - Bucket array grows through a fixed sequence of prime sizes
    (509 to 65521) to hold the average chain length at or below one
  - Rehashing relinks existing entries; keys and nodes are never
    reallocated during growth
  - Pluggable hash function: the default multiply-and-add string hash,
    or xxHash via the XXHash Hasher
  - ListTable, a linked-list backend with the same contract, for small
    tables and differential testing

Implementation Details:

Each binding holds its key, the caller's value reference, and a link to
the next binding in the same bucket. Put prepends to the target chain
after scanning it for a duplicate key, so insertion is O(1) beyond the
duplicate check. Growth is triggered before an insertion that would push
the number of bindings past the number of buckets; at the largest
configured size growth stops and chains simply lengthen.

The table is single-threaded by design: no operation blocks, and no
internal locking is provided. Callers that share a table across
goroutines must synchronize externally.
*/
package symtable
