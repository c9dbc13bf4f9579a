package symtable

// Table is the method set shared by the hash-backed SymTable and the
// linked-list ListTable, so a caller can select a backend without
// changing call sites.
type Table interface {
	Len() int
	Put(key string, value any) bool
	Replace(key string, value any) (any, bool)
	Contains(key string) bool
	Get(key string) (any, bool)
	Remove(key string) (any, bool)
	Map(apply func(key string, value any, extra any), extra any)
	Clear()
}

var (
	_ Table = (*SymTable)(nil)
	_ Table = (*ListTable)(nil)
)
