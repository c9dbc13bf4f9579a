package symtable_test

import (
	"fmt"
	"math/rand"
)

// identifierKeys returns n distinct identifier-like keys, the workload
// the default hash is tuned for.
func identifierKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("sym%07d", i)
	}
	return keys
}

// randomKeys returns n distinct keys of random hex bytes, a workload
// with no shared structure between keys.
func randomKeys(n int) []string {
	rng := rand.New(rand.NewSource(42))
	keys := make([]string, n)
	seen := make(map[string]bool, n)
	for i := range keys {
		for {
			key := fmt.Sprintf("%016x%016x", rng.Uint64(), rng.Uint64())
			if !seen[key] {
				seen[key] = true
				keys[i] = key
				break
			}
		}
	}
	return keys
}
