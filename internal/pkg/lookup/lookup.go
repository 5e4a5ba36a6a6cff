// Package lookup builds read-only key indexes over ordered record slices.
package lookup

// Index maps a key to a record. It is built once and never mutated, so it is
// safe to share between goroutines.
type Index[K comparable, V any] struct {
	m map[K]V
}

// Build folds items into an Index in a single pass. When two items produce the
// same key the later one wins.
func Build[K comparable, V any](items []V, key func(V) K) Index[K, V] {
	m := make(map[K]V, len(items))
	for _, it := range items {
		m[key(it)] = it
	}
	return Index[K, V]{m: m}
}

// Get returns the record for k and whether it was present.
func (idx Index[K, V]) Get(k K) (V, bool) {
	v, ok := idx.m[k]
	return v, ok
}

func (idx Index[K, V]) Has(k K) bool {
	_, ok := idx.m[k]
	return ok
}

func (idx Index[K, V]) Len() int {
	return len(idx.m)
}
