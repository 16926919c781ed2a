package hashtable

import "cmp"

// Iterator walks the entry list in its internal order. Every call to
// Table.Iterate returns a fresh Iterator; iterators are never shared
// between calls. Mutating the table invalidates outstanding iterators.
type Iterator[K cmp.Ordered, V any] struct {
	current int
	order   []int
	slab    []entry[K, V]
}

func (r *Iterator[K, V]) Next() bool {
	r.current++
	return r.current < len(r.order)
}

func (r *Iterator[K, V]) Key() K {
	return r.slab[r.order[r.current]].key
}

func (r *Iterator[K, V]) Value() V {
	return r.slab[r.order[r.current]].value
}

// Bucket returns the bucket id cached on the current entry.
func (r *Iterator[K, V]) Bucket() int {
	return r.slab[r.order[r.current]].bucket
}
