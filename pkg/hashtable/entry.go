package hashtable

import "cmp"

// none marks an empty bucket slot or the end of the entry list.
const none = -1

// entry is a slab slot. Live entries are linked into a single list via
// prev/next; bucket caches the bucket index the key hashed to at insert or
// last resize time.
type entry[K cmp.Ordered, V any] struct {
	key    K
	bucket int
	value  V
	prev   int
	next   int
	live   bool
}

// alloc returns a free slab index, growing the slab if the free list is
// empty.
func (r *table[K, V]) alloc() int {
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		return idx
	}
	r.slab = append(r.slab, entry[K, V]{})
	return len(r.slab) - 1
}

// place threads slab[idx] into the entry list according to its bucket: at
// the tail when the bucket is empty, otherwise immediately before the
// bucket's current head. Either way the entry becomes the new bucket head,
// so a bucket's entries always stay contiguous.
func (r *table[K, V]) place(idx int) {
	b := r.slab[idx].bucket
	if head := r.buckets[b]; head == none {
		r.linkTail(idx)
	} else {
		r.linkBefore(idx, head)
	}
	r.buckets[b] = idx
}

func (r *table[K, V]) linkTail(idx int) {
	e := &r.slab[idx]
	e.prev = r.tail
	e.next = none
	if r.tail != none {
		r.slab[r.tail].next = idx
	} else {
		r.head = idx
	}
	r.tail = idx
}

func (r *table[K, V]) linkBefore(idx, at int) {
	e := &r.slab[idx]
	e.prev = r.slab[at].prev
	e.next = at
	if e.prev != none {
		r.slab[e.prev].next = idx
	} else {
		r.head = idx
	}
	r.slab[at].prev = idx
}

// unlink removes slab[idx] from the entry list and returns the slot to the
// free list.
func (r *table[K, V]) unlink(idx int) {
	e := &r.slab[idx]
	if e.prev != none {
		r.slab[e.prev].next = e.next
	} else {
		r.head = e.next
	}
	if e.next != none {
		r.slab[e.next].prev = e.prev
	} else {
		r.tail = e.prev
	}
	var zero entry[K, V]
	*e = zero
	e.prev, e.next = none, none
	e.live = false
	r.free = append(r.free, idx)
}
