package hashtable

import (
	"cmp"
	"errors"
	"fmt"
	"sort"
)

// Named capacity tiers. The table never grows on its own; callers that
// outgrow a tier call Resize explicitly.
const (
	SizeDefault = 23
	SizeMedium  = 331
	SizeLarge   = 2311
)

// ErrNotFound reports a lookup or removal miss.
var ErrNotFound = errors.New("entry not found")

// Table maps keys to values through a fixed bucket array and one shared
// entry list. All entries of a bucket occupy a contiguous run of that list,
// so bucket scans stop as soon as the run ends.
//
// A Table is not safe for concurrent use, not even for concurrent reads; an
// owner that shares one across goroutines wraps every call in its own lock.
type Table[K cmp.Ordered, V any] interface {
	// Add inserts a new entry, even if the key is already present. The new
	// entry shadows any older entry with the same key: lookups find the
	// newest first, and the older one becomes reachable again only after
	// the newer is removed. Application code normally wants Set.
	Add(key K, value V)
	// Set updates the value of an existing entry in place, or adds the
	// entry if the key is absent.
	Set(key K, value V)
	Get(key K) (V, error)
	Has(key K) bool
	// Remove deletes the entry for key and returns its value. Removing a
	// key whose bucket is empty is a caller contract violation and panics;
	// a miss inside a non-empty bucket returns ErrNotFound.
	Remove(key K) (V, error)
	// Resize rebuilds the bucket array at newSize and rethreads every
	// entry. On error the table is unchanged.
	Resize(newSize int) error

	Count() int
	TableSize() int
	Clear()

	// Pairs snapshots all entries in ascending key order. Duplicate keys
	// keep their entry-list order relative to each other.
	Pairs() ([]K, []V)
	// Values snapshots all values in internal scan order.
	Values() []V
	// AppendValues appends all values to dst in internal scan order.
	AppendValues(dst []V) []V

	Iterate() *Iterator[K, V]
}

// New creates a table with tableSize buckets and the given hash function.
func New[K cmp.Ordered, V any](tableSize int, hash HashFn[K]) (Table[K, V], error) {
	if tableSize < 1 {
		return nil, fmt.Errorf("table size %d is smaller than min allowed size: 1", tableSize)
	}
	if hash == nil {
		return nil, fmt.Errorf("hash function is required")
	}
	r := &table[K, V]{
		hash:    hash,
		buckets: make([]int, tableSize),
		head:    none,
		tail:    none,
	}
	for i := range r.buckets {
		r.buckets[i] = none
	}
	return r, nil
}

// NewInt creates an integer-keyed table.
func NewInt[V any](tableSize int) (Table[int, V], error) {
	return New[int, V](tableSize, HashInt)
}

// NewIdentity creates an identity-keyed table.
func NewIdentity[V any](tableSize int) (Table[Identity, V], error) {
	return New[Identity, V](tableSize, HashIdentity)
}

// NewString creates a text-keyed table.
func NewString[V any](tableSize int) (Table[string, V], error) {
	return New[string, V](tableSize, HashString)
}

type table[K cmp.Ordered, V any] struct {
	hash    HashFn[K]
	buckets []int         // bucket index -> slab index of first run entry, none if empty
	slab    []entry[K, V] // entry storage; list links are slab indices
	free    []int         // reusable slab slots
	head    int           // first entry in the list
	tail    int           // last entry in the list
	count   int
}

// find returns the slab index of the first entry matching key, scanning only
// the key's bucket run.
func (r *table[K, V]) find(key K) int {
	b := r.hash(key, len(r.buckets))
	for idx := r.buckets[b]; idx != none; idx = r.slab[idx].next {
		if r.slab[idx].bucket != b {
			break
		}
		if r.slab[idx].key == key {
			return idx
		}
	}
	return none
}

func (r *table[K, V]) Add(key K, value V) {
	idx := r.alloc()
	r.slab[idx] = entry[K, V]{
		key:    key,
		bucket: r.hash(key, len(r.buckets)),
		value:  value,
		prev:   none,
		next:   none,
		live:   true,
	}
	r.place(idx)
	r.count++
}

func (r *table[K, V]) Set(key K, value V) {
	if idx := r.find(key); idx != none {
		r.slab[idx].value = value
		return
	}
	r.Add(key, value)
}

func (r *table[K, V]) Get(key K) (V, error) {
	var d V
	idx := r.find(key)
	if idx == none {
		return d, fmt.Errorf("no match found for %v: %w", key, ErrNotFound)
	}
	return r.slab[idx].value, nil
}

func (r *table[K, V]) Has(key K) bool {
	return r.find(key) != none
}

func (r *table[K, V]) Remove(key K) (V, error) {
	var d V
	b := r.hash(key, len(r.buckets))
	head := r.buckets[b]
	if head == none {
		panic(fmt.Sprintf("hashtable: remove %v: bucket %d is empty", key, b))
	}
	for idx := head; idx != none && r.slab[idx].bucket == b; idx = r.slab[idx].next {
		if r.slab[idx].key != key {
			continue
		}
		d = r.slab[idx].value
		if idx == head {
			// The next entry takes over as bucket head only if it is
			// still part of this run.
			if next := r.slab[idx].next; next != none && r.slab[next].bucket == b {
				r.buckets[b] = next
			} else {
				r.buckets[b] = none
			}
		}
		r.unlink(idx)
		r.count--
		return d, nil
	}
	return d, fmt.Errorf("no match found for %v in bucket %d: %w", key, b, ErrNotFound)
}

func (r *table[K, V]) Resize(newSize int) error {
	if newSize < 1 {
		return fmt.Errorf("table size %d is smaller than min allowed size: 1", newSize)
	}

	// Withdraw every entry, then reinsert one by one under the new size.
	// Entries keep their slab slots; only links, buckets and the cached
	// bucket ids change.
	staged := make([]int, 0, r.count)
	for idx := r.head; idx != none; idx = r.slab[idx].next {
		staged = append(staged, idx)
	}

	r.buckets = make([]int, newSize)
	for i := range r.buckets {
		r.buckets[i] = none
	}
	r.head, r.tail = none, none

	for _, idx := range staged {
		e := &r.slab[idx]
		e.prev, e.next = none, none
		e.bucket = r.hash(e.key, newSize)
		r.place(idx)
	}
	return nil
}

func (r *table[K, V]) Count() int {
	return r.count
}

func (r *table[K, V]) TableSize() int {
	return len(r.buckets)
}

func (r *table[K, V]) Clear() {
	r.slab = r.slab[:0]
	r.free = r.free[:0]
	for i := range r.buckets {
		r.buckets[i] = none
	}
	r.head, r.tail = none, none
	r.count = 0
}

func (r *table[K, V]) Pairs() ([]K, []V) {
	order := make([]int, 0, r.count)
	for idx := r.head; idx != none; idx = r.slab[idx].next {
		order = append(order, idx)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return cmp.Less(r.slab[order[i]].key, r.slab[order[j]].key)
	})

	keys := make([]K, 0, r.count)
	values := make([]V, 0, r.count)
	for _, idx := range order {
		keys = append(keys, r.slab[idx].key)
		values = append(values, r.slab[idx].value)
	}
	return keys, values
}

func (r *table[K, V]) Values() []V {
	return r.AppendValues(make([]V, 0, r.count))
}

func (r *table[K, V]) AppendValues(dst []V) []V {
	for idx := r.head; idx != none; idx = r.slab[idx].next {
		dst = append(dst, r.slab[idx].value)
	}
	return dst
}

func (r *table[K, V]) Iterate() *Iterator[K, V] {
	order := make([]int, 0, r.count)
	for idx := r.head; idx != none; idx = r.slab[idx].next {
		order = append(order, idx)
	}
	return &Iterator[K, V]{current: -1, order: order, slab: r.slab}
}

// check validates the internal structure: the count, the list links, the
// cached bucket ids, the bucket heads and the contiguity of bucket runs.
func (r *table[K, V]) check() error {
	seen := make(map[int]bool, len(r.buckets))
	prev := none
	prevBucket := none
	n := 0
	for idx := r.head; idx != none; idx = r.slab[idx].next {
		e := &r.slab[idx]
		if !e.live {
			return fmt.Errorf("dead entry %d linked in list", idx)
		}
		if e.prev != prev {
			return fmt.Errorf("entry %d has prev %d, want %d", idx, e.prev, prev)
		}
		if want := r.hash(e.key, len(r.buckets)); e.bucket != want {
			return fmt.Errorf("entry %d caches bucket %d, key hashes to %d", idx, e.bucket, want)
		}
		if e.bucket != prevBucket {
			if seen[e.bucket] {
				return fmt.Errorf("bucket %d split into multiple runs", e.bucket)
			}
			seen[e.bucket] = true
			if r.buckets[e.bucket] != idx {
				return fmt.Errorf("bucket %d head is %d, first run entry is %d", e.bucket, r.buckets[e.bucket], idx)
			}
		}
		prev = idx
		prevBucket = e.bucket
		n++
	}
	if prev != r.tail {
		return fmt.Errorf("list tail is %d, last entry is %d", r.tail, prev)
	}
	if n != r.count {
		return fmt.Errorf("count is %d, list holds %d entries", r.count, n)
	}
	for b, head := range r.buckets {
		if head == none {
			continue
		}
		if !seen[b] {
			return fmt.Errorf("bucket %d points at %d but has no run", b, head)
		}
	}
	return nil
}
