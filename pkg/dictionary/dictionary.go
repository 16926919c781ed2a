// Package dictionary provides a text-keyed lookup table with typo-tolerant
// name resolution and key=value bulk loading. It wraps a
// hashtable.Table[string, V] and shares its concurrency contract: callers
// that share a dictionary across goroutines wrap every call in their own
// lock.
package dictionary

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/evolib/evotable/pkg/hashtable"
)

type Dictionary[V any] interface {
	// Add inserts a new entry even if the name is already present; the new
	// entry shadows the old one. Application code normally wants Set.
	Add(name string, value V)
	Set(name string, value V)
	Get(name string) (V, error)
	Has(name string) bool
	Remove(name string) (V, error)
	Resize(newSize int) error
	Count() int
	Pairs() ([]string, []V)

	// NearMatch returns the stored name closest to name by edit distance,
	// or "" when no stored name is strictly closer than len(name) edits.
	// Ties resolve to the lexicographically smallest candidate.
	NearMatch(name string) string
	// Load splits line at the first '=', converts the remainder to V and
	// sets the entry. A conversion failure leaves the dictionary unchanged.
	Load(line string) error
	// LoadSep is Load with an explicit separator.
	LoadSep(line string, sep byte) error
}

// New creates a dictionary with tableSize buckets. convert is the
// string-to-value conversion used by Load; it may be nil for dictionaries
// that are never bulk-loaded.
func New[V any](tableSize int, convert ConvertFn[V]) (Dictionary[V], error) {
	t, err := hashtable.NewString[V](tableSize)
	if err != nil {
		return nil, err
	}
	return &dictionary[V]{table: t, convert: convert}, nil
}

type dictionary[V any] struct {
	table   hashtable.Table[string, V]
	convert ConvertFn[V]
}

func (r *dictionary[V]) Add(name string, value V) { r.table.Add(name, value) }
func (r *dictionary[V]) Set(name string, value V) { r.table.Set(name, value) }
func (r *dictionary[V]) Get(name string) (V, error) {
	return r.table.Get(name)
}
func (r *dictionary[V]) Has(name string) bool          { return r.table.Has(name) }
func (r *dictionary[V]) Remove(name string) (V, error) { return r.table.Remove(name) }
func (r *dictionary[V]) Resize(newSize int) error      { return r.table.Resize(newSize) }
func (r *dictionary[V]) Count() int                    { return r.table.Count() }
func (r *dictionary[V]) Pairs() ([]string, []V)        { return r.table.Pairs() }

func (r *dictionary[V]) NearMatch(name string) string {
	keys, _ := r.table.Pairs()

	// Seeding the best distance at len(name) means a candidate is only
	// accepted when it is strictly closer than an unrelated name would
	// be. Pairs is ascending, so the first of two equally close names
	// wins and the tie-break is lexicographic.
	best := ""
	bestDist := len(name)
	for _, key := range keys {
		if dist := levenshtein.Distance(name, key, nil); dist < bestDist {
			bestDist = dist
			best = key
		}
	}
	return best
}

func (r *dictionary[V]) Load(line string) error {
	return r.LoadSep(line, '=')
}

func (r *dictionary[V]) LoadSep(line string, sep byte) error {
	key := line
	rest := ""
	if i := strings.IndexByte(line, sep); i >= 0 {
		key, rest = line[:i], line[i+1:]
	}
	if r.convert == nil {
		return fmt.Errorf("load %q: no converter configured", key)
	}
	value, err := r.convert(rest)
	if err != nil {
		return fmt.Errorf("load %q: %w", key, err)
	}
	r.Set(key, value)
	return nil
}
