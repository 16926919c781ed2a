// Package birth pairs offspring waiting for a mate in the birth chamber.
// The size handler only mates genomes of equal length, so waiting entries
// are kept in a table keyed by genome size.
package birth

import (
	"github.com/evolib/evotable/pkg/genome"
	"github.com/evolib/evotable/pkg/hashtable"
)

// Entry is an offspring genome waiting in the birth chamber, tagged with
// the identity of the parent that produced it.
type Entry struct {
	Genome   genome.Genome
	ParentID hashtable.Identity
}

type SizeHandler struct {
	waiting hashtable.Table[int, []*Entry]
}

func NewSizeHandler() (*SizeHandler, error) {
	t, err := hashtable.NewInt[[]*Entry](hashtable.SizeMedium)
	if err != nil {
		return nil, err
	}
	return &SizeHandler{waiting: t}, nil
}

// SelectOffspring returns a waiting entry whose genome length matches
// offspring, removing it from the chamber. When none is waiting the
// offspring is stored instead and ok is false.
func (r *SizeHandler) SelectOffspring(offspring genome.Genome, parentID hashtable.Identity) (*Entry, bool) {
	size := len(offspring)
	queue, err := r.waiting.Get(size)
	if err == nil && len(queue) > 0 {
		mate := queue[0]
		if len(queue) == 1 {
			r.waiting.Remove(size)
		} else {
			r.waiting.Set(size, queue[1:])
		}
		return mate, true
	}

	r.waiting.Set(size, append(queue, &Entry{Genome: offspring, ParentID: parentID}))
	return nil, false
}

// Waiting returns the number of entries waiting for a mate of the given
// genome size.
func (r *SizeHandler) Waiting(size int) int {
	queue, err := r.waiting.Get(size)
	if err != nil {
		return 0
	}
	return len(queue)
}

// WaitingTotal returns the number of entries waiting across all sizes.
func (r *SizeHandler) WaitingTotal() int {
	total := 0
	for _, queue := range r.waiting.Values() {
		total += len(queue)
	}
	return total
}

// Clear empties the chamber.
func (r *SizeHandler) Clear() {
	r.waiting.Clear()
}
