package birth

import (
	"testing"

	"github.com/evolib/evotable/pkg/genome"
	"github.com/evolib/evotable/pkg/hashtable"
	"github.com/tj/assert"
)

func TestSelectOffspring(t *testing.T) {
	r, err := NewSizeHandler()
	assert.NoError(t, err)

	parentA := hashtable.NextIdentity()
	parentB := hashtable.NextIdentity()

	// First offspring of its size waits.
	mate, ok := r.SelectOffspring(genome.Genome{0, 1, 2}, parentA)
	assert.False(t, ok)
	assert.Nil(t, mate)
	assert.Equal(t, 1, r.Waiting(3))

	// A different size does not pair.
	mate, ok = r.SelectOffspring(genome.Genome{0, 1, 2, 3}, parentB)
	assert.False(t, ok)
	assert.Nil(t, mate)
	assert.Equal(t, 2, r.WaitingTotal())

	// Matching size pairs with the waiting entry.
	mate, ok = r.SelectOffspring(genome.Genome{5, 6, 7}, parentB)
	assert.True(t, ok)
	assert.Equal(t, parentA, mate.ParentID)
	assert.Equal(t, genome.Genome{0, 1, 2}, mate.Genome)
	assert.Equal(t, 0, r.Waiting(3))
	assert.Equal(t, 1, r.WaitingTotal())
}

func TestSelectOffspringQueue(t *testing.T) {
	r, err := NewSizeHandler()
	assert.NoError(t, err)

	// Several unpaired offspring of one size queue up in arrival order.
	ids := make([]hashtable.Identity, 3)
	for i := range ids {
		ids[i] = hashtable.NextIdentity()
		_, ok := r.SelectOffspring(genome.Genome{1, 2}, ids[i])
		assert.False(t, ok)
	}
	assert.Equal(t, 3, r.Waiting(2))

	for i := range ids {
		mate, ok := r.SelectOffspring(genome.Genome{3, 4}, hashtable.NextIdentity())
		assert.True(t, ok)
		assert.Equal(t, ids[i], mate.ParentID)
	}
	assert.Equal(t, 0, r.WaitingTotal())
}

func TestClear(t *testing.T) {
	r, err := NewSizeHandler()
	assert.NoError(t, err)

	r.SelectOffspring(genome.Genome{1}, hashtable.NextIdentity())
	r.SelectOffspring(genome.Genome{1, 2}, hashtable.NextIdentity())
	assert.Equal(t, 2, r.WaitingTotal())

	r.Clear()
	assert.Equal(t, 0, r.WaitingTotal())
}
