package hashtable

import (
	"cmp"
	"sync/atomic"
)

// Identity is a stable numeric id used to key entries by object identity.
// Ids are minted once at object creation and never reused, so the same
// object always hashes to the same bucket for a given table size.
type Identity int64

var identitySeq atomic.Int64

// NextIdentity returns a fresh process-unique Identity.
func NextIdentity() Identity {
	return Identity(identitySeq.Add(1))
}

// HashFn maps a key to a bucket index in [0, tableSize).
type HashFn[K cmp.Ordered] func(key K, tableSize int) int

// HashInt buckets an integer key by plain modulo.
func HashInt(key int, tableSize int) int {
	return abs(key % tableSize)
}

// HashIdentity buckets an identity key. The two-bit shift keeps the
// distribution of ids that grow in small strides from clustering in
// neighboring buckets.
func HashIdentity(key Identity, tableSize int) int {
	return abs(int(key>>2) % tableSize)
}

// HashString buckets a text key by summing its byte values. Cheap, but
// permutations collide: "ABC", "CBA" and "BBB" share a bucket.
func HashString(key string, tableSize int) int {
	sum := 0
	for i := 0; i < len(key); i++ {
		sum += int(key[i])
	}
	return sum % tableSize
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
