package hashtable

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	cases := map[string]struct {
		size        int
		hash        HashFn[int]
		expectedErr bool
	}{
		"Default":     {size: SizeDefault, hash: HashInt},
		"Large":       {size: SizeLarge, hash: HashInt},
		"SizeOne":     {size: 1, hash: HashInt},
		"ErrorSize":   {size: 0, hash: HashInt, expectedErr: true},
		"ErrorNoHash": {size: SizeDefault, hash: nil, expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := New[int, string](tc.size, tc.hash)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 0, r.Count())
			assert.Equal(t, tc.size, r.TableSize())
		})
	}
}

func TestSetGet(t *testing.T) {
	cases := map[string]struct {
		size    int
		entries map[string]int
	}{
		"Normal": {
			size:    SizeDefault,
			entries: map[string]int{"a": 1, "b": 2, "walk": 3},
		},
		"SingleBucket": {
			size:    1,
			entries: map[string]int{"a": 1, "b": 2, "c": 3, "d": 4},
		},
		"Anagrams": {
			// "ABC", "CBA" and "BBB" hash to the same bucket.
			size:    SizeDefault,
			entries: map[string]int{"ABC": 1, "CBA": 2, "BBB": 3},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewString[int](tc.size)
			assert.NoError(t, err)

			for key, d := range tc.entries {
				r.Set(key, d)
			}
			assert.Equal(t, len(tc.entries), r.Count())
			for key, d := range tc.entries {
				got, err := r.Get(key)
				assert.NoError(t, err)
				assert.Equal(t, d, got)
			}
			_, err = r.Get("nosuchkey")
			assert.ErrorIs(t, err, ErrNotFound)
			assert.NoError(t, r.(*table[string, int]).check())
		})
	}
}

func TestSetOverwrites(t *testing.T) {
	r, err := NewString[int](SizeDefault)
	assert.NoError(t, err)

	for i := 0; i < 10; i++ {
		r.Set("x", i)
	}
	assert.Equal(t, 1, r.Count())
	got, err := r.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, 9, got)
}

func TestAddShadowing(t *testing.T) {
	r, err := NewString[int](SizeDefault)
	assert.NoError(t, err)

	r.Add("dup", 1)
	r.Add("dup", 2)
	assert.Equal(t, 2, r.Count())

	// The newest entry shadows the oldest.
	got, err := r.Get("dup")
	assert.NoError(t, err)
	assert.Equal(t, 2, got)

	// Removing once uncovers the older entry again.
	removed, err := r.Remove("dup")
	assert.NoError(t, err)
	assert.Equal(t, 2, removed)
	got, err = r.Get("dup")
	assert.NoError(t, err)
	assert.Equal(t, 1, got)

	removed, err = r.Remove("dup")
	assert.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.False(t, r.Has("dup"))
	assert.Equal(t, 0, r.Count())
}

func TestRemove(t *testing.T) {
	cases := map[string]struct {
		entries map[int]string
		remove  int
	}{
		"Head":    {entries: map[int]string{1: "a"}, remove: 1},
		"Run":     {entries: map[int]string{5: "a", 28: "b", 51: "c"}, remove: 28},
		"RunHead": {entries: map[int]string{5: "a", 28: "b", 51: "c"}, remove: 51},
		"RunTail": {entries: map[int]string{5: "a", 28: "b", 51: "c"}, remove: 5},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewInt[string](SizeDefault)
			assert.NoError(t, err)
			for key, d := range tc.entries {
				r.Set(key, d)
			}

			got, err := r.Remove(tc.remove)
			assert.NoError(t, err)
			assert.Equal(t, tc.entries[tc.remove], got)
			assert.False(t, r.Has(tc.remove))
			assert.Equal(t, len(tc.entries)-1, r.Count())

			for key, d := range tc.entries {
				if key == tc.remove {
					continue
				}
				got, err := r.Get(key)
				assert.NoError(t, err)
				assert.Equal(t, d, got)
			}
			assert.NoError(t, r.(*table[int, string]).check())
		})
	}
}

func TestRemoveEmptyBucketPanics(t *testing.T) {
	r, err := NewInt[string](SizeDefault)
	assert.NoError(t, err)
	r.Set(1, "a")

	assert.Panics(t, func() {
		r.Remove(2)
	})
}

func TestRemoveMissInBucket(t *testing.T) {
	r, err := NewInt[string](SizeDefault)
	assert.NoError(t, err)
	// 5 and 28 share bucket 5; removing 51 hits a non-empty bucket
	// without a match.
	r.Set(5, "a")
	r.Set(28, "b")

	_, err = r.Remove(51)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, r.Count())
	assert.NoError(t, r.(*table[int, string]).check())
}

func TestResize(t *testing.T) {
	cases := map[string]struct {
		newSize     int
		expectedErr bool
	}{
		"Grow":   {newSize: SizeMedium},
		"Shrink": {newSize: 3},
		"One":    {newSize: 1},
		"Error":  {newSize: 0, expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewString[int](SizeDefault)
			assert.NoError(t, err)
			for i := 0; i < 100; i++ {
				r.Set(fmt.Sprintf("key-%d", i), i)
			}
			wantKeys, wantValues := r.Pairs()

			err = r.Resize(tc.newSize)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.newSize, r.TableSize())
			assert.Equal(t, 100, r.Count())

			gotKeys, gotValues := r.Pairs()
			if diff := cmp.Diff(wantKeys, gotKeys); diff != "" {
				t.Errorf("keys changed across resize: %s", diff)
			}
			if diff := cmp.Diff(wantValues, gotValues); diff != "" {
				t.Errorf("values changed across resize: %s", diff)
			}
			assert.NoError(t, r.(*table[string, int]).check())
		})
	}
}

func TestPairsSorted(t *testing.T) {
	r, err := NewString[int](SizeDefault)
	assert.NoError(t, err)
	for i, key := range []string{"walrus", "ant", "newt", "bat", "cats"} {
		r.Set(key, i)
	}

	keys, values := r.Pairs()
	assert.Equal(t, []string{"ant", "bat", "cats", "newt", "walrus"}, keys)
	assert.Equal(t, []int{1, 3, 4, 2, 0}, values)
}

func TestValues(t *testing.T) {
	r, err := NewInt[string](SizeDefault)
	assert.NoError(t, err)
	for i := 0; i < 10; i++ {
		r.Set(i, fmt.Sprintf("v%d", i))
	}

	values := r.Values()
	assert.Len(t, values, 10)
	values = r.AppendValues(values)
	assert.Len(t, values, 20)
}

func TestIterate(t *testing.T) {
	r, err := NewString[int](SizeDefault)
	assert.NoError(t, err)
	entries := map[string]int{"a": 1, "b": 2, "c": 3}
	for key, d := range entries {
		r.Set(key, d)
	}

	got := map[string]int{}
	it := r.Iterate()
	for it.Next() {
		got[it.Key()] = it.Value()
		assert.Equal(t, HashString(it.Key(), r.TableSize()), it.Bucket())
	}
	assert.Equal(t, entries, got)
}

func TestClear(t *testing.T) {
	r, err := NewString[int](SizeDefault)
	assert.NoError(t, err)
	for i := 0; i < 50; i++ {
		r.Set(fmt.Sprintf("key-%d", i), i)
	}

	r.Clear()
	assert.Equal(t, 0, r.Count())
	assert.False(t, r.Has("key-0"))
	assert.NoError(t, r.(*table[string, int]).check())

	r.Set("key-0", 1)
	assert.Equal(t, 1, r.Count())
}

func TestIdentityTable(t *testing.T) {
	r, err := NewIdentity[string](SizeDefault)
	assert.NoError(t, err)

	a := NextIdentity()
	b := NextIdentity()
	assert.NotEqual(t, a, b)

	r.Set(a, "a")
	r.Set(b, "b")
	got, err := r.Get(a)
	assert.NoError(t, err)
	assert.Equal(t, "a", got)
}

// TestRandomOps drives a table through random mutations and validates the
// bucket-run structure after every step.
func TestRandomOps(t *testing.T) {
	r, err := NewInt[int](7)
	assert.NoError(t, err)
	tbl := r.(*table[int, int])
	rng := rand.New(rand.NewSource(1))
	live := map[int]int{}

	for step := 0; step < 5000; step++ {
		key := rng.Intn(40)
		switch op := rng.Intn(10); {
		case op < 5:
			live[key] = step
			r.Set(key, step)
		case op < 8:
			if r.Has(key) {
				delete(live, key)
				_, err := r.Remove(key)
				assert.NoError(t, err)
			}
		case op == 8:
			if err := r.Resize(1 + rng.Intn(50)); err != nil {
				t.Fatalf("step %d: resize: %v", step, err)
			}
		default:
			got, err := r.Get(key)
			if want, ok := live[key]; ok {
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			} else {
				assert.True(t, errors.Is(err, ErrNotFound))
			}
		}
		if err := tbl.check(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
	}
	assert.Equal(t, len(live), r.Count())
}

// TestLockedSharing exercises the documented sharing discipline: one lock
// wrapped around every call, one writer, several readers.
func TestLockedSharing(t *testing.T) {
	r, err := NewString[int](SizeDefault)
	assert.NoError(t, err)
	tbl := r.(*table[string, int])
	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			key := fmt.Sprintf("key-%d", i%20)
			mu.Lock()
			if i%7 == 0 && r.Has(key) {
				r.Remove(key)
			} else {
				r.Set(key, i)
			}
			if err := tbl.check(); err != nil {
				t.Error(err)
			}
			mu.Unlock()
		}
	}()
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				key := fmt.Sprintf("key-%d", i%20)
				mu.Lock()
				if r.Has(key) {
					if _, err := r.Get(key); err != nil {
						t.Error(err)
					}
				}
				mu.Unlock()
			}
		}(g)
	}
	wg.Wait()
	assert.NoError(t, tbl.check())
}
