package index

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ordered maps int32 keys to postings: the ids of the rows carrying that key,
// in insertion order. Distinct keys are kept sorted ascending so that the two
// open half ranges the query kernels need (strictly greater than a bound,
// strictly less than a bound) resolve with a single binary search.
//
// The sorted key view is maintained lazily: Add marks it dirty when it sees a
// new key and the next range scan rebuilds it. A bulk load therefore pays one
// sort, and point writes between scans stay O(1) amortized.
//
// Ordered is not safe for concurrent use, and mutating it invalidates any
// open range scan.
type Ordered struct {
	postings map[int32][]uint32
	keys     []int32
	dirty    bool
}

// NewOrdered creates a new empty ordered index.
func NewOrdered() *Ordered {
	return &Ordered{
		postings: make(map[int32][]uint32),
	}
}

// Add appends row to the postings of key.
func (ix *Ordered) Add(key int32, row uint32) {
	rows, ok := ix.postings[key]
	if !ok {
		ix.dirty = true
	}
	ix.postings[key] = append(rows, row)
}

// Sort rebuilds the ascending key view now instead of on the next range
// scan. Bulk loaders call it once after the last Add so the first scan does
// not pay the sort.
func (ix *Ordered) Sort() {
	ix.sortedKeys()
}

// Len returns the number of distinct keys.
func (ix *Ordered) Len() int {
	return len(ix.postings)
}

// Rows returns the postings of key, nil when the key is absent. The returned
// slice is the index's own storage; callers must not mutate it.
func (ix *Ordered) Rows(key int32) []uint32 {
	return ix.postings[key]
}

// Tail yields every (key, postings) pair with key strictly greater than
// after, in ascending key order.
func (ix *Ordered) Tail(after int32) iter.Seq2[int32, []uint32] {
	return func(yield func(int32, []uint32) bool) {
		keys := ix.sortedKeys()
		i := sort.Search(len(keys), func(i int) bool { return keys[i] > after })
		for ; i < len(keys); i++ {
			if !yield(keys[i], ix.postings[keys[i]]) {
				return
			}
		}
	}
}

// Head yields every (key, postings) pair with key strictly less than before,
// in ascending key order.
func (ix *Ordered) Head(before int32) iter.Seq2[int32, []uint32] {
	return func(yield func(int32, []uint32) bool) {
		keys := ix.sortedKeys()
		n := sort.Search(len(keys), func(i int) bool { return keys[i] >= before })
		for i := 0; i < n; i++ {
			if !yield(keys[i], ix.postings[keys[i]]) {
				return
			}
		}
	}
}

// sortedKeys rebuilds the ascending key view if new keys arrived since the
// last scan.
func (ix *Ordered) sortedKeys() []int32 {
	if ix.dirty {
		ix.keys = slices.Sorted(maps.Keys(ix.postings))
		ix.dirty = false
	}
	return ix.keys
}
