package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int31n returns a non-negative pseudo-random int32 in [0,n).
func (r *RNG) Int31n(n int32) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int31n(n)
}

// Int31 returns a non-negative pseudo-random int32.
func (r *RNG) Int31() int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int31()
}

// Rows generates numRows rows of numCols fields each, with values uniform in
// [0, maxValue). Uses a single backing array for efficiency.
func (r *RNG) Rows(numRows, numCols int, maxValue int32) [][]int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]int32, numRows*numCols)
	rows := make([][]int32, numRows)

	for i := range numRows {
		row := data[i*numCols : (i+1)*numCols]
		for j := range row {
			row[j] = r.rand.Int31n(maxValue)
		}
		rows[i] = row
	}

	return rows
}
