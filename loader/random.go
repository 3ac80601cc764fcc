package loader

import (
	"context"
	"math/rand"
	"sync"
)

// RandomOptions contains configuration options for random dataset generation.
type RandomOptions struct {
	// MaxValue is the exclusive upper bound of generated field values.
	// Values are uniform in [0, MaxValue). A small value domain keeps the
	// per-value groupings of an indexed layout meaningful.
	MaxValue int32
}

// DefaultRandomOptions contains the default configuration options for random
// dataset generation.
var DefaultRandomOptions = RandomOptions{
	MaxValue: 1024,
}

// Random is a Loader generating a deterministic pseudo-random dataset: the
// same seed and shape always produce the same rows.
type Random struct {
	seed    int64
	numRows int
	numCols int
	opts    RandomOptions

	mu   sync.Mutex
	rows [][]int32
}

// NewRandom creates a random dataset Loader with numRows rows of numCols
// fields each.
func NewRandom(seed int64, numRows, numCols int, optFns ...func(o *RandomOptions)) *Random {
	opts := DefaultRandomOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MaxValue <= 0 {
		opts.MaxValue = DefaultRandomOptions.MaxValue
	}

	if numRows < 0 {
		numRows = 0
	}

	if numCols < 0 {
		numCols = 0
	}

	return &Random{
		seed:    seed,
		numRows: numRows,
		numCols: numCols,
		opts:    opts,
	}
}

// NumCols returns the number of fields per row.
func (l *Random) NumCols() int {
	return l.numCols
}

// NumRows returns the number of rows in the dataset.
func (l *Random) NumRows() int {
	return l.numRows
}

// Seed returns the generation seed.
func (l *Random) Seed() int64 {
	return l.seed
}

// Rows generates the dataset on first use and serves the cached rows
// afterwards.
func (l *Random) Rows(ctx context.Context) ([][]int32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rows == nil {
		rng := rand.New(rand.NewSource(l.seed))

		rows := make([][]int32, l.numRows)
		for i := range rows {
			row := make([]int32, l.numCols)
			for j := range row {
				row[j] = rng.Int31n(l.opts.MaxValue)
			}
			rows[i] = row
		}

		l.rows = rows
	}

	return l.rows, nil
}

var _ Loader = (*Random)(nil)
