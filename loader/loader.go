package loader

import (
	"context"
)

// Loader produces the dataset a table is built from.
//
// Implementations must be repeatable: Rows returns the same row set on every
// call. Rows must also be safe for concurrent callers, since one loader can
// feed several tables at once. Returned rows are the loader's own storage
// and must be treated as read-only by callers.
type Loader interface {
	// NumCols returns the number of fields per row.
	NumCols() int

	// Rows returns every row of the dataset in row id order. Each row holds
	// exactly NumCols fields.
	Rows(ctx context.Context) ([][]int32, error)
}

// Slice is a Loader serving rows held in memory. It is the terminal form of
// every file-backed source: parsing a dataset yields a Slice.
type Slice struct {
	numCols int
	rows    [][]int32
}

// FromRows creates a Loader from rows already in memory. The rows are not
// copied.
func FromRows(numCols int, rows [][]int32) *Slice {
	return &Slice{
		numCols: numCols,
		rows:    rows,
	}
}

// NumCols returns the number of fields per row.
func (l *Slice) NumCols() int {
	return l.numCols
}

// NumRows returns the number of rows in the dataset.
func (l *Slice) NumRows() int {
	return len(l.rows)
}

// Rows returns the in-memory rows.
func (l *Slice) Rows(ctx context.Context) ([][]int32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.rows, nil
}

var _ Loader = (*Slice)(nil)
