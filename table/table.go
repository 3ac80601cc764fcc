package table

import (
	"context"
	"fmt"

	"github.com/hupe1980/tabgo/loader"
)

// Table is the query contract shared by all layouts. The fixed query set is
// small on purpose: each query stresses a different access pattern, so
// running the set against every layout exposes how physical placement pays
// off or backfires per pattern.
type Table interface {
	// Load populates the table from l. Load is single-shot: a second call
	// returns ErrAlreadyLoaded, and a failed call installs nothing, leaving
	// the table empty and loadable.
	Load(ctx context.Context, l loader.Loader) error

	// NumRows returns the number of loaded rows.
	NumRows() int

	// NumCols returns the number of fields per row.
	NumCols() int

	// GetIntField returns the field at (row, col).
	GetIntField(row, col int) int32

	// PutIntField replaces the field at (row, col) with value.
	PutIntField(row, col int, value int32)

	// ColumnSum implements
	//
	//	SELECT SUM(col0) FROM table;
	ColumnSum() int64

	// PredicatedColumnSum implements
	//
	//	SELECT SUM(col0) FROM table WHERE col1 > t1 AND col2 < t2;
	//
	// Both bounds are strict: rows matching a threshold exactly are
	// excluded.
	PredicatedColumnSum(t1, t2 int32) int64

	// PredicatedAllColumnsSum implements
	//
	//	SELECT SUM(col0) + SUM(col1) + ... + SUM(colN) FROM table
	//	WHERE col0 > threshold;
	PredicatedAllColumnsSum(threshold int32) int64

	// PredicatedUpdate implements
	//
	//	UPDATE table SET col3 = col3 + col2 WHERE col0 < threshold;
	//
	// It returns the number of rows updated. Repeating the call repeats the
	// addition; the update is cumulative, not idempotent.
	PredicatedUpdate(threshold int32) int
}

// fetch pulls the dataset out of l and validates its shape. Every layout
// loads through it, so a malformed dataset fails identically everywhere.
func fetch(ctx context.Context, l loader.Loader) (numCols int, rows [][]int32, err error) {
	numCols = l.NumCols()
	if numCols <= 0 {
		return 0, nil, &ErrColumnCount{NumCols: numCols}
	}

	rows, err = l.Rows(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("table: load rows: %w", err)
	}

	for i, row := range rows {
		if len(row) != numCols {
			return 0, nil, &ErrRowWidth{Row: i, Width: len(row), Expected: numCols}
		}
	}

	return numCols, rows, nil
}
