package tabgo

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/tabgo/loader"
	"github.com/hupe1980/tabgo/table"
)

// Layout selects the physical placement of a table's fields.
type Layout int

// Constants representing the supported physical layouts.
const (
	// LayoutRowMajor stores the fields of one row contiguously.
	LayoutRowMajor Layout = iota

	// LayoutColumnMajor stores the fields of one column contiguously.
	LayoutColumnMajor

	// LayoutIndexedRowMajor stores rows contiguously and maintains an
	// ordered value index per column.
	LayoutIndexedRowMajor
)

// String returns a string representation of the Layout.
func (l Layout) String() string {
	switch l {
	case LayoutRowMajor:
		return "RowMajor"
	case LayoutColumnMajor:
		return "ColumnMajor"
	case LayoutIndexedRowMajor:
		return "IndexedRowMajor"
	default:
		return "Unknown"
	}
}

// Tabgo wraps one table layout behind the shared query contract and adds
// logging and metrics around loads and kernels. The field accessors
// GetIntField and PutIntField are not instrumented; per-access hooks would
// dominate the costs the kernels exist to compare.
type Tabgo struct {
	table   table.Table
	layout  Layout
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Tabgo instance with the given layout.
func New(layout Layout, optFns ...Option) (*Tabgo, error) {
	opts := applyOptions(optFns)

	var tbl table.Table
	switch layout {
	case LayoutRowMajor:
		tbl = table.NewRowTable()
	case LayoutColumnMajor:
		tbl = table.NewColumnTable()
	case LayoutIndexedRowMajor:
		tbl = table.NewIndexedRowTable(opts.indexColumn)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayout, layout)
	}

	return &Tabgo{
		table:   tbl,
		layout:  layout,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}, nil
}

// Layout returns the physical layout selected at construction.
func (tg *Tabgo) Layout() Layout {
	return tg.layout
}

// Load populates the table from l. Load is single-shot: a second call
// returns ErrAlreadyLoaded, and a failed call installs nothing, leaving the
// table loadable.
func (tg *Tabgo) Load(ctx context.Context, l loader.Loader) error {
	start := time.Now()
	err := tg.table.Load(ctx, l)
	tg.metrics.RecordLoad(tg.table.NumRows(), tg.table.NumCols(), time.Since(start), err)
	tg.logger.LogLoad(ctx, tg.layout, tg.table.NumRows(), tg.table.NumCols(), err)

	return err
}

// NumRows returns the number of loaded rows.
func (tg *Tabgo) NumRows() int {
	return tg.table.NumRows()
}

// NumCols returns the number of fields per row.
func (tg *Tabgo) NumCols() int {
	return tg.table.NumCols()
}

// GetIntField returns the field at (row, col).
func (tg *Tabgo) GetIntField(row, col int) int32 {
	return tg.table.GetIntField(row, col)
}

// PutIntField replaces the field at (row, col) with value.
func (tg *Tabgo) PutIntField(row, col int, value int32) {
	tg.table.PutIntField(row, col, value)
}

// ColumnSum returns the sum of column 0.
func (tg *Tabgo) ColumnSum() int64 {
	start := time.Now()
	sum := tg.table.ColumnSum()
	d := time.Since(start)

	tg.metrics.RecordQuery(QueryColumnSum, d)
	tg.logger.LogQuery(tg.layout, QueryColumnSum, d)

	return sum
}

// PredicatedColumnSum returns the sum of column 0 over the rows with
// col1 > t1 and col2 < t2. Both bounds are strict.
func (tg *Tabgo) PredicatedColumnSum(t1, t2 int32) int64 {
	start := time.Now()
	sum := tg.table.PredicatedColumnSum(t1, t2)
	d := time.Since(start)

	tg.metrics.RecordQuery(QueryPredicatedColumnSum, d)
	tg.logger.LogQuery(tg.layout, QueryPredicatedColumnSum, d)

	return sum
}

// PredicatedAllColumnsSum returns the sum over every column of the rows
// with col0 > threshold.
func (tg *Tabgo) PredicatedAllColumnsSum(threshold int32) int64 {
	start := time.Now()
	sum := tg.table.PredicatedAllColumnsSum(threshold)
	d := time.Since(start)

	tg.metrics.RecordQuery(QueryPredicatedAllColumnsSum, d)
	tg.logger.LogQuery(tg.layout, QueryPredicatedAllColumnsSum, d)

	return sum
}

// PredicatedUpdate adds col2 to col3 in every row with col0 < threshold and
// returns the number of rows updated. The update is cumulative: repeating
// the call repeats the addition.
func (tg *Tabgo) PredicatedUpdate(threshold int32) int {
	start := time.Now()
	updated := tg.table.PredicatedUpdate(threshold)
	d := time.Since(start)

	tg.metrics.RecordUpdate(updated, d)
	tg.logger.LogUpdate(tg.layout, updated, d)

	return updated
}

var _ table.Table = (*Tabgo)(nil)
