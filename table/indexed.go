package table

import (
	"context"
	"fmt"

	"github.com/hupe1980/tabgo/index"
	"github.com/hupe1980/tabgo/internal/conv"
	"github.com/hupe1980/tabgo/loader"
)

// IndexedRowTable stores the table row-major, exactly like RowTable, and
// additionally maintains an ordered value index per column: value -> ids of
// the rows carrying it, in insertion order. Predicated queries resolve their
// thresholds against the indexes and only ever visit candidate rows, so
// their cost follows predicate selectivity instead of table size.
//
// Every column is indexed. The indexColumn construction parameter marks the
// column the workload designates as primary; the fixed query set hard-codes
// its predicate columns, so the parameter is descriptive only.
type IndexedRowTable struct {
	numRows     int
	numCols     int
	indexColumn int
	data        []int32
	indexes     []*index.Ordered
}

// NewIndexedRowTable creates a new empty indexed row-major table.
func NewIndexedRowTable(indexColumn int) *IndexedRowTable {
	return &IndexedRowTable{
		indexColumn: indexColumn,
	}
}

// Load populates the table from l and builds the per-column indexes.
func (t *IndexedRowTable) Load(ctx context.Context, l loader.Loader) error {
	if t.data != nil {
		return ErrAlreadyLoaded
	}

	numCols, rows, err := fetch(ctx, l)
	if err != nil {
		return err
	}

	// Postings hold row ids as uint32.
	if _, err := conv.IntToUint32(len(rows)); err != nil {
		return fmt.Errorf("table: row count: %w", err)
	}

	data := make([]int32, len(rows)*numCols)

	indexes := make([]*index.Ordered, numCols)
	for c := range indexes {
		indexes[c] = index.NewOrdered()
	}

	for i, row := range rows {
		copy(data[i*numCols:(i+1)*numCols], row)
		for c, v := range row {
			indexes[c].Add(v, uint32(i))
		}
	}

	// Sort the key views now so the first query does not pay for them.
	for _, ix := range indexes {
		ix.Sort()
	}

	t.numRows = len(rows)
	t.numCols = numCols
	t.data = data
	t.indexes = indexes

	return nil
}

// NumRows returns the number of loaded rows.
func (t *IndexedRowTable) NumRows() int {
	return t.numRows
}

// NumCols returns the number of fields per row.
func (t *IndexedRowTable) NumCols() int {
	return t.numCols
}

// IndexColumn returns the column declared primary at construction.
func (t *IndexedRowTable) IndexColumn() int {
	return t.indexColumn
}

// offset is the layout contract: row-major placement.
func (t *IndexedRowTable) offset(row, col int) int {
	return row*t.numCols + col
}

// GetIntField returns the field at (row, col).
func (t *IndexedRowTable) GetIntField(row, col int) int32 {
	return t.data[t.offset(row, col)]
}

// PutIntField replaces the field at (row, col) with value and records row in
// the column's index under value.
//
// Index maintenance is append-only: the posting under the previous value is
// not removed, so a range scan over a mutated column can still report the
// row under its old value. The fixed query set never ranges over a column it
// mutates, which keeps the shortcut invisible; callers issuing their own
// writes must not range over columns they have overwritten.
func (t *IndexedRowTable) PutIntField(row, col int, value int32) {
	t.data[t.offset(row, col)] = value
	t.indexes[col].Add(value, uint32(row))
}

// ColumnSum returns the sum of column 0. The query has no predicate, so the
// indexes cannot narrow it: a plain strided scan, as in RowTable.
func (t *IndexedRowTable) ColumnSum() int64 {
	var sum int64
	for i := 0; i < len(t.data); i += t.numCols {
		sum += int64(t.data[i])
	}

	return sum
}

// PredicatedColumnSum returns the sum of column 0 over the rows with
// col1 > t1 and col2 < t2. Both predicates resolve against their column's
// index: the matching ranges are unioned into one row set each, the two sets
// intersected, and only the surviving rows are read.
func (t *IndexedRowTable) PredicatedColumnSum(t1, t2 int32) int64 {
	matched := index.NewRowSet()
	for _, rows := range t.indexes[1].Tail(t1) {
		matched.AddMany(rows)
	}

	below := index.NewRowSet()
	for _, rows := range t.indexes[2].Head(t2) {
		below.AddMany(rows)
	}

	matched.And(below)

	var sum int64
	for row := range matched.Iterator() {
		sum += int64(t.data[t.offset(int(row), 0)])
	}

	return sum
}

// PredicatedAllColumnsSum returns the sum over every column of the rows with
// col0 > threshold. A single predicate needs no row set: the tail range of
// column 0's index enumerates exactly the qualifying rows, each summed as
// one contiguous row-major region.
func (t *IndexedRowTable) PredicatedAllColumnsSum(threshold int32) int64 {
	var sum int64
	for _, rows := range t.indexes[0].Tail(threshold) {
		for _, row := range rows {
			base := t.offset(int(row), 0)
			for _, v := range t.data[base : base+t.numCols] {
				sum += int64(v)
			}
		}
	}

	return sum
}

// PredicatedUpdate adds col2 to col3 in every row with col0 < threshold and
// returns the number of rows updated. Candidates come from the head range of
// column 0's index; each write goes through PutIntField and therefore grows
// column 3's index. Column 0 is not modified, so the range being walked
// stays intact.
func (t *IndexedRowTable) PredicatedUpdate(threshold int32) int {
	var updated int
	for _, rows := range t.indexes[0].Head(threshold) {
		for _, row := range rows {
			r := int(row)
			t.PutIntField(r, 3, t.GetIntField(r, 3)+t.GetIntField(r, 2))
			updated++
		}
	}

	return updated
}

var _ Table = (*IndexedRowTable)(nil)
