package table

import (
	"context"

	"github.com/hupe1980/tabgo/loader"
)

// ColumnTable stores the table column-major: the fields of one column are
// contiguous and the field at (row, col) lives at data[col*numRows+row].
//
// Queries touching few columns profit from the placement, each needed column
// is one contiguous scan. Whole-row queries pay for it: a row is scattered
// across every column array, numRows apart.
type ColumnTable struct {
	numRows int
	numCols int
	data    []int32
}

// NewColumnTable creates a new empty column-major table.
func NewColumnTable() *ColumnTable {
	return &ColumnTable{}
}

// Load populates the table from l.
func (t *ColumnTable) Load(ctx context.Context, l loader.Loader) error {
	if t.data != nil {
		return ErrAlreadyLoaded
	}

	numCols, rows, err := fetch(ctx, l)
	if err != nil {
		return err
	}

	data := make([]int32, len(rows)*numCols)
	for i, row := range rows {
		for j, v := range row {
			data[j*len(rows)+i] = v
		}
	}

	t.numRows = len(rows)
	t.numCols = numCols
	t.data = data

	return nil
}

// NumRows returns the number of loaded rows.
func (t *ColumnTable) NumRows() int {
	return t.numRows
}

// NumCols returns the number of fields per row.
func (t *ColumnTable) NumCols() int {
	return t.numCols
}

// offset is the layout contract: column-major placement.
func (t *ColumnTable) offset(row, col int) int {
	return col*t.numRows + row
}

// GetIntField returns the field at (row, col).
func (t *ColumnTable) GetIntField(row, col int) int32 {
	return t.data[t.offset(row, col)]
}

// PutIntField replaces the field at (row, col) with value.
func (t *ColumnTable) PutIntField(row, col int, value int32) {
	t.data[t.offset(row, col)] = value
}

// col returns the contiguous array of column c.
func (t *ColumnTable) col(c int) []int32 {
	return t.data[c*t.numRows : (c+1)*t.numRows]
}

// ColumnSum returns the sum of column 0, a single contiguous scan.
func (t *ColumnTable) ColumnSum() int64 {
	var sum int64
	for _, v := range t.col(0) {
		sum += int64(v)
	}

	return sum
}

// PredicatedColumnSum returns the sum of column 0 over the rows with
// col1 > t1 and col2 < t2. Only the three involved column arrays are read.
func (t *ColumnTable) PredicatedColumnSum(t1, t2 int32) int64 {
	col0, col1, col2 := t.col(0), t.col(1), t.col(2)

	var sum int64
	for row, v := range col1 {
		if v > t1 && col2[row] < t2 {
			sum += int64(col0[row])
		}
	}

	return sum
}

// PredicatedAllColumnsSum returns the sum over every column of the rows with
// col0 > threshold. Each qualifying row is gathered from every column array,
// the worst case of the column-major layout.
func (t *ColumnTable) PredicatedAllColumnsSum(threshold int32) int64 {
	var sum int64
	for row, v := range t.col(0) {
		if v <= threshold {
			continue
		}

		for i := row; i < len(t.data); i += t.numRows {
			sum += int64(t.data[i])
		}
	}

	return sum
}

// PredicatedUpdate adds col2 to col3 in every row with col0 < threshold and
// returns the number of rows updated.
func (t *ColumnTable) PredicatedUpdate(threshold int32) int {
	col0, col2, col3 := t.col(0), t.col(2), t.col(3)

	var updated int
	for row, v := range col0 {
		if v < threshold {
			col3[row] += col2[row]
			updated++
		}
	}

	return updated
}

var _ Table = (*ColumnTable)(nil)
