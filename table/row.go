package table

import (
	"context"

	"github.com/hupe1980/tabgo/loader"
)

// RowTable stores the table row-major: the fields of one row are contiguous
// and the field at (row, col) lives at data[row*numCols+col].
//
// Whole-row queries profit from the placement, every qualifying row is one
// contiguous slice. Single-column queries pay for it with a strided scan.
type RowTable struct {
	numRows int
	numCols int
	data    []int32
}

// NewRowTable creates a new empty row-major table.
func NewRowTable() *RowTable {
	return &RowTable{}
}

// Load populates the table from l.
func (t *RowTable) Load(ctx context.Context, l loader.Loader) error {
	if t.data != nil {
		return ErrAlreadyLoaded
	}

	numCols, rows, err := fetch(ctx, l)
	if err != nil {
		return err
	}

	data := make([]int32, len(rows)*numCols)
	for i, row := range rows {
		copy(data[i*numCols:(i+1)*numCols], row)
	}

	t.numRows = len(rows)
	t.numCols = numCols
	t.data = data

	return nil
}

// NumRows returns the number of loaded rows.
func (t *RowTable) NumRows() int {
	return t.numRows
}

// NumCols returns the number of fields per row.
func (t *RowTable) NumCols() int {
	return t.numCols
}

// offset is the layout contract: row-major placement.
func (t *RowTable) offset(row, col int) int {
	return row*t.numCols + col
}

// GetIntField returns the field at (row, col).
func (t *RowTable) GetIntField(row, col int) int32 {
	return t.data[t.offset(row, col)]
}

// PutIntField replaces the field at (row, col) with value.
func (t *RowTable) PutIntField(row, col int, value int32) {
	t.data[t.offset(row, col)] = value
}

// ColumnSum returns the sum of column 0. Row-major placement makes this a
// strided scan: one field per row, numCols apart.
func (t *RowTable) ColumnSum() int64 {
	var sum int64
	for i := 0; i < len(t.data); i += t.numCols {
		sum += int64(t.data[i])
	}

	return sum
}

// PredicatedColumnSum returns the sum of column 0 over the rows with
// col1 > t1 and col2 < t2.
func (t *RowTable) PredicatedColumnSum(t1, t2 int32) int64 {
	var sum int64
	for base := 0; base < len(t.data); base += t.numCols {
		if t.data[base+1] > t1 && t.data[base+2] < t2 {
			sum += int64(t.data[base])
		}
	}

	return sum
}

// PredicatedAllColumnsSum returns the sum over every column of the rows with
// col0 > threshold. Each qualifying row is one contiguous region, the sweet
// spot of the row-major layout.
func (t *RowTable) PredicatedAllColumnsSum(threshold int32) int64 {
	var sum int64
	for base := 0; base < len(t.data); base += t.numCols {
		if t.data[base] <= threshold {
			continue
		}

		for _, v := range t.data[base : base+t.numCols] {
			sum += int64(v)
		}
	}

	return sum
}

// PredicatedUpdate adds col2 to col3 in every row with col0 < threshold and
// returns the number of rows updated.
func (t *RowTable) PredicatedUpdate(threshold int32) int {
	var updated int
	for base := 0; base < len(t.data); base += t.numCols {
		if t.data[base] < threshold {
			t.data[base+3] += t.data[base+2]
			updated++
		}
	}

	return updated
}

var _ Table = (*RowTable)(nil)
