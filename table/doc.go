// Package table provides three physical layouts of the same logical table:
// a fixed-width grid of int32 fields addressed by zero-based (row, col).
//
// All layouts satisfy the Table interface, so a workload can be run against
// each of them and compared. The layouts differ only in how cells are placed
// in memory and what auxiliary structures they maintain:
//
//   - RowTable: row-major, the field at (row, col) lives at
//     data[row*numCols+col]. Whole-row work touches one contiguous region.
//   - ColumnTable: column-major, the field at (row, col) lives at
//     data[col*numRows+row]. Single-column work is one contiguous scan.
//   - IndexedRowTable: row-major plus an ordered value index per column,
//     trading load time and memory for index-driven predicate evaluation.
//
// The query kernels assume the fixed schema of the workload: column 0 is the
// sum and primary predicate column, columns 1 and 2 carry the range
// predicates, column 3 is the update target. Tables narrower than a kernel
// needs are outside the contract, as is any out-of-range (row, col).
//
// Tables are not safe for concurrent use; a single writer requires external
// synchronization.
package table
