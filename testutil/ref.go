package testutil

import "slices"

// The reference kernels evaluate the fixed query set naively over plain
// rows. They are the ground truth every table layout is compared against.

// RefColumnSum returns the sum of column 0.
func RefColumnSum(rows [][]int32) int64 {
	var sum int64
	for _, row := range rows {
		sum += int64(row[0])
	}

	return sum
}

// RefPredicatedColumnSum returns the sum of column 0 over the rows with
// col1 > t1 and col2 < t2.
func RefPredicatedColumnSum(rows [][]int32, t1, t2 int32) int64 {
	var sum int64
	for _, row := range rows {
		if row[1] > t1 && row[2] < t2 {
			sum += int64(row[0])
		}
	}

	return sum
}

// RefPredicatedAllColumnsSum returns the sum over every column of the rows
// with col0 > threshold.
func RefPredicatedAllColumnsSum(rows [][]int32, threshold int32) int64 {
	var sum int64
	for _, row := range rows {
		if row[0] <= threshold {
			continue
		}

		for _, v := range row {
			sum += int64(v)
		}
	}

	return sum
}

// RefPredicatedUpdate adds col2 to col3 in every row with col0 < threshold,
// mutating rows in place, and returns the number of rows updated.
func RefPredicatedUpdate(rows [][]int32, threshold int32) int {
	var updated int
	for _, row := range rows {
		if row[0] < threshold {
			row[3] += row[2]
			updated++
		}
	}

	return updated
}

// CloneRows returns a deep copy of rows. The update kernel mutates its
// input, so callers clone before comparing mutated states.
func CloneRows(rows [][]int32) [][]int32 {
	out := make([][]int32, len(rows))
	for i, row := range rows {
		out[i] = slices.Clone(row)
	}

	return out
}
