// Package testutil provides testing utilities for tabgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random integer datasets and for
// computing reference results of the fixed query set.
//
// # Random Dataset Generation
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.Rows(1000, 4, 1024) // 1000 rows, 4 cols, values in [0, 1024)
//
// # Reference Results (Ground Truth)
//
//	want := testutil.RefColumnSum(rows)
//
// The reference kernels evaluate the queries naively over plain rows, so
// every table layout can be checked against the same expected values.
package testutil
