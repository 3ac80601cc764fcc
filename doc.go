// Package tabgo provides an in-memory table layout microbenchmark for Go.
//
// Tabgo stores a fixed-schema table of 32-bit integer fields under three
// alternative physical layouts and runs a fixed set of query kernels over
// each, to compare how layout and indexing shape performance:
//
//   - Row-major: rows contiguous, cheap whole-row access
//   - Column-major: columns contiguous, cheap single-column access
//   - Indexed row-major: row-major plus an ordered value index per column,
//     predicate evaluation driven by index ranges
//
// All layouts answer the same four queries with identical semantics, so any
// measured difference is the layout's, not the workload's:
//
//	SELECT SUM(col0) FROM table;
//	SELECT SUM(col0) FROM table WHERE col1 > t1 AND col2 < t2;
//	SELECT SUM(col0) + ... + SUM(colN) FROM table WHERE col0 > threshold;
//	UPDATE table SET col3 = col3 + col2 WHERE col0 < threshold;
//
// # Quick Start
//
// Create a table with the fluent builder, load a dataset and query it:
//
//	ctx := context.Background()
//
//	tg, err := tabgo.IndexedRowMajor(0).Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := tg.Load(ctx, loader.NewRandom(42, 100_000, 100)); err != nil {
//	    log.Fatal(err)
//	}
//
//	sum := tg.PredicatedAllColumnsSum(50)
//
// Datasets can also come from files or object storage:
//
//	l, err := loader.Open("testdata/orders.csv.zst")
//	l, err := s3.Open(ctx, client, "benchmarks", "datasets/orders.tab.gz")
//
// # Comparing Layouts
//
// Package bench loads one dataset into all three layouts and times the
// kernels against each:
//
//	fx, _ := bench.NewFixture(ctx, loader.NewRandom(42, 100_000, 100))
//	report := fx.Run(bench.PredicatedAllColumnsSum(50))
//	report.WriteJSON(os.Stdout)
//
// # Concurrency
//
// Tables are single-writer structures: Load must complete before queries,
// and concurrent access of any kind requires external synchronization. The
// query kernels stay free of locks and atomics so that timings reflect the
// layouts themselves.
package tabgo
