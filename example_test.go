package tabgo_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hupe1980/tabgo"
	"github.com/hupe1980/tabgo/loader"
)

func demoLoader() *loader.Slice {
	return loader.FromRows(4, [][]int32{
		{1, 5, 100, 1000},
		{2, 15, 200, 2000},
		{3, 25, 300, 3000},
	})
}

// Example_rowMajor demonstrates creating a row-major table with the fluent
// builder and summing a column.
func Example_rowMajor() {
	ctx := context.Background()

	tg, err := tabgo.RowMajor().Build()
	if err != nil {
		log.Fatal(err)
	}

	if err := tg.Load(ctx, demoLoader()); err != nil {
		log.Fatal(err)
	}

	// SELECT SUM(col0) FROM table;
	fmt.Printf("Column sum: %d\n", tg.ColumnSum())
	// Output: Column sum: 6
}

// Example_columnMajor demonstrates a predicated sum on a column-major table.
func Example_columnMajor() {
	ctx := context.Background()

	tg, err := tabgo.ColumnMajor().Build()
	if err != nil {
		log.Fatal(err)
	}

	if err := tg.Load(ctx, demoLoader()); err != nil {
		log.Fatal(err)
	}

	// SELECT SUM(col0) FROM table WHERE col1 > 10 AND col2 < 250;
	fmt.Printf("Predicated column sum: %d\n", tg.PredicatedColumnSum(10, 250))
	// Output: Predicated column sum: 2
}

// Example_indexedRowMajor demonstrates an indexed row-major table answering
// a predicated whole-row sum through its column indexes.
func Example_indexedRowMajor() {
	ctx := context.Background()

	tg, err := tabgo.IndexedRowMajor(0).Build()
	if err != nil {
		log.Fatal(err)
	}

	if err := tg.Load(ctx, demoLoader()); err != nil {
		log.Fatal(err)
	}

	// SELECT SUM(col0) + ... + SUM(colN) FROM table WHERE col0 > 1;
	fmt.Printf("All-columns sum: %d\n", tg.PredicatedAllColumnsSum(1))
	// Output: All-columns sum: 5545
}

// Example_predicatedUpdate demonstrates the update kernel.
func Example_predicatedUpdate() {
	ctx := context.Background()

	tg := tabgo.RowMajor().MustBuild()
	if err := tg.Load(ctx, demoLoader()); err != nil {
		log.Fatal(err)
	}

	// UPDATE table SET col3 = col3 + col2 WHERE col0 < 2;
	updated := tg.PredicatedUpdate(2)

	fmt.Printf("Updated %d row(s), field (0,3) is now %d\n", updated, tg.GetIntField(0, 3))
	// Output: Updated 1 row(s), field (0,3) is now 1100
}

// Example_randomDataset demonstrates loading a seeded random dataset.
func Example_randomDataset() {
	ctx := context.Background()

	tg := tabgo.ColumnMajor().MustBuild()
	if err := tg.Load(ctx, loader.NewRandom(42, 10_000, 10)); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Loaded %d rows with %d columns\n", tg.NumRows(), tg.NumCols())
	// Output: Loaded 10000 rows with 10 columns
}

// Example_csv demonstrates loading a table from a CSV file.
func Example_csv() {
	path := "./example_table.csv"
	defer os.Remove(path) // Cleanup after example

	data := []byte("1,5,100,1000\n2,15,200,2000\n3,25,300,3000\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.Fatal(err)
	}

	l, err := loader.Open(path)
	if err != nil {
		log.Fatal(err)
	}

	tg := tabgo.RowMajor().MustBuild()
	if err := tg.Load(context.Background(), l); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Column sum: %d\n", tg.ColumnSum())
	// Output: Column sum: 6
}

// Example_metrics demonstrates collecting operational metrics.
func Example_metrics() {
	ctx := context.Background()
	metrics := &tabgo.BasicMetricsCollector{}

	tg, err := tabgo.IndexedRowMajor(0).
		Metrics(metrics).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	if err := tg.Load(ctx, demoLoader()); err != nil {
		log.Fatal(err)
	}

	tg.ColumnSum()
	tg.PredicatedColumnSum(10, 250)
	tg.PredicatedAllColumnsSum(1)

	stats := metrics.GetStats()
	fmt.Printf("Loads: %d, Queries: %d\n", stats.LoadCount, stats.QueryCount)
	// Output: Loads: 1, Queries: 3
}
