package benchmark_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/tabgo"
	"github.com/hupe1980/tabgo/loader"
)

// layouts enumerates the compared layouts in a stable order.
var layouts = []struct {
	name  string
	build func() *tabgo.Tabgo
}{
	{name: "RowMajor", build: func() *tabgo.Tabgo { return tabgo.RowMajor().MustBuild() }},
	{name: "ColumnMajor", build: func() *tabgo.Tabgo { return tabgo.ColumnMajor().MustBuild() }},
	{name: "IndexedRowMajor", build: func() *tabgo.Tabgo { return tabgo.IndexedRowMajor(0).MustBuild() }},
}

func formatShape(numRows, numCols int) string {
	return fmt.Sprintf("%dx%d", numRows, numCols)
}

// benchLoader returns the seeded dataset shared by the benchmarks of one
// shape. Field values stay uniform in the default [0, 1024) domain; the
// thresholds 50 and 973 sit about five percent from either end of it, and
// the variant names state what each predicate direction makes of that.
func benchLoader(numRows, numCols int) *loader.Random {
	return loader.NewRandom(1, numRows, numCols)
}

// newLoadedTable builds a table of the given layout and fills it from l.
func newLoadedTable(b *testing.B, build func() *tabgo.Tabgo, l loader.Loader) *tabgo.Tabgo {
	b.Helper()

	tg := build()
	if err := tg.Load(context.Background(), l); err != nil {
		b.Fatal(err)
	}

	return tg
}
