package benchmark_test

import (
	"context"
	"testing"
)

// BenchmarkLoad compares what each layout pays to install a dataset. The
// plain layouts copy the rows into one buffer; the indexed layout also
// builds an ordered index per column. The loader caches its rows, so every
// iteration after the first measures the install alone.
func BenchmarkLoad(b *testing.B) {
	shapes := []struct{ numRows, numCols int }{
		{10_000, 10},
		{100_000, 10},
	}

	for _, shape := range shapes {
		b.Run(formatShape(shape.numRows, shape.numCols), func(b *testing.B) {
			l := benchLoader(shape.numRows, shape.numCols)

			ctx := context.Background()
			if _, err := l.Rows(ctx); err != nil {
				b.Fatal(err)
			}

			for _, layout := range layouts {
				b.Run(layout.name, func(b *testing.B) {
					b.ReportAllocs()
					b.ResetTimer()

					for b.Loop() {
						tg := layout.build()
						if err := tg.Load(ctx, l); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		})
	}
}
