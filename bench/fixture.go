package bench

import (
	"context"

	"github.com/hupe1980/tabgo"
	"github.com/hupe1980/tabgo/loader"
	"golang.org/x/sync/errgroup"
)

// Defaults of the comparison workload: a wide table of uniform random rows.
// The thresholds sit low in the value domain, so the predicates are not very
// selective and index-driven plans have to earn their keep.
const (
	DefaultSeed    int64 = 42
	DefaultNumRows       = 100_000
	DefaultNumCols       = 100
)

// DefaultLoader returns the loader of the default comparison dataset.
func DefaultLoader() *loader.Random {
	return loader.NewRandom(DefaultSeed, DefaultNumRows, DefaultNumCols)
}

// FixtureOptions contains configuration options for fixture preparation.
type FixtureOptions struct {
	// IndexColumn is the primary column of the indexed layout.
	IndexColumn int
}

// Fixture holds one dataset loaded into every layout, ready for comparison
// runs. The tables start out identical, and Run keeps them identical because
// it executes each kernel on every layout, mutations included.
type Fixture struct {
	Row     *tabgo.Tabgo
	Column  *tabgo.Tabgo
	Indexed *tabgo.Tabgo

	numRows int
	numCols int
}

// NewFixture loads the dataset served by l into all three layouts.
func NewFixture(ctx context.Context, l loader.Loader, optFns ...func(o *FixtureOptions)) (*Fixture, error) {
	var opts FixtureOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	// Produce the dataset once up front; the parallel loads then copy from
	// the loader's cache.
	if _, err := l.Rows(ctx); err != nil {
		return nil, err
	}

	f := &Fixture{
		Row:     tabgo.RowMajor().MustBuild(),
		Column:  tabgo.ColumnMajor().MustBuild(),
		Indexed: tabgo.IndexedRowMajor(opts.IndexColumn).MustBuild(),
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, tg := range f.tables() {
		g.Go(func() error {
			return tg.Load(gctx, l)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	f.numRows = f.Row.NumRows()
	f.numCols = f.Row.NumCols()

	return f, nil
}

// NumRows returns the number of rows of the loaded dataset.
func (f *Fixture) NumRows() int {
	return f.numRows
}

// NumCols returns the number of fields per row of the loaded dataset.
func (f *Fixture) NumCols() int {
	return f.numCols
}

// tables returns the layouts in report order.
func (f *Fixture) tables() []*tabgo.Tabgo {
	return []*tabgo.Tabgo{f.Row, f.Column, f.Indexed}
}
