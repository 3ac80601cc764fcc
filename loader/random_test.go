package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomDeterministic(t *testing.T) {
	ctx := context.Background()

	a, err := NewRandom(42, 10, 10).Rows(ctx)
	require.NoError(t, err)

	b, err := NewRandom(42, 10, 10).Rows(ctx)
	require.NoError(t, err)

	assert.Equal(t, a, b, "same seed must produce the same dataset")

	c, err := NewRandom(43, 10, 10).Rows(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, a, c, "different seeds must diverge")
}

func TestRandomShape(t *testing.T) {
	ctx := context.Background()

	l := NewRandom(1, 7, 3)
	assert.Equal(t, 3, l.NumCols())
	assert.Equal(t, 7, l.NumRows())
	assert.Equal(t, int64(1), l.Seed())

	rows, err := l.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	for _, row := range rows {
		assert.Len(t, row, 3)
	}
}

func TestRandomValueBound(t *testing.T) {
	ctx := context.Background()

	l := NewRandom(7, 100, 4, func(o *RandomOptions) {
		o.MaxValue = 8
	})

	rows, err := l.Rows(ctx)
	require.NoError(t, err)

	for _, row := range rows {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, int32(0))
			assert.Less(t, v, int32(8))
		}
	}
}

func TestRandomCachesRows(t *testing.T) {
	ctx := context.Background()

	l := NewRandom(42, 5, 5)

	a, err := l.Rows(ctx)
	require.NoError(t, err)

	b, err := l.Rows(ctx)
	require.NoError(t, err)

	require.NotEmpty(t, a)
	assert.True(t, &a[0] == &b[0], "repeated calls must serve the cached dataset")
}

func TestRandomEmpty(t *testing.T) {
	ctx := context.Background()

	rows, err := NewRandom(1, 0, 4).Rows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Negative shapes collapse to empty instead of panicking.
	rows, err = NewRandom(1, -3, -2).Rows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRandomContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRandom(1, 1, 1).Rows(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
