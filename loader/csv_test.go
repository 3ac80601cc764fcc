package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	l, err := ReadCSV(strings.NewReader("1,5,100\n2,15,200\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, l.NumCols())
	assert.Equal(t, 2, l.NumRows())
	assert.Equal(t, [][]int32{{1, 5, 100}, {2, 15, 200}}, l.rows)
}

func TestReadCSVNegativeAndWhitespace(t *testing.T) {
	l, err := ReadCSV(strings.NewReader(" -1 , 2 \n3, -4 \n"))
	require.NoError(t, err)

	assert.Equal(t, [][]int32{{-1, 2}, {3, -4}}, l.rows)
}

func TestReadCSVHeader(t *testing.T) {
	input := "col0,col1\n10,20\n"

	_, err := ReadCSV(strings.NewReader(input))
	assert.Error(t, err, "header row is not numeric")

	l, err := ReadCSV(strings.NewReader(input), func(o *CSVOptions) {
		o.Header = true
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int32{{10, 20}}, l.rows)
}

func TestReadCSVComma(t *testing.T) {
	l, err := ReadCSV(strings.NewReader("1;2\n3;4\n"), func(o *CSVOptions) {
		o.Comma = ';'
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int32{{1, 2}, {3, 4}}, l.rows)
}

func TestReadCSVComment(t *testing.T) {
	l, err := ReadCSV(strings.NewReader("# generated\n1,2\n"), func(o *CSVOptions) {
		o.Comment = '#'
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int32{{1, 2}}, l.rows)
}

func TestReadCSVErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrNoRecords)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("col0,col1\n"), func(o *CSVOptions) {
			o.Header = true
		})
		assert.ErrorIs(t, err, ErrNoRecords)
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("1,2,3\n4,5\n"))
		assert.Error(t, err)
	})

	t.Run("non-integer field", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("1,abc\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"abc"`)
	})

	t.Run("out of int32 range", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("2147483648\n"))
		assert.Error(t, err)
	})
}
