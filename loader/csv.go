package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoRecords is returned when a CSV dataset contains no records, leaving
// the dataset width undefined.
var ErrNoRecords = errors.New("loader: dataset has no records")

// CSVOptions contains configuration options for CSV parsing.
type CSVOptions struct {
	// Comma is the field delimiter.
	Comma rune

	// Header skips the first record.
	Header bool

	// Comment, when non-zero, causes lines starting with it to be ignored.
	Comment rune
}

// DefaultCSVOptions contains the default configuration options for CSV
// parsing.
var DefaultCSVOptions = CSVOptions{
	Comma: ',',
}

// ReadCSV parses an integer CSV dataset from r. The width of the first
// record defines the dataset width; records of a different width fail the
// parse.
func ReadCSV(r io.Reader, optFns ...func(o *CSVOptions)) (*Slice, error) {
	opts := DefaultCSVOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	cr.Comment = opts.Comment
	cr.ReuseRecord = true

	if opts.Header {
		if _, err := cr.Read(); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("loader: read csv header: %w", err)
		}
	}

	var (
		rows    [][]int32
		numCols int
	)

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: read csv: %w", err)
		}

		if numCols == 0 {
			numCols = len(rec)
		}

		row := make([]int32, len(rec))
		for i, f := range rec {
			v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 32)
			if err != nil {
				line, _ := cr.FieldPos(i)
				return nil, fmt.Errorf("loader: csv line %d: parse field %q: %w", line, f, err)
			}
			row[i] = int32(v)
		}

		rows = append(rows, row)
	}

	if numCols == 0 {
		return nil, ErrNoRecords
	}

	return FromRows(numCols, rows), nil
}
