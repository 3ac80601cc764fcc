package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrUnsupportedFormat is returned when a dataset name carries an extension
// no reader is registered for.
var ErrUnsupportedFormat = errors.New("loader: unsupported dataset format")

// Open reads a dataset file. The format is chosen by extension (.csv or
// .tab), optionally wrapped in a compression extension (.gz, .zst, .lz4).
func Open(path string, optFns ...func(o *CSVOptions)) (*Slice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(filepath.Base(path), f, optFns...)
}

// Read parses a dataset from r, choosing format and compression by the
// extensions of name, as Open does for file paths. The CSV options only
// apply to CSV datasets.
func Read(name string, r io.Reader, optFns ...func(o *CSVOptions)) (*Slice, error) {
	name, dr, closeFn, err := decompress(name, r)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	switch ext := filepath.Ext(name); ext {
	case ".csv":
		return ReadCSV(dr, optFns...)
	case ".tab":
		return ReadBinary(dr)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// decompress peels a compression extension off name and wraps r in the
// matching decompressor. The returned cleanup releases decompressor
// resources; it never closes the underlying reader.
func decompress(name string, r io.Reader) (string, io.Reader, func(), error) {
	noop := func() {}

	switch filepath.Ext(name) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return name, nil, noop, fmt.Errorf("loader: gzip reader: %w", err)
		}
		return strings.TrimSuffix(name, ".gz"), zr, func() { _ = zr.Close() }, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return name, nil, noop, fmt.Errorf("loader: zstd reader: %w", err)
		}
		return strings.TrimSuffix(name, ".zst"), zr, zr.Close, nil
	case ".lz4":
		return strings.TrimSuffix(name, ".lz4"), lz4.NewReader(r), noop, nil
	default:
		return name, r, noop, nil
	}
}
