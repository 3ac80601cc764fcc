package loader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/hupe1980/tabgo/field"
	"github.com/hupe1980/tabgo/internal/conv"
)

const (
	// FormatMagic identifies binary table dataset files (ASCII: "TAB0")
	FormatMagic uint32 = 0x54414230

	// FormatVersion is the current binary dataset format version
	FormatVersion uint32 = 1

	// headerSize is the size of the dataset header in bytes
	headerSize = 16
)

var (
	// ErrInvalidMagic is returned when a dataset has an invalid magic number.
	ErrInvalidMagic = errors.New("loader: invalid magic number")

	// ErrInvalidVersion is returned when a dataset has an unsupported version.
	ErrInvalidVersion = errors.New("loader: unsupported format version")

	// ErrCorrupted is returned when a dataset fails checksum validation.
	ErrCorrupted = errors.New("loader: dataset corrupted (checksum mismatch)")
)

// WriteBinary writes rows to w in the binary dataset format: a 16-byte
// header (magic, version, numCols, numRows, all little-endian uint32), the
// row payload as packed fields, and a trailing CRC-32 of the payload.
func WriteBinary(w io.Writer, numCols int, rows [][]int32) error {
	cols, err := conv.IntToUint32(numCols)
	if err != nil {
		return fmt.Errorf("loader: numCols: %w", err)
	}

	nrows, err := conv.IntToUint32(len(rows))
	if err != nil {
		return fmt.Errorf("loader: numRows: %w", err)
	}

	var hdr [headerSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], FormatMagic)
	binary.LittleEndian.PutUint32(hdr[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(hdr[8:12], cols)
	binary.LittleEndian.PutUint32(hdr[12:16], nrows)

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("loader: write header: %w", err)
	}

	crc := crc32.NewIEEE()
	mw := io.MultiWriter(w, crc)

	buf := make([]byte, 0, field.RowSize(numCols))
	for i, row := range rows {
		if len(row) != numCols {
			return fmt.Errorf("loader: row %d has %d fields, want %d", i, len(row), numCols)
		}

		buf = buf[:0]
		for _, v := range row {
			buf = field.AppendInt32(buf, v)
		}

		if _, err := mw.Write(buf); err != nil {
			return fmt.Errorf("loader: write row %d: %w", i, err)
		}
	}

	var sum [4]byte
	binary.LittleEndian.PutUint32(sum[:], crc.Sum32())

	if _, err := w.Write(sum[:]); err != nil {
		return fmt.Errorf("loader: write checksum: %w", err)
	}

	return nil
}

// ReadBinary parses a binary dataset from r and verifies its checksum.
func ReadBinary(r io.Reader) (*Slice, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("loader: read header: %w", err)
	}

	if binary.LittleEndian.Uint32(hdr[0:4]) != FormatMagic {
		return nil, ErrInvalidMagic
	}

	if v := binary.LittleEndian.Uint32(hdr[4:8]); v > FormatVersion {
		return nil, ErrInvalidVersion
	}

	numCols, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(hdr[8:12]))
	if err != nil {
		return nil, fmt.Errorf("loader: numCols: %w", err)
	}

	numRows, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(hdr[12:16]))
	if err != nil {
		return nil, fmt.Errorf("loader: numRows: %w", err)
	}

	crc := crc32.NewIEEE()
	tr := io.TeeReader(r, crc)

	rows := make([][]int32, numRows)
	buf := make([]byte, field.RowSize(numCols))

	for i := range rows {
		if _, err := io.ReadFull(tr, buf); err != nil {
			return nil, fmt.Errorf("loader: read row %d: %w", i, err)
		}

		row := make([]int32, numCols)
		for j := range row {
			row[j] = field.Int32(buf[j*field.Width:])
		}

		rows[i] = row
	}

	var sum [4]byte
	if _, err := io.ReadFull(r, sum[:]); err != nil {
		return nil, fmt.Errorf("loader: read checksum: %w", err)
	}

	if binary.LittleEndian.Uint32(sum[:]) != crc.Sum32() {
		return nil, ErrCorrupted
	}

	return FromRows(numCols, rows), nil
}
