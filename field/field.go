// Package field defines the fixed-width integer field representation shared
// by all table layouts.
//
// Every table cell is a 32-bit signed integer. When fields travel through a
// byte-oriented medium (binary dataset files, object storage payloads) they
// are encoded as Width bytes, little-endian, two's complement. In memory the
// stores address fields as []int32 elements; the encoded form exists at the
// I/O boundary only.
package field

import "encoding/binary"

// Width is the encoded byte width of a single field.
const Width = 4

// PutInt32 encodes v into the first Width bytes of b.
func PutInt32(b []byte, v int32) {
	binary.LittleEndian.PutUint32(b, uint32(v))
}

// Int32 decodes a field from the first Width bytes of b.
func Int32(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}

// AppendInt32 appends the encoded form of v to dst and returns the extended
// slice.
func AppendInt32(dst []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(dst, uint32(v))
}

// RowSize returns the encoded byte size of a row with numCols fields.
func RowSize(numCols int) int {
	return numCols * Width
}
