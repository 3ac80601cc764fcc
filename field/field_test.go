package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutInt32RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 42, -1024, math.MaxInt32, math.MinInt32}

	buf := make([]byte, Width)
	for _, v := range values {
		PutInt32(buf, v)
		assert.Equal(t, v, Int32(buf))
	}
}

func TestPutInt32ByteOrder(t *testing.T) {
	buf := make([]byte, Width)
	PutInt32(buf, 0x01020304)

	// Little-endian: least significant byte first
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
}

func TestAppendInt32(t *testing.T) {
	var buf []byte
	buf = AppendInt32(buf, 7)
	buf = AppendInt32(buf, -7)

	require.Len(t, buf, 2*Width)
	assert.Equal(t, int32(7), Int32(buf[:Width]))
	assert.Equal(t, int32(-7), Int32(buf[Width:]))
}

func TestRowSize(t *testing.T) {
	assert.Equal(t, 0, RowSize(0))
	assert.Equal(t, 4, RowSize(1))
	assert.Equal(t, 400, RowSize(100))
}
