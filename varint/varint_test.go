package varint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ling-corp/ziggurat/varint"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 63, -64, 64, -65, 8191, -8192, 8192, -8193,
		1048575, -1048576, math.MaxInt64, math.MinInt64,
	}

	for _, v := range values {
		var buf [varint.MaxLen]byte
		n := varint.Encode(buf[:], v)

		got, consumed := varint.Decode(buf[:n])
		require.Equal(t, n, consumed, "value %d", v)
		assert.Equal(t, v, got, "value %d", v)
	}
}

// TestEncode_BoundaryTable mirrors the reference encoder's own boundary
// test: the encoded length must jump at every ±2^(7k-1) magnitude edge.
func TestEncode_BoundaryTable(t *testing.T) {
	cases := []struct {
		value    int64
		wantLen  int
		wantByte []byte
	}{
		{0, 1, []byte{0x00}},
		{-64, 1, []byte{0x7F}},
		{63, 1, []byte{0x3F}},
		{-8192, 2, []byte{0xFF, 0x7F}},
		{8191, 2, []byte{0xBF, 0x7F}},
		{math.MinInt64, 9, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{math.MaxInt64, 9, []byte{0xBF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, c := range cases {
		var buf [varint.MaxLen]byte
		n := varint.Encode(buf[:], c.value)
		assert.Equal(t, c.wantLen, n, "value %d", c.value)
		assert.Equal(t, c.wantByte, buf[:n], "value %d", c.value)
	}
}

func TestDecode_Truncated(t *testing.T) {
	_, consumed := varint.Decode(nil)
	assert.Equal(t, 0, consumed)

	// continuation bit set but no second byte.
	_, consumed = varint.Decode([]byte{0x80})
	assert.Equal(t, 0, consumed)
}

func TestDecodeFixedDeltaBlock(t *testing.T) {
	var buf []byte
	deltas := []int64{5, 1, 1, -2, 10}
	for _, d := range deltas {
		buf = varint.AppendEncode(buf, d)
	}

	got, consumed, err := varint.DecodeFixedDeltaBlock(buf, len(deltas))
	require.NoError(t, err)
	assert.Equal(t, len(buf), consumed)
	assert.Equal(t, []int64{5, 6, 7, 5, 15}, got)
}

func TestDecodeArray16(t *testing.T) {
	var buf []byte
	var want [16]int64
	for i := range want {
		want[i] = int64(i * 3)
		buf = varint.AppendEncode(buf, want[i])
	}

	got, consumed, err := varint.DecodeArray16(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), consumed)
	assert.Equal(t, want, got)
}
