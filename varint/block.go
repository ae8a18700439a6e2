package varint

import "github.com/ling-corp/ziggurat/zgerr"

// BlockSize is the fixed number of logical items grouped into one block of
// a compressed component (spec.md §3.2 invariant 7).
const BlockSize = 16

// DecodeArray16 decodes exactly 16 sequential varints from src into a
// fixed-size array, mirroring the block key/row arrays compressed indices
// and vectors keep per block.
func DecodeArray16(src []byte) (values [16]int64, consumed int, err error) {
	return decodeFixed16(src, false)
}

// DecodeDeltaArray16 decodes 16 deltas from src and prefix-sums them from
// zero into a fixed-size array.
func DecodeDeltaArray16(src []byte) (values [16]int64, consumed int, err error) {
	return decodeFixed16(src, true)
}

func decodeFixed16(src []byte, delta bool) (values [16]int64, consumed int, err error) {
	var running int64
	offset := 0

	for i := 0; i < 16; i++ {
		v, n := Decode(src[offset:])
		if n == 0 {
			return values, 0, zgerr.ErrTruncatedVarint
		}
		offset += n

		if delta {
			running += v
			values[i] = running
		} else {
			values[i] = v
		}
	}

	return values, offset, nil
}

// DecodeFixedBlock decodes n sequential values from src, returning the
// decoded slice and bytes consumed. Used when the block holds fewer than
// BlockSize items (e.g. the last, possibly partial, block of a component).
func DecodeFixedBlock(src []byte, n int) ([]int64, int, error) {
	return decodeN(src, n, false)
}

// DecodeFixedDeltaBlock decodes n deltas from src and prefix-sums them from
// zero, returning the reconstructed values and bytes consumed.
func DecodeFixedDeltaBlock(src []byte, n int) ([]int64, int, error) {
	return decodeN(src, n, true)
}

func decodeN(src []byte, n int, delta bool) ([]int64, int, error) {
	out := make([]int64, n)
	offset := 0
	var running int64

	for i := 0; i < n; i++ {
		v, consumed := Decode(src[offset:])
		if consumed == 0 {
			return nil, 0, zgerr.ErrTruncatedVarint
		}
		offset += consumed

		if delta {
			running += v
			out[i] = running
		} else {
			out[i] = v
		}
	}

	return out, offset, nil
}
