package component

import (
	"encoding/binary"

	"github.com/ling-corp/ziggurat/zgerr"
)

// StringVector stores n strings as an (n+1)-entry i64 offset table followed
// by a concatenated UTF-8 payload (spec.md §4.2). Offsets are absolute
// within the component's own byte range and include the size of the
// offsets array itself, so string i occupies data[offsets[i]:offsets[i+1]]
// directly. This is the shape used for lexicons, where O(1) random access
// by type id matters.
type StringVector struct {
	data    []byte
	offsets []int64
}

// NewStringVector parses a StringVector payload; n is the BOM entry's Param1.
func NewStringVector(data []byte, n int) (*StringVector, error) {
	tableLen := (n + 1) * 8
	if len(data) < tableLen {
		return nil, zgerr.ErrInvalidDimensions
	}

	offsets := make([]int64, n+1)
	for i := 0; i <= n; i++ {
		offsets[i] = int64(binary.LittleEndian.Uint64(data[i*8 : i*8+8]))
	}

	for i := 0; i < n; i++ {
		lo, hi := offsets[i], offsets[i+1]
		if lo < 0 || hi < lo || hi > int64(len(data)) {
			return nil, zgerr.ErrInvalidDimensions
		}
	}

	return &StringVector{data: data, offsets: offsets}, nil
}

// Len returns the number of strings.
func (v *StringVector) Len() int { return len(v.offsets) - 1 }

// Get returns the i-th string, or "", false if i is out of range.
func (v *StringVector) Get(i int) (string, bool) {
	if i < 0 || i >= v.Len() {
		return "", false
	}

	return string(v.data[v.offsets[i]:v.offsets[i+1]]), true
}

// All iterates every string in order, lowest index first.
func (v *StringVector) All(yield func(i int, s string) bool) {
	for i := 0; i < v.Len(); i++ {
		s, _ := v.Get(i)
		if !yield(i, s) {
			return
		}
	}
}
