package component

import (
	"encoding/binary"

	"github.com/ling-corp/ziggurat/varint"
	"github.com/ling-corp/ziggurat/zgerr"
)

// VectorShape distinguishes the three on-disk encodings a Vector component
// may use (spec.md §4.2).
type VectorShape int

const (
	VectorUncompressed VectorShape = iota
	VectorCompressed
	VectorDelta
)

// VectorBlock is one decoded block of a compressed or delta Vector: up to
// 16 rows of Width int64 columns each, in row-major order.
type VectorBlock struct {
	Rows  int
	Width int
	Data  []int64
}

// Row returns the r-th row of the block as a sub-slice of Data.
func (b VectorBlock) Row(r int) []int64 {
	return b.Data[r*b.Width : (r+1)*b.Width]
}

// Vector is a random-access reader over the Vector/VectorComp/VectorDelta
// component shapes (spec.md §4.2, §4.3). It performs no caching of its own;
// callers wanting amortized sequential or repeated access should wrap it
// with cache.Vector.
type Vector struct {
	shape  VectorShape
	length int
	width  int

	flat []int64 // VectorUncompressed only: n*width row-major values

	sync []int64 // VectorCompressed/VectorDelta: m block offsets into data
	data []byte  // VectorCompressed/VectorDelta: payload past the sync table
}

// NewUncompressedVector builds a Vector over an already-decoded n*d
// row-major buffer.
func NewUncompressedVector(n, d int, data []byte) (*Vector, error) {
	need := n * d * 8
	if len(data) < need {
		return nil, zgerr.ErrInvalidDimensions
	}

	flat := make([]int64, n*d)
	for i := range flat {
		flat[i] = int64(binary.LittleEndian.Uint64(data[i*8 : i*8+8]))
	}

	return &Vector{shape: VectorUncompressed, length: n, width: d, flat: flat}, nil
}

// NewCompressedVector builds a block-compressed Vector. data is the full
// component payload, starting with the m-entry sync table.
func NewCompressedVector(n, d int, data []byte) (*Vector, error) {
	return newBlockVector(VectorCompressed, n, d, data)
}

// NewDeltaVector builds a delta-compressed Vector.
func NewDeltaVector(n, d int, data []byte) (*Vector, error) {
	return newBlockVector(VectorDelta, n, d, data)
}

func newBlockVector(shape VectorShape, n, d int, data []byte) (*Vector, error) {
	m := blockCount(n)
	need := m * 8
	if len(data) < need {
		return nil, zgerr.ErrInvalidDimensions
	}

	sync := make([]int64, m)
	for i := 0; i < m; i++ {
		sync[i] = int64(binary.LittleEndian.Uint64(data[i*8 : i*8+8]))
	}

	return &Vector{shape: shape, length: n, width: d, sync: sync, data: data[need:]}, nil
}

func blockCount(n int) int {
	if n == 0 {
		return 0
	}

	return (n + varint.BlockSize - 1) / varint.BlockSize
}

// Len returns the number of rows.
func (v *Vector) Len() int { return v.length }

// Width returns the number of columns per row.
func (v *Vector) Width() int { return v.width }

// Shape reports which on-disk encoding backs this vector.
func (v *Vector) Shape() VectorShape { return v.shape }

// GetRow returns row i, or nil, false if i is out of range.
func (v *Vector) GetRow(i int) ([]int64, bool) {
	if i < 0 || i >= v.length {
		return nil, false
	}

	if v.shape == VectorUncompressed {
		return v.flat[i*v.width : (i+1)*v.width], true
	}

	bi, ri := i/varint.BlockSize, i%varint.BlockSize
	block, err := v.DecodeBlock(bi)
	if err != nil {
		return nil, false
	}

	return block.Row(ri), true
}

// BlockCount returns the number of blocks backing a compressed or delta
// vector (undefined for VectorUncompressed, which has none).
func (v *Vector) BlockCount() int { return len(v.sync) }

// DecodeBlock decodes block bi of a compressed or delta vector. It is
// exported so cache.Vector can populate its LRU without duplicating the
// column-major decode logic.
func (v *Vector) DecodeBlock(bi int) (VectorBlock, error) {
	if bi < 0 || bi >= len(v.sync) {
		return VectorBlock{}, zgerr.ErrComponentOOB
	}

	rows := varint.BlockSize
	if last := v.length - bi*varint.BlockSize; last < rows {
		rows = last
	}

	off := v.sync[bi]
	if off < 0 || int(off) >= len(v.data) {
		return VectorBlock{}, zgerr.ErrComponentOOB
	}
	raw := v.data[off:]

	colMajor := make([][16]int64, v.width)
	pos := 0
	for c := 0; c < v.width; c++ {
		var (
			col      [16]int64
			consumed int
			err      error
		)

		if v.shape == VectorDelta {
			col, consumed, err = varint.DecodeDeltaArray16(raw[pos:])
		} else {
			col, consumed, err = varint.DecodeArray16(raw[pos:])
		}
		if err != nil {
			return VectorBlock{}, err
		}

		colMajor[c] = col
		pos += consumed
	}

	flat := make([]int64, rows*v.width)
	for r := 0; r < rows; r++ {
		for c := 0; c < v.width; c++ {
			flat[r*v.width+c] = colMajor[c][r]
		}
	}

	return VectorBlock{Rows: rows, Width: v.width, Data: flat}, nil
}
