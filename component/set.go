package component

import (
	"encoding/binary"

	"github.com/ling-corp/ziggurat/varint"
	"github.com/ling-corp/ziggurat/zgerr"
)

// Set is a reader over the Set component shape (spec.md §4.2): n rows, each
// holding a variable-length, ascending list of type ids. Only width p=1 is
// implemented; wider sets are an explicit non-goal and rejected at
// construction.
type Set struct {
	length int
	sync   []int64 // m block offsets
	data   []byte  // full component payload
}

// SetBlock is one decoded block of up to 16 rows of type-id lists.
type SetBlock struct {
	Rows int
	Ids  [][]int64 // Ids[r] is the ascending type-id list for row r
}

// NewSet parses a Set component payload; n is Param1, p is Param2 and must
// equal 1 (spec.md §4.2 "Set | n, p=1").
func NewSet(n, p int, data []byte) (*Set, error) {
	if p != 1 {
		return nil, zgerr.ErrUnsupportedSetWidth
	}

	m := blockCount(n)
	need := m * 8
	if len(data) < need {
		return nil, zgerr.ErrInvalidDimensions
	}

	sync := make([]int64, m)
	for i := 0; i < m; i++ {
		sync[i] = int64(binary.LittleEndian.Uint64(data[i*8 : i*8+8]))
	}

	return &Set{length: n, sync: sync, data: data}, nil
}

// Len returns the number of rows (sets).
func (s *Set) Len() int { return s.length }

// BlockCount returns the number of blocks.
func (s *Set) BlockCount() int { return len(s.sync) }

// GetRow returns the ascending type-id list for row i.
func (s *Set) GetRow(i int) ([]int64, bool) {
	if i < 0 || i >= s.length {
		return nil, false
	}

	bi, ri := i/varint.BlockSize, i%varint.BlockSize
	block, err := s.DecodeBlock(bi)
	if err != nil {
		return nil, false
	}

	return block.Ids[ri], true
}

// DecodeBlock decodes block bi: 16 delta-encoded cumulative offsets, 16
// sequential lengths, then 16 ascending delta-encoded type-id subsequences
// (spec.md §4.2). The cumulative offsets are consumed but not otherwise
// needed for decode, since each row's length bounds its subsequence;
// they exist on disk to let a writer skip-address a row's content
// without replaying every preceding length.
func (s *Set) DecodeBlock(bi int) (SetBlock, error) {
	if bi < 0 || bi >= len(s.sync) {
		return SetBlock{}, zgerr.ErrComponentOOB
	}

	rows := varint.BlockSize
	if last := s.length - bi*varint.BlockSize; last < rows {
		rows = last
	}

	off := s.sync[bi]
	if off < 0 || int(off) >= len(s.data) {
		return SetBlock{}, zgerr.ErrComponentOOB
	}
	raw := s.data[off:]
	pos := 0

	_, consumed, err := varint.DecodeDeltaArray16(raw[pos:])
	if err != nil {
		return SetBlock{}, err
	}
	pos += consumed

	lengths, consumed, err := varint.DecodeArray16(raw[pos:])
	if err != nil {
		return SetBlock{}, err
	}
	pos += consumed

	ids := make([][]int64, rows)
	for r := 0; r < rows; r++ {
		n := int(lengths[r])
		if n == 0 {
			ids[r] = nil
			continue
		}

		vals, consumed, err := varint.DecodeFixedDeltaBlock(raw[pos:], n)
		if err != nil {
			return SetBlock{}, err
		}

		ids[r] = vals
		pos += consumed
	}

	return SetBlock{Rows: rows, Ids: ids}, nil
}
