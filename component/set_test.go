package component_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ling-corp/ziggurat/component"
	"github.com/ling-corp/ziggurat/varint"
)

// buildSet constructs a Set component payload for n rows (p=1), given each
// row's ascending type-id list.
func buildSet(rowsData [][]int64) []byte {
	n := len(rowsData)
	m := (n + varint.BlockSize - 1) / varint.BlockSize

	var blocks []byte
	syncOffsets := make([]int64, m)
	tableLen := m * 8

	cumulative := int64(0)
	for bi := 0; bi < m; bi++ {
		syncOffsets[bi] = int64(tableLen + len(blocks))

		start := bi * varint.BlockSize
		rows := varint.BlockSize
		if last := n - start; last < rows {
			rows = last
		}

		// cumulative item-count offsets, delta-encoded; 16 entries regardless
		// of how many rows this (possibly partial, final) block holds.
		prevOff := int64(0)
		for r := 0; r < varint.BlockSize; r++ {
			blocks = varint.AppendEncode(blocks, cumulative-prevOff)
			prevOff = cumulative
			if r < rows {
				cumulative += int64(len(rowsData[start+r]))
			}
		}

		// sequential lengths, 16 entries regardless of rows
		for r := 0; r < varint.BlockSize; r++ {
			n := 0
			if r < rows {
				n = len(rowsData[start+r])
			}
			blocks = varint.AppendEncode(blocks, int64(n))
		}

		// ascending delta-encoded subsequences, one per valid row
		for r := 0; r < rows; r++ {
			prev := int64(0)
			for _, id := range rowsData[start+r] {
				blocks = varint.AppendEncode(blocks, id-prev)
				prev = id
			}
		}
	}

	data := make([]byte, tableLen)
	for i, off := range syncOffsets {
		binary.LittleEndian.PutUint64(data[i*8:i*8+8], uint64(off))
	}

	return append(data, blocks...)
}

func TestSet(t *testing.T) {
	rowsData := [][]int64{
		{1, 2, 5},
		{},
		{3},
		{0, 10, 20, 21},
	}
	data := buildSet(rowsData)

	s, err := component.NewSet(len(rowsData), 1, data)
	require.NoError(t, err)
	assert.Equal(t, len(rowsData), s.Len())

	for i, want := range rowsData {
		got, ok := s.GetRow(i)
		assert.True(t, ok)
		if len(want) == 0 {
			assert.Empty(t, got)
		} else {
			assert.Equal(t, want, got)
		}
	}
}

func TestSet_RejectsWideWidth(t *testing.T) {
	_, err := component.NewSet(1, 2, []byte{0})
	assert.Error(t, err)
}
