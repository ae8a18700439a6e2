package component_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ling-corp/ziggurat/component"
	"github.com/ling-corp/ziggurat/varint"
)

func buildInvertedIndex(postingsByType [][]int64) []byte {
	k := len(postingsByType)
	head := make([]byte, k*16)

	var payload []byte
	for t, positions := range postingsByType {
		off := int64(len(payload))

		prev := int64(0)
		for _, p := range positions {
			payload = varint.AppendEncode(payload, p-prev)
			prev = p
		}

		binary.LittleEndian.PutUint64(head[t*16:t*16+8], uint64(len(positions)))
		binary.LittleEndian.PutUint64(head[t*16+8:t*16+16], uint64(off))
	}

	return append(head, payload...)
}

func TestInvertedIndex(t *testing.T) {
	postings := [][]int64{
		{2, 5, 9},
		{0, 1, 6},
		{},
	}
	data := buildInvertedIndex(postings)

	ii, err := component.NewInvertedIndex(data, len(postings), 10)
	require.NoError(t, err)
	assert.Equal(t, 3, ii.NTypes())

	freq, ok := ii.Frequency(0)
	assert.True(t, ok)
	assert.Equal(t, int64(3), freq)

	got, err := ii.Postings(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 5, 9}, got)

	got, err = ii.Postings(2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInvertedIndex_GetCombinedPostings(t *testing.T) {
	postings := [][]int64{
		{2, 5, 9},
		{0, 1, 6},
	}
	data := buildInvertedIndex(postings)

	ii, err := component.NewInvertedIndex(data, len(postings), 10)
	require.NoError(t, err)

	combined, err := ii.GetCombinedPostings([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 5, 6, 9}, combined)
}
