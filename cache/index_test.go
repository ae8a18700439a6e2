package cache_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ling-corp/ziggurat/cache"
	"github.com/ling-corp/ziggurat/component"
	"github.com/ling-corp/ziggurat/varint"
)

func buildIndexComp(regularKeys, regularVals, overflowVals []int64) []byte {
	var block []byte
	block = varint.AppendEncode(block, int64(len(overflowVals)))

	prevKey := int64(0)
	for _, k := range regularKeys {
		block = varint.AppendEncode(block, k-prevKey)
		prevKey = k
	}

	prevVal := int64(0)
	for _, v := range regularVals {
		block = varint.AppendEncode(block, v-prevVal)
		prevVal = v
	}

	prevOverflow := int64(0)
	for _, v := range overflowVals {
		block = varint.AppendEncode(block, v-prevOverflow)
		prevOverflow = v
	}

	head := make([]byte, 8)
	binary.LittleEndian.PutUint64(head, uint64(len(regularKeys)))

	syncTable := make([]byte, 16)
	binary.LittleEndian.PutUint64(syncTable[0:8], uint64(regularKeys[0]))
	binary.LittleEndian.PutUint64(syncTable[8:16], uint64(0))

	data := append(head, syncTable...)

	return append(data, block...)
}

func TestCachedIndex_GetAllAndIter(t *testing.T) {
	keys := []int64{1, 2, 2, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 15}
	vals := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	overflow := []int64{17}

	data := buildIndexComp(keys, vals, overflow)

	idx, err := component.NewIndexComp(data, 16)
	require.NoError(t, err)

	ci := cache.NewIndex(idx)

	got, err := ci.GetAll(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, got)

	got, err = ci.GetAll(15)
	require.NoError(t, err)
	assert.Equal(t, []int64{15, 16, 17}, got)

	v, ok, err := ci.GetFirst(4)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(4), v)

	it := ci.Iter()
	count := 0
	for {
		_, _, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	require.NoError(t, it.Err())
	assert.Equal(t, len(keys)+len(overflow), count)
}
