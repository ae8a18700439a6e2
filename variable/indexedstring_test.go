package variable_test

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ling-corp/ziggurat/container"
	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/section"
	"github.com/ling-corp/ziggurat/variable"
)

func hash64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))

	return int64(h.Sum64())
}

func TestIndexedStringVariable(t *testing.T) {
	lexicon := []string{"the", "cat", "sat", "mat"}
	v := len(lexicon)

	ids := []int64{0, 1, 2, 3, 1, 0}
	n := len(ids)

	rows := make([][]int64, n)
	for i, id := range ids {
		rows[i] = []int64{id}
	}

	type hk struct{ hash, id int64 }
	hks := make([]hk, v)
	for i, s := range lexicon {
		hks[i] = hk{hash64(s), int64(i)}
	}
	// sort by hash ascending (bubble sort; v is tiny in this fixture)
	for i := 0; i < len(hks); i++ {
		for j := i + 1; j < len(hks); j++ {
			if hks[j].hash < hks[i].hash {
				hks[i], hks[j] = hks[j], hks[i]
			}
		}
	}
	hashKeys := make([]int64, v)
	hashVals := make([]int64, v)
	for i, e := range hks {
		hashKeys[i] = e.hash
		hashVals[i] = e.id
	}

	postings := make([][]int64, v)
	for pos, id := range ids {
		postings[id] = append(postings[id], int64(pos))
	}

	h := section.Header{Family: 'Z', Class: 'V', Ctype: 'x', UUID: newUUID(), Dim1: int64(n), Dim2: int64(v)}

	path := writeContainer(t, h, []componentSpec{
		{name: "Lexicon", ctype: format.CtypeStringVector, mode: format.ModePlain, param1: int64(v), payload: stringVectorPayload(lexicon)},
		{name: "LexHash", ctype: format.CtypeIndex, mode: format.ModePlain, param1: int64(v), payload: uncompressedIndexPayload(hashKeys, hashVals)},
		{name: "Partition", ctype: format.CtypeVector, mode: format.ModePlain, param1: 1, param2: 1, payload: uncompressedVectorPayload([][]int64{{0}})},
		{name: "LexIDStream", ctype: format.CtypeVector, mode: format.ModePlain, param1: int64(n), param2: 1, payload: uncompressedVectorPayload(rows)},
		{name: "LexIDIndex", ctype: format.CtypeInvertedIndex, mode: format.ModePlain, param1: int64(v), param2: int64(n), payload: invertedIndexPayload(postings)},
	})

	c, err := container.Open(path)
	require.NoError(t, err)
	defer c.Close()

	sv, err := variable.NewIndexedStringVariable(c)
	require.NoError(t, err)
	assert.Equal(t, n, sv.Len())
	assert.Equal(t, v, sv.NTypes())

	for i, id := range ids {
		s, ok := sv.Get(i)
		assert.True(t, ok)
		assert.Equal(t, lexicon[id], s)
	}

	id, ok := sv.Lexicon().FindMatch("sat")
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	_, ok = sv.Lexicon().FindMatch("dog")
	assert.False(t, ok)

	postingsTheOrMat, err := sv.InvertedIndex().GetCombinedPostings([]int{0, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3, 5}, postingsTheOrMat)

	starting := sv.Lexicon().AllStartingWith("s")
	assert.Equal(t, []int{2}, starting)
}
