package variable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ling-corp/ziggurat/container"
	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/section"
	"github.com/ling-corp/ziggurat/variable"
)

func TestIntegerVariable(t *testing.T) {
	values := []int64{30, 10, 20, 10, 40}
	n := len(values)

	rows := make([][]int64, n)
	for i, v := range values {
		rows[i] = []int64{v}
	}

	sortKeys := []int64{10, 10, 20, 30, 40}
	sortVals := []int64{1, 3, 2, 0, 4}

	h := section.Header{Family: 'Z', Class: 'V', Ctype: 'i', UUID: newUUID(), Dim1: int64(n)}

	path := writeContainer(t, h, []componentSpec{
		{
			name: "IntStream", ctype: format.CtypeVector, mode: format.ModePlain,
			param1: int64(n), param2: 1, payload: uncompressedVectorPayload(rows),
		},
		{
			name: "IntSort", ctype: format.CtypeIndex, mode: format.ModePlain,
			param1: int64(len(sortKeys)), payload: uncompressedIndexPayload(sortKeys, sortVals),
		},
	})

	c, err := container.Open(path)
	require.NoError(t, err)
	defer c.Close()

	iv, err := variable.NewIntegerVariable(c)
	require.NoError(t, err)
	assert.Equal(t, n, iv.Len())

	for i, want := range values {
		got, ok := iv.Get(i)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	assert.ElementsMatch(t, []int64{1, 3}, iv.FindMatch(10))
	assert.Empty(t, iv.FindMatch(999))

	r := iv.Iter()
	i := 0
	for r.Advance() {
		v, ok := r.Get()
		assert.True(t, ok)
		assert.Equal(t, values[i], v)
		i++
	}
	assert.Equal(t, n, i)
}
