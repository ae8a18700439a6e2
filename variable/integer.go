package variable

import (
	"github.com/ling-corp/ziggurat/cache"
	"github.com/ling-corp/ziggurat/component"
	"github.com/ling-corp/ziggurat/container"
	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/zgerr"
)

// IntegerVariable attaches a signed 64-bit integer to every corpus
// position, plus a sorted index for lookup by value (spec.md §6.3).
type IntegerVariable struct {
	c *container.Container

	n        int
	intStream *cache.Vector
	intSort   *component.Index
}

// NewIntegerVariable wraps an already-open container, validating its
// type and required components ("IntStream", "IntSort").
func NewIntegerVariable(c *container.Container) (*IntegerVariable, error) {
	if c.Type() != format.IntegerVariable {
		return nil, zgerr.ErrWrongContainerType
	}

	n := int(c.Dim1())

	streamEntry, ok := c.Entry("IntStream")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	if streamEntry.Param2 != 1 {
		return nil, zgerr.ErrInvalidDimensions
	}
	streamData, _ := c.Payload("IntStream")
	intStream, err := newVectorFor(streamEntry, n, 1, streamData)
	if err != nil {
		return nil, err
	}

	sortEntry, ok := c.Entry("IntSort")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	sortData, _ := c.Payload("IntSort")
	intSort, err := component.NewIndex(sortData, int(sortEntry.Param1))
	if err != nil {
		return nil, err
	}

	return &IntegerVariable{
		c:         c,
		n:         n,
		intStream: cache.NewVector(intStream),
		intSort:   intSort,
	}, nil
}

// Len returns N, the number of corpus positions.
func (v *IntegerVariable) Len() int { return v.n }

// Get returns the value at corpus position cpos.
func (v *IntegerVariable) Get(cpos int) (int64, bool) {
	row, ok := v.intStream.GetRow(cpos)
	if !ok {
		return 0, false
	}

	return row[0], true
}

// FindMatch returns every corpus position whose value equals x, via the
// sorted IntSort index.
func (v *IntegerVariable) FindMatch(x int64) []int64 {
	return v.intSort.GetAll(x)
}

// Iter streams every position's value in order.
func (v *IntegerVariable) Iter() *IntReader {
	return &IntReader{r: v.intStream.Iter()}
}

// IntReader streams decoded int64 values over the full variable.
type IntReader struct {
	r *cache.Reader
}

// Advance moves to the next position.
func (ir *IntReader) Advance() bool { return ir.r.Advance() }

// Get returns the value at the current position.
func (ir *IntReader) Get() (int64, bool) {
	row, ok := ir.r.Get()
	if !ok {
		return 0, false
	}

	return row[0], true
}
