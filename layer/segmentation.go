package layer

import (
	"sort"

	"github.com/ling-corp/ziggurat/cache"
	"github.com/ling-corp/ziggurat/component"
	"github.com/ling-corp/ziggurat/container"
	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/zgerr"
)

// SegmentationLayer is N non-overlapping, strictly monotone ranges
// [start,end) over a base PrimaryLayer, with two uncompressed sync
// indices for fast boundary lookup (spec.md §4.5, §6.3).
type SegmentationLayer struct {
	c      *container.Container
	n      int
	ranges *cache.Vector
	start  *component.Index
	end    *component.Index
}

// NewSegmentationLayer wraps an already-open container as a
// SegmentationLayer, validating its container type and required
// components.
func NewSegmentationLayer(c *container.Container) (*SegmentationLayer, error) {
	if c.Type() != format.SegmentationLayer {
		return nil, zgerr.ErrWrongContainerType
	}

	n := int(c.Dim1())

	rsEntry, ok := c.Entry("RangeStream")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	if rsEntry.ComponentType().Mode() != format.ModeDelta || rsEntry.Param2 != 2 {
		return nil, zgerr.ErrWrongComponentShape
	}
	rsData, _ := c.Payload("RangeStream")
	rs, err := component.NewDeltaVector(n, 2, rsData)
	if err != nil {
		return nil, err
	}

	start, err := loadSyncIndex(c, "StartSort")
	if err != nil {
		return nil, err
	}

	end, err := loadSyncIndex(c, "EndSort")
	if err != nil {
		return nil, err
	}

	return &SegmentationLayer{
		c:      c,
		n:      n,
		ranges: cache.NewVector(rs),
		start:  start,
		end:    end,
	}, nil
}

func loadSyncIndex(c *container.Container, name string) (*component.Index, error) {
	entry, ok := c.Entry(name)
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	if entry.ComponentType().Mode() != format.ModePlain {
		return nil, zgerr.ErrWrongComponentShape
	}

	data, _ := c.Payload(name)

	return component.NewIndex(data, int(entry.Param1))
}

// Len returns the number of ranges.
func (s *SegmentationLayer) Len() int { return s.n }

// Container returns the underlying container.
func (s *SegmentationLayer) Container() *container.Container { return s.c }

// Get returns the i-th range.
func (s *SegmentationLayer) Get(i int) (start, end int, ok bool) {
	row, ok := s.ranges.GetRow(i)
	if !ok {
		return 0, 0, false
	}

	return int(row[0]), int(row[1]), true
}

// FindContaining returns the index of the range containing base-layer
// position p, if any (spec.md §4.5).
func (s *SegmentationLayer) FindContaining(p int) (int, bool) {
	pos, exact := s.start.Search(int64(p))
	if exact {
		return pos * 16, true
	}
	if pos == 0 {
		return 0, false
	}

	bi := pos - 1
	block, ok := s.ranges.Block(bi)
	if !ok {
		return 0, false
	}

	i, exact := searchBlockColumn(block, 0, int64(p))
	if exact {
		return bi*16 + i, true
	}
	if i == 0 {
		return 0, false
	}

	row := block.Row(i - 1)
	if int64(p) >= row[0] && int64(p) < row[1] {
		return bi*16 + (i - 1), true
	}

	return 0, false
}

// ContainsStart reports whether any range begins exactly at p.
func (s *SegmentationLayer) ContainsStart(p int) bool {
	pos, exact := s.start.Search(int64(p))
	if exact {
		return true
	}
	if pos == 0 {
		return false
	}

	block, ok := s.ranges.Block(pos - 1)
	if !ok {
		return false
	}

	_, exact = searchBlockColumn(block, 0, int64(p))
	return exact
}

// ContainsEnd reports whether any range ends exactly at p.
func (s *SegmentationLayer) ContainsEnd(p int) bool {
	pos, exact := s.end.Search(int64(p))
	if exact {
		return true
	}

	// EndSort keys are the last end of each block, so the first key
	// greater than p names the only block whose ends can include p.
	block, ok := s.ranges.Block(pos)
	if !ok {
		return false
	}

	_, exact = searchBlockColumn(block, 1, int64(p))
	return exact
}

// Contains reports whether the exact range [start,end) is present.
func (s *SegmentationLayer) Contains(start, end int) bool {
	pos, exact := s.start.Search(int64(start))

	var bi int
	switch {
	case exact:
		bi = pos
	case pos == 0:
		return false
	default:
		bi = pos - 1
	}

	block, ok := s.ranges.Block(bi)
	if !ok {
		return false
	}

	i, exact := searchBlockColumn(block, 0, int64(start))
	if !exact {
		return false
	}

	return block.Row(i)[1] == int64(end)
}

// searchBlockColumn returns the leftmost row index whose column col
// equals or exceeds v, and whether it is an exact match. Rows are
// assumed sorted ascending by column col, which holds for both the
// start and end columns of a segmentation layer's range stream.
func searchBlockColumn(block component.VectorBlock, col int, v int64) (pos int, exact bool) {
	pos = sort.Search(block.Rows, func(i int) bool { return block.Row(i)[col] >= v })
	exact = pos < block.Rows && block.Row(pos)[col] == v

	return pos, exact
}

// Iter streams every range in order.
func (s *SegmentationLayer) Iter() *RangeReader {
	return &RangeReader{r: s.ranges.Iter()}
}

// RangeReader is a streaming iterator over (start, end) pairs.
type RangeReader struct {
	r *cache.Reader
}

// Advance moves to the next range.
func (rr *RangeReader) Advance() bool { return rr.r.Advance() }

// Get returns the current (start, end) pair.
func (rr *RangeReader) Get() (start, end int, ok bool) {
	row, ok := rr.r.Get()
	if !ok {
		return 0, 0, false
	}

	return int(row[0]), int(row[1]), true
}
