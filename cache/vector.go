package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ling-corp/ziggurat/component"
	"github.com/ling-corp/ziggurat/varint"
)

// Vector wraps a component.Vector with an LRU cache of decoded blocks.
// Uncompressed vectors need no cache and are served directly; compressed
// and delta vectors decode a block on first touch and serve subsequent
// rows from the same block out of the cache.
type Vector struct {
	v      *component.Vector
	blocks *lru.Cache[int, component.VectorBlock]
}

// NewVector wraps v with a fresh LRU of capacity BlockCacheSize.
func NewVector(v *component.Vector) *Vector {
	blocks, err := lru.New[int, component.VectorBlock](BlockCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// BlockCacheSize never is.
		panic(err)
	}

	return &Vector{v: v, blocks: blocks}
}

// Len returns the number of rows.
func (c *Vector) Len() int { return c.v.Len() }

// Width returns the number of columns per row.
func (c *Vector) Width() int { return c.v.Width() }

// block returns the decoded block bi, populating the cache on miss.
func (c *Vector) block(bi int) (component.VectorBlock, bool) {
	if b, ok := c.blocks.Get(bi); ok {
		return b, true
	}

	b, err := c.v.DecodeBlock(bi)
	if err != nil {
		return component.VectorBlock{}, false
	}

	c.blocks.Add(bi, b)

	return b, true
}

// Block returns the decoded block bi, populating the cache on miss. Used
// by SegmentationLayer's containment searches, which need direct block
// access rather than a single row.
func (c *Vector) Block(bi int) (component.VectorBlock, bool) {
	return c.block(bi)
}

// peekBlock returns the decoded block bi without mutating LRU order; it
// reports false if the block is not already cached.
func (c *Vector) peekBlock(bi int) (component.VectorBlock, bool) {
	return c.blocks.Peek(bi)
}

// GetRow returns row i, decoding and caching its block on miss.
func (c *Vector) GetRow(i int) ([]int64, bool) {
	if c.v.Shape() == component.VectorUncompressed {
		return c.v.GetRow(i)
	}

	if i < 0 || i >= c.v.Len() {
		return nil, false
	}

	bi, ri := i/varint.BlockSize, i%varint.BlockSize
	b, ok := c.block(bi)
	if !ok {
		return nil, false
	}

	return b.Row(ri), true
}

// PeekRow returns row i iff its block is already cached, without mutating
// LRU order (spec.md §4.3 "peek_row"). It backs streaming iterators that
// must not re-borrow-and-reorder the cache on every step.
func (c *Vector) PeekRow(i int) ([]int64, bool) {
	if c.v.Shape() == component.VectorUncompressed {
		return c.v.GetRow(i)
	}

	if i < 0 || i >= c.v.Len() {
		return nil, false
	}

	bi, ri := i/varint.BlockSize, i%varint.BlockSize
	b, ok := c.peekBlock(bi)
	if !ok {
		return nil, false
	}

	return b.Row(ri), true
}

// Reader is the streaming iterator state machine of spec.md §4.7: Ready
// positions have their block already decoded into the cache; Get borrows
// the cache without triggering a decode, so Advance must run first.
type Reader struct {
	c     *Vector
	pos   int
	end   int // exclusive
	ready bool
}

// Iter returns a reader over the full vector.
func (c *Vector) Iter() *Reader { return c.IterRange(0, c.Len()) }

// IterFrom returns a reader starting at row s through the end.
func (c *Vector) IterFrom(s int) *Reader { return c.IterRange(s, c.Len()) }

// IterRange returns a reader over [s, e).
func (c *Vector) IterRange(s, e int) *Reader {
	if s < 0 {
		s = 0
	}
	if e > c.Len() {
		e = c.Len()
	}

	return &Reader{c: c, pos: s, end: e}
}

// Advance decodes the block containing the next position, if needed, and
// reports whether a row is now available via Get.
func (r *Reader) Advance() bool {
	if r.pos >= r.end {
		r.ready = false
		return false
	}

	if _, ok := r.c.GetRow(r.pos); !ok {
		r.ready = false
		return false
	}

	r.pos++
	r.ready = true

	return true
}

// Get returns the row last made available by Advance, or nil, false if the
// reader is Exhausted.
func (r *Reader) Get() ([]int64, bool) {
	if !r.ready {
		return nil, false
	}

	return r.c.PeekRow(r.pos - 1)
}

// ColumnReader streams a single column across all rows.
type ColumnReader struct {
	r *Reader
	c int
}

// ColumnIter returns a reader over column c across the full vector.
func (c *Vector) ColumnIter(col int) *ColumnReader {
	return &ColumnReader{r: c.Iter(), c: col}
}

// Advance moves to the next row.
func (cr *ColumnReader) Advance() bool { return cr.r.Advance() }

// Get returns the current row's value in the reader's column.
func (cr *ColumnReader) Get() (int64, bool) {
	row, ok := cr.r.Get()
	if !ok || cr.c < 0 || cr.c >= len(row) {
		return 0, false
	}

	return row[cr.c], true
}
