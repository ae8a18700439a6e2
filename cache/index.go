package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ling-corp/ziggurat/component"
)

// Index wraps a component.IndexComp with an LRU cache of decoded blocks
// (spec.md §4.4). Uncompressed indices need no cache and are not wrapped by
// this type.
type Index struct {
	idx    *component.IndexComp
	blocks *lru.Cache[int, component.IndexCompBlock]
}

// NewIndex wraps idx with a fresh LRU of capacity BlockCacheSize.
func NewIndex(idx *component.IndexComp) *Index {
	blocks, err := lru.New[int, component.IndexCompBlock](BlockCacheSize)
	if err != nil {
		panic(err)
	}

	return &Index{idx: idx, blocks: blocks}
}

func (c *Index) block(bi int) (component.IndexCompBlock, error) {
	if b, ok := c.blocks.Get(bi); ok {
		return b, nil
	}

	b, err := c.idx.DecodeBlock(bi)
	if err != nil {
		return component.IndexCompBlock{}, err
	}

	c.blocks.Add(bi, b)

	return b, nil
}

// Len returns the total number of regular-item keys.
func (c *Index) Len() int { return c.idx.Len() }

// GetAll returns every value whose key equals k, using the cached block
// decode (spec.md §4.4).
func (c *Index) GetAll(k int64) ([]int64, error) {
	bi := c.idx.SyncBlockPosition(k)
	if bi < 0 {
		return nil, nil
	}

	block, err := c.block(bi)
	if err != nil {
		return nil, err
	}

	keys := block.Keys[:block.Regular]

	p := 0
	for p < len(keys) && keys[p] < k {
		p++
	}
	if p >= len(keys) || keys[p] != k {
		return nil, nil
	}

	count := 0
	for i := p; i < len(keys) && keys[i] == k; i++ {
		count++
	}
	if len(keys) > 0 && keys[len(keys)-1] == k {
		count += block.Overflow
	}

	return block.Values[p : p+count], nil
}

// GetFirst returns the value of the first entry whose key equals k.
func (c *Index) GetFirst(k int64) (int64, bool, error) {
	vals, err := c.GetAll(k)
	if err != nil || len(vals) == 0 {
		return 0, false, err
	}

	return vals[0], true, nil
}

// ValueIter streams the decoded values of a single block, advancing the
// underlying cache only when it crosses into the next block (spec.md
// §4.4: "borrows the cache across next() calls and advances within a
// single block").
type ValueIter struct {
	c      *Index
	bi     int
	within int
	block  component.IndexCompBlock
	err    error
}

// Iter returns a ValueIter starting at the first block.
func (c *Index) Iter() *ValueIter {
	it := &ValueIter{c: c, bi: -1}
	it.loadBlock(0)

	return it
}

func (it *ValueIter) loadBlock(bi int) {
	if bi >= it.c.idx.BlockCount() {
		it.block = component.IndexCompBlock{}
		it.bi = bi
		return
	}

	b, err := it.c.block(bi)
	if err != nil {
		it.err = err
		return
	}

	it.block = b
	it.bi = bi
	it.within = 0
}

// Next returns the next (key, value) pair in ascending order, or
// ok=false once the index is exhausted or an error occurred. Both the
// regular entries and the overflow values of each block are surfaced;
// overflow values share the key of the last regular entry and follow it
// in order.
func (it *ValueIter) Next() (key, value int64, ok bool) {
	if it.err != nil {
		return 0, 0, false
	}

	total := it.block.Regular + it.block.Overflow
	for it.within >= total {
		if it.bi+1 >= it.c.idx.BlockCount() {
			return 0, 0, false
		}

		it.loadBlock(it.bi + 1)
		total = it.block.Regular + it.block.Overflow
	}

	idx := it.within
	if idx < it.block.Regular {
		key = it.block.Keys[idx]
	} else {
		key = it.block.Keys[it.block.Regular-1]
	}
	value = it.block.Values[idx]
	it.within++

	return key, value, true
}

// Err returns any decode error encountered during iteration.
func (it *ValueIter) Err() error { return it.err }
