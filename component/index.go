package component

import (
	"encoding/binary"
	"sort"

	"github.com/ling-corp/ziggurat/varint"
	"github.com/ling-corp/ziggurat/zgerr"
)

// Index is a reader over the uncompressed Index component shape: n (key,
// value) pairs sorted ascending by key, stored as a flat array (spec.md
// §4.2, §4.4).
type Index struct {
	keys   []int64
	values []int64
}

// NewIndex parses an uncompressed Index payload; n is the BOM entry's Param1.
func NewIndex(data []byte, n int) (*Index, error) {
	need := n * 16
	if len(data) < need {
		return nil, zgerr.ErrInvalidDimensions
	}

	keys := make([]int64, n)
	values := make([]int64, n)
	for i := 0; i < n; i++ {
		off := i * 16
		keys[i] = int64(binary.LittleEndian.Uint64(data[off : off+8]))
		values[i] = int64(binary.LittleEndian.Uint64(data[off+8 : off+16]))
	}

	return &Index{keys: keys, values: values}, nil
}

// Len returns the number of (key, value) pairs.
func (idx *Index) Len() int { return len(idx.keys) }

// GetFirst returns the value of the first entry whose key equals k.
func (idx *Index) GetFirst(k int64) (int64, bool) {
	i := sort.Search(len(idx.keys), func(i int) bool { return idx.keys[i] >= k })
	if i >= len(idx.keys) || idx.keys[i] != k {
		return 0, false
	}

	return idx.values[i], true
}

// Search returns the position of the leftmost key >= k, and whether that
// key equals k exactly. Used by SegmentationLayer's sync-index binary
// searches (spec.md §4.5), which need the array position itself rather
// than just the matching value.
func (idx *Index) Search(k int64) (pos int, exact bool) {
	pos = sort.Search(len(idx.keys), func(i int) bool { return idx.keys[i] >= k })
	exact = pos < len(idx.keys) && idx.keys[pos] == k

	return pos, exact
}

// Key returns the key at array position i.
func (idx *Index) Key(i int) (int64, bool) {
	if i < 0 || i >= len(idx.keys) {
		return 0, false
	}

	return idx.keys[i], true
}

// GetAll returns every value whose key equals k, in original order.
func (idx *Index) GetAll(k int64) []int64 {
	lo := sort.Search(len(idx.keys), func(i int) bool { return idx.keys[i] >= k })
	if lo >= len(idx.keys) || idx.keys[lo] != k {
		return nil
	}

	hi := lo
	for hi < len(idx.keys) && idx.keys[hi] == k {
		hi++
	}

	return idx.values[lo:hi]
}

// IndexComp is a reader over the block-compressed Index component shape
// (spec.md §4.2, §4.4): r total regular-item keys, grouped into
// ceil(r/16)-block synced by first-key.
type IndexComp struct {
	r        int
	syncKeys []int64
	syncOff  []int64
	data     []byte // payload past the r field and sync table
}

// IndexCompBlock is one decoded block.
type IndexCompBlock struct {
	Regular  int // number of meaningful entries among the 16 key slots
	Overflow int // extra duplicate-of-last-key value count
	Keys     [16]int64
	Values   []int64 // length Regular + Overflow
}

// NewIndexComp parses an IndexComp payload; n is the BOM entry's Param1 and
// is not used: only the leading r field is read and checked to be
// non-negative, and it is not compared with n.
func NewIndexComp(data []byte, n int) (*IndexComp, error) {
	if len(data) < 8 {
		return nil, zgerr.ErrInvalidDimensions
	}

	r := int(int64(binary.LittleEndian.Uint64(data[0:8])))
	if r < 0 {
		return nil, zgerr.ErrInvalidDimensions
	}

	mr := blockCount(r)
	pos := 8
	need := pos + mr*16
	if len(data) < need {
		return nil, zgerr.ErrInvalidDimensions
	}

	syncKeys := make([]int64, mr)
	syncOff := make([]int64, mr)
	for i := 0; i < mr; i++ {
		off := pos + i*16
		syncKeys[i] = int64(binary.LittleEndian.Uint64(data[off : off+8]))
		syncOff[i] = int64(binary.LittleEndian.Uint64(data[off+8 : off+16]))
	}

	return &IndexComp{r: r, syncKeys: syncKeys, syncOff: syncOff, data: data[need:]}, nil
}

// Len returns the total number of regular-item keys (r).
func (idx *IndexComp) Len() int { return idx.r }

// BlockCount returns ceil(r/16).
func (idx *IndexComp) BlockCount() int { return len(idx.syncKeys) }

// DecodeBlock decodes block bi.
func (idx *IndexComp) DecodeBlock(bi int) (IndexCompBlock, error) {
	if bi < 0 || bi >= len(idx.syncKeys) {
		return IndexCompBlock{}, zgerr.ErrComponentOOB
	}

	regular := varint.BlockSize
	if last := idx.r - bi*varint.BlockSize; last < regular {
		regular = last
	}

	off := idx.syncOff[bi]
	if off < 0 || int(off) >= len(idx.data) {
		return IndexCompBlock{}, zgerr.ErrComponentOOB
	}
	raw := idx.data[off:]
	pos := 0

	overflow64, consumed := varint.Decode(raw[pos:])
	pos += consumed
	overflow := int(overflow64)

	keys, consumed, err := varint.DecodeDeltaArray16(raw[pos:])
	if err != nil {
		return IndexCompBlock{}, err
	}
	pos += consumed

	regVals, consumed, err := varint.DecodeFixedDeltaBlock(raw[pos:], regular)
	if err != nil {
		return IndexCompBlock{}, err
	}
	pos += consumed

	var overVals []int64
	if overflow > 0 {
		overVals, consumed, err = varint.DecodeFixedDeltaBlock(raw[pos:], overflow)
		if err != nil {
			return IndexCompBlock{}, err
		}
		pos += consumed
	}

	values := make([]int64, 0, regular+overflow)
	values = append(values, regVals...)
	values = append(values, overVals...)

	return IndexCompBlock{Regular: regular, Overflow: overflow, Keys: keys, Values: values}, nil
}

// SyncBlockPosition returns the rightmost block index whose first key is
// <= k, or -1 if k is smaller than every block's first key.
func (idx *IndexComp) SyncBlockPosition(k int64) int {
	i := sort.Search(len(idx.syncKeys), func(i int) bool { return idx.syncKeys[i] > k })
	if i == 0 {
		return -1
	}

	return i - 1
}

// GetAll returns every value whose key equals k (spec.md §4.4).
func (idx *IndexComp) GetAll(k int64) ([]int64, error) {
	bi := idx.SyncBlockPosition(k)
	if bi < 0 {
		return nil, nil
	}

	block, err := idx.DecodeBlock(bi)
	if err != nil {
		return nil, err
	}

	keys := block.Keys[:block.Regular]
	p := sort.Search(len(keys), func(i int) bool { return keys[i] >= k })
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
func (idx *IndexComp) GetFirst(k int64) (int64, bool, error) {
	vals, err := idx.GetAll(k)
	if err != nil || len(vals) == 0 {
		return 0, false, err
	}

	return vals[0], true, nil
}
