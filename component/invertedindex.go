package component

import (
	"container/heap"
	"encoding/binary"

	"github.com/ling-corp/ziggurat/varint"
	"github.com/ling-corp/ziggurat/zgerr"
)

// InvertedIndex maps k type ids to their position-in-corpus postings lists
// (spec.md §4.2, §4.6). Each postings list is strictly increasing and
// delta-encoded on disk.
type InvertedIndex struct {
	k    int
	p    int // declared stream length (Param2); not checked against decoded postings
	freq []int64
	off  []int64
	data []byte // payload past the k-entry typeinfo table
}

// NewInvertedIndex parses an InvertedIndex payload; k is Param1 (number of
// types), p is Param2 (stream length).
func NewInvertedIndex(data []byte, k, p int) (*InvertedIndex, error) {
	need := k * 16
	if len(data) < need {
		return nil, zgerr.ErrInvalidDimensions
	}

	freq := make([]int64, k)
	off := make([]int64, k)
	for i := 0; i < k; i++ {
		base := i * 16
		freq[i] = int64(binary.LittleEndian.Uint64(data[base : base+8]))
		off[i] = int64(binary.LittleEndian.Uint64(data[base+8 : base+16]))
	}

	return &InvertedIndex{k: k, p: p, freq: freq, off: off, data: data[need:]}, nil
}

// NTypes returns the number of distinct type ids (k).
func (ii *InvertedIndex) NTypes() int { return ii.k }

// Frequency returns the number of postings for type t.
func (ii *InvertedIndex) Frequency(t int) (int64, bool) {
	if t < 0 || t >= ii.k {
		return 0, false
	}

	return ii.freq[t], true
}

// Postings decodes the full, strictly increasing position stream for type t.
// A type id outside [0, k) is a lookup miss: it yields nil and no error.
func (ii *InvertedIndex) Postings(t int) ([]int64, error) {
	if t < 0 || t >= ii.k {
		return nil, nil
	}

	off := ii.off[t]
	if off < 0 || int(off) > len(ii.data) {
		return nil, zgerr.ErrComponentOOB
	}

	vals, _, err := varint.DecodeFixedDeltaBlock(ii.data[off:], int(ii.freq[t]))
	if err != nil {
		return nil, err
	}

	return vals, nil
}

// postingsHeapItem is one (value, source list index, position within that
// list) triple used by the k-way merge in GetCombinedPostings.
type postingsHeapItem struct {
	value int64
	list  int
	pos   int
}

type postingsHeap []postingsHeapItem

func (h postingsHeap) Len() int            { return len(h) }
func (h postingsHeap) Less(i, j int) bool  { return h[i].value < h[j].value }
func (h postingsHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *postingsHeap) Push(x interface{}) { *h = append(*h, x.(postingsHeapItem)) }
func (h *postingsHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// GetCombinedPostings returns the sorted union of postings(t) for every t
// in ts via a k-way merge (spec.md §4.6). Positions are never duplicated
// across distinct types so the result is strictly increasing.
func (ii *InvertedIndex) GetCombinedPostings(ts []int) ([]int64, error) {
	lists := make([][]int64, 0, len(ts))
	for _, t := range ts {
		vals, err := ii.Postings(t)
		if err != nil {
			return nil, err
		}

		lists = append(lists, vals)
	}

	return MergePostings(lists), nil
}

// MergePostings returns the sorted union of several strictly increasing
// postings lists via a k-way merge. Exported so cache.InvertedIndex can
// reuse it over cached, rather than freshly decoded, lists.
func MergePostings(lists [][]int64) []int64 {
	h := make(postingsHeap, 0, len(lists))
	for li, vals := range lists {
		if len(vals) > 0 {
			h = append(h, postingsHeapItem{value: vals[0], list: li, pos: 0})
		}
	}
	heap.Init(&h)

	out := make([]int64, 0)
	for h.Len() > 0 {
		item := heap.Pop(&h).(postingsHeapItem)
		out = append(out, item.value)

		if next := item.pos + 1; next < len(lists[item.list]) {
			heap.Push(&h, postingsHeapItem{value: lists[item.list][next], list: item.list, pos: next})
		}
	}

	return out
}
