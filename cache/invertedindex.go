package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ling-corp/ziggurat/component"
)

// InvertedIndex wraps a component.InvertedIndex with an LRU cache keyed by
// type id, since each type's postings list plays the role of a single
// "block" for caching purposes (spec.md §4.3's cache discipline extended
// to §4.6's postings).
type InvertedIndex struct {
	ii       *component.InvertedIndex
	postings *lru.Cache[int, []int64]
}

// NewInvertedIndex wraps ii with a fresh LRU of capacity BlockCacheSize.
func NewInvertedIndex(ii *component.InvertedIndex) *InvertedIndex {
	postings, err := lru.New[int, []int64](BlockCacheSize)
	if err != nil {
		panic(err)
	}

	return &InvertedIndex{ii: ii, postings: postings}
}

// NTypes returns the number of distinct type ids.
func (c *InvertedIndex) NTypes() int { return c.ii.NTypes() }

// Postings returns the decoded postings list for type t, decoding and
// caching it on miss.
func (c *InvertedIndex) Postings(t int) ([]int64, error) {
	if vals, ok := c.postings.Get(t); ok {
		return vals, nil
	}

	vals, err := c.ii.Postings(t)
	if err != nil {
		return nil, err
	}

	c.postings.Add(t, vals)

	return vals, nil
}

// GetCombinedPostings returns the sorted union of postings(t) for every t
// in ts, using the cache for each constituent list (spec.md §4.6).
func (c *InvertedIndex) GetCombinedPostings(ts []int) ([]int64, error) {
	lists := make([][]int64, 0, len(ts))
	for _, t := range ts {
		vals, err := c.Postings(t)
		if err != nil {
			return nil, err
		}

		lists = append(lists, vals)
	}

	return component.MergePostings(lists), nil
}
