// Package cache wraps the block-compressed component readers (Vector,
// IndexComp, InvertedIndex) with an LRU cache of decoded blocks (spec.md
// §4.3, §4.4), backed by github.com/hashicorp/golang-lru/v2.
//
// Every read through a cache mutates LRU recency; the non-mutating peek
// path used by streaming iterators relies on the library's own Peek,
// which looks up a key without touching its position in the eviction
// order. This is the "interior mutability" access pattern spec.md
// describes: a cache wrapper offers read-only accessors that internally
// need exclusive access to reorder the LRU list.
package cache

// BlockCacheSize is the fixed LRU capacity, in blocks, shared by every
// cache in this package (spec.md §4.3: "capacity 250 blocks").
const BlockCacheSize = 250
