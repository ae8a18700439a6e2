// Package component decodes the seven on-disk component shapes of
// spec.md §4.2 (Blob, StringList, StringVector, Vector, Set, Index,
// InvertedIndex) from byte ranges borrowed from a container's mmap.
//
// Most readers here are views over their backing bytes that decode a
// compressed block only when asked; the uncompressed Index and Vector
// readers and StringList copy their payload into Go values once, at
// construction. Callers that need locality-amortized access to
// compressed shapes should wrap these readers with the LRU caches in
// package cache rather than calling the block-decode paths directly on a
// hot path.
//
// The row and entry accessors never panic on a caller-supplied index;
// out-of-range access returns a zero value and false, or nil (spec.md
// §4.8). The exported DecodeBlock methods instead return
// zgerr.ErrComponentOOB for an out-of-range block index. Format
// violations discovered at construction time (wrong
// dimensions, truncated payloads) are returned as errors from the package
// zgerr.
package component
