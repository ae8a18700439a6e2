// Package layer implements the two coordinate-space entities of spec.md
// §2 item 5: PrimaryLayer, a flat length-N space, and SegmentationLayer,
// a set of N non-overlapping ranges over a base layer with fast
// containment queries (spec.md §4.5).
package layer
