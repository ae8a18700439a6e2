// Package section defines the fixed-size binary structures at the start
// of every ziggurat container file: the Header and the Block Offset
// Mapping (BOM) table of contents that follows it (spec.md §6.1).
//
// # Layout
//
//	offset 0   : Header (160 bytes, packed)
//	offset 160 : BOM[allocated] (56 bytes per entry, packed)
//	offset …   : component payloads (each 8-byte aligned)
//
// Both structures are parsed directly from mmap-borrowed bytes with
// explicit little-endian field extraction rather than unsafe struct
// overlay, so the layout is identical regardless of host endianness.
package section
