// Package format defines the closed set of container types and component
// shapes that make up the ziggurat on-disk format (spec.md §4.2, §6.1).
package format

import "fmt"

// ContainerType identifies one of the eleven container kinds by packing
// the header's family/class/ctype triplet into a single comparable value,
// exactly as `(family<<16)|(class<<8)|ctype` in spec.md §6.1.
type ContainerType uint32

const (
	GraphLayer              ContainerType = 0x5a4c67 // "ZLg"
	PrimaryLayer             ContainerType = 0x5a4c70 // "ZLp"
	SegmentationLayer        ContainerType = 0x5a4c73 // "ZLs"
	TreeLayer                ContainerType = 0x5a4c74 // "ZLt"
	PlainStringVariable       ContainerType = 0x5a5663 // "ZVc"
	HashVariable              ContainerType = 0x5a5668 // "ZVh"
	IntegerVariable           ContainerType = 0x5a5669 // "ZVi"
	PointerVariable           ContainerType = 0x5a5670 // "ZVp"
	ExternalPointerVariable   ContainerType = 0x5a5671 // "ZVq"
	SetVariable               ContainerType = 0x5a5673 // "ZVs"
	IndexedStringVariable     ContainerType = 0x5a5678 // "ZVx"
)

// containerTypeOf packs a family/class/ctype byte triplet into a ContainerType.
func containerTypeOf(family, class, ctype byte) ContainerType {
	return ContainerType(uint32(family)<<16 | uint32(class)<<8 | uint32(ctype))
}

// known maps every valid triplet to its name, used both for validation at
// container-open time and for diagnostics.
var known = map[ContainerType]string{
	GraphLayer:            "ZLg",
	PrimaryLayer:          "ZLp",
	SegmentationLayer:     "ZLs",
	TreeLayer:             "ZLt",
	PlainStringVariable:   "ZVc",
	HashVariable:          "ZVh",
	IntegerVariable:       "ZVi",
	PointerVariable:       "ZVp",
	ExternalPointerVariable: "ZVq",
	SetVariable:           "ZVs",
	IndexedStringVariable: "ZVx",
}

// Valid reports whether the family/class/ctype triplet maps to a known
// container type (spec.md §3.2 invariant 2).
func Valid(family, class, ctype byte) (ContainerType, bool) {
	ct := containerTypeOf(family, class, ctype)
	_, ok := known[ct]

	return ct, ok
}

func (t ContainerType) String() string {
	if name, ok := known[t]; ok {
		return name
	}

	return fmt.Sprintf("ContainerType(0x%06x)", uint32(t))
}

// ComponentMode is the BOM entry's "mode" byte; combined with the ctype
// byte it selects one of the seven component shapes of spec.md §4.2.
type ComponentMode uint8

// ComponentType packs (ctype<<8)|mode, matching spec.md §6.1's BOM entry
// component-type derivation.
type ComponentType uint16

const (
	CtypeBlob          byte = 'b'
	CtypeStringList     byte = 'l'
	CtypeStringVector   byte = 's'
	CtypeVector         byte = 'v'
	CtypeSet            byte = 't'
	CtypeIndex          byte = 'i'
	CtypeInvertedIndex  byte = 'x'
)

const (
	ModePlain      ComponentMode = 0 // Blob, StringList, StringVector, uncompressed Vector/Index, InvertedIndex
	ModeCompressed ComponentMode = 1 // VectorComp, IndexComp
	ModeDelta      ComponentMode = 2 // VectorDelta
)

// NewComponentType packs a ctype byte and mode into a single tag for
// dispatch in a closed switch (spec.md design note: "a tagged sum is
// sufficient").
func NewComponentType(ctype byte, mode ComponentMode) ComponentType {
	return ComponentType(uint16(ctype)<<8 | uint16(mode))
}

func (c ComponentType) Ctype() byte          { return byte(c >> 8) }
func (c ComponentType) Mode() ComponentMode  { return ComponentMode(c & 0xff) }

func (c ComponentType) String() string {
	shape := "unknown"
	switch c.Ctype() {
	case CtypeBlob:
		shape = "Blob"
	case CtypeStringList:
		shape = "StringList"
	case CtypeStringVector:
		shape = "StringVector"
	case CtypeVector:
		switch c.Mode() {
		case ModePlain:
			shape = "Vector"
		case ModeCompressed:
			shape = "VectorComp"
		case ModeDelta:
			shape = "VectorDelta"
		}
	case CtypeSet:
		shape = "Set"
	case CtypeIndex:
		switch c.Mode() {
		case ModePlain:
			shape = "Index"
		case ModeCompressed:
			shape = "IndexComp"
		}
	case CtypeInvertedIndex:
		shape = "InvertedIndex"
	}

	return shape
}
