package datastore

import (
	"github.com/google/uuid"

	"github.com/ling-corp/ziggurat/variable"
)

// Kind identifies which of the four variable shapes a Variable wraps.
type Kind int

const (
	KindIndexedString Kind = iota
	KindPlainString
	KindInteger
	KindSet
)

func (k Kind) String() string {
	switch k {
	case KindIndexedString:
		return "IndexedString"
	case KindPlainString:
		return "PlainString"
	case KindInteger:
		return "Integer"
	case KindSet:
		return "Set"
	default:
		return "Unknown"
	}
}

// Variable is one variable container wired into a datastore's graph,
// attached to the layer its base1 UUID references.
type Variable struct {
	uuidOf uuid.UUID
	name   string
	kind   Kind
	owner  *Layer

	indexedString *variable.IndexedStringVariable
	plainString   *variable.PlainStringVariable
	integer       *variable.IntegerVariable
	set           *variable.SetVariable
}

// UUID returns the variable container's own UUID.
func (v *Variable) UUID() uuid.UUID { return v.uuidOf }

// Name returns the registry-assigned name, or "" if unnamed.
func (v *Variable) Name() string { return v.name }

// Kind reports which of the four variable shapes this wraps.
func (v *Variable) Kind() Kind { return v.kind }

// Owner returns the layer this variable is attached to.
func (v *Variable) Owner() *Layer { return v.owner }

// IndexedString returns the underlying IndexedStringVariable, or nil if
// Kind() != KindIndexedString.
func (v *Variable) IndexedString() *variable.IndexedStringVariable { return v.indexedString }

// PlainString returns the underlying PlainStringVariable, or nil if
// Kind() != KindPlainString.
func (v *Variable) PlainString() *variable.PlainStringVariable { return v.plainString }

// Integer returns the underlying IntegerVariable, or nil if
// Kind() != KindInteger.
func (v *Variable) Integer() *variable.IntegerVariable { return v.integer }

// Set returns the underlying SetVariable, or nil if Kind() != KindSet.
func (v *Variable) Set() *variable.SetVariable { return v.set }

// Len returns the number of corpus positions this variable covers.
func (v *Variable) Len() int {
	switch v.kind {
	case KindIndexedString:
		return v.indexedString.Len()
	case KindPlainString:
		return v.plainString.Len()
	case KindInteger:
		return v.integer.Len()
	case KindSet:
		return v.set.Len()
	default:
		return 0
	}
}
