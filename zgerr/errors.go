// Package zgerr defines the sentinel errors shared by every layer of the
// ziggurat container reader: format validation, component decoding,
// container/datastore wiring.
//
// Errors fall into two kinds (see spec.md §7):
//   - Format errors: the container or one of its components is malformed.
//     These are returned from Open/Parse/New constructors and are fatal
//     only for the affected container.
//   - Lookup misses are not represented as errors at all; accessors return
//     a zero value and false/nil instead (spec.md §4.8).
//
// The readers have no unchecked accessor family: every row and entry
// accessor bounds-checks its index and reports a miss instead of
// panicking.
package zgerr

import "errors"

// Header and BOM format errors.
var (
	ErrInvalidHeaderSize  = errors.New("zgerr: header is not 160 bytes")
	ErrBadMagic           = errors.New("zgerr: bad magic, expected \"Ziggurat\"")
	ErrBadVersion         = errors.New("zgerr: unsupported container version, expected \"1.0\"")
	ErrUnknownType        = errors.New("zgerr: family/class/ctype triplet does not map to a known container type")
	ErrUsedExceedsAlloc   = errors.New("zgerr: header.used exceeds header.allocated")
	ErrBOMOutOfBounds     = errors.New("zgerr: BOM extends past end of file")
	ErrComponentOOB       = errors.New("zgerr: component byte range is out of file bounds")
	ErrComponentMisaligned = errors.New("zgerr: component offset is not 8-byte aligned")
	ErrChecksumMismatch   = errors.New("zgerr: stored checksum does not match computed checksum")
)

// Component shape/decoding errors.
var (
	ErrUnknownComponentType = errors.New("zgerr: unknown component type tag")
	ErrWrongComponentShape  = errors.New("zgerr: component has the wrong shape for this reader")
	ErrMissingComponent     = errors.New("zgerr: container is missing a required named component")
	ErrInvalidDimensions    = errors.New("zgerr: component declares inconsistent n/d/size parameters")
	ErrUnsupportedSetWidth  = errors.New("zgerr: set components with p > 1 are not supported")
	ErrTruncatedVarint      = errors.New("zgerr: varint truncated before a terminating byte was read")
)

// Container/layer/variable wiring errors.
var (
	ErrWrongContainerType = errors.New("zgerr: container is not of the expected type")
	ErrBaseNotFound       = errors.New("zgerr: base1/base2 UUID does not resolve to a container in the datastore")
	ErrBaseWrongType      = errors.New("zgerr: base container does not satisfy the expected base type")
	ErrCyclicReference    = errors.New("zgerr: base UUID references form a cycle")
	ErrDuplicateUUID      = errors.New("zgerr: two containers in the datastore share a UUID")
)

// Registry errors.
var (
	ErrRegistryNotFound = errors.New("zgerr: registry.yaml not found in datastore directory")
	ErrRegistryInvalid  = errors.New("zgerr: registry.yaml could not be parsed")
)
