package section

import (
	"encoding/binary"
	"strings"

	"github.com/google/uuid"

	"github.com/ling-corp/ziggurat/zgerr"
)

// Header is the fixed 160-byte structure at the start of every container
// file (spec.md §6.1). Field offsets below are byte offsets into the
// header, not into the file.
type Header struct {
	Family     byte // byte offset 11
	Class      byte // byte offset 12
	Ctype      byte // byte offset 13
	Allocated  uint8 // byte offset 14, number of BOM slots
	Used       uint8 // byte offset 15, number of BOM slots actually defined

	UUID      uuid.UUID // byte offset 16-31
	Base1UUID uuid.UUID // byte offset 32-47, nil UUID if unset
	Base2UUID uuid.UUID // byte offset 48-63, nil UUID if unset

	Dim1       int64 // byte offset 64-71
	Dim2       int64 // byte offset 72-79
	Extensions int64 // byte offset 80-87, repurposed as an optional xxHash64 checksum (SPEC_FULL.md §3, §9)

	Comment string // byte offset 88-159, NUL-padded UTF-8
}

// Parse decodes a Header from the first HeaderSize bytes of data, validating
// the magic string and version but not the family/class/ctype triplet (that
// is the caller's responsibility, since only the caller knows which
// container type it expects).
func Parse(data []byte) (Header, error) {
	var h Header

	if len(data) < HeaderSize {
		return h, zgerr.ErrInvalidHeaderSize
	}

	if string(data[0:8]) != MagicString {
		return h, zgerr.ErrBadMagic
	}
	if string(data[8:11]) != VersionString {
		return h, zgerr.ErrBadVersion
	}

	h.Family = data[11]
	h.Class = data[12]
	h.Ctype = data[13]
	h.Allocated = data[14]
	h.Used = data[15]

	if h.Used > h.Allocated {
		return h, zgerr.ErrUsedExceedsAlloc
	}

	h.UUID = uuid.Must(uuid.FromBytes(data[16:32]))
	h.Base1UUID = uuid.Must(uuid.FromBytes(data[32:48]))
	h.Base2UUID = uuid.Must(uuid.FromBytes(data[48:64]))

	h.Dim1 = int64(binary.LittleEndian.Uint64(data[64:72]))
	h.Dim2 = int64(binary.LittleEndian.Uint64(data[72:80]))
	h.Extensions = int64(binary.LittleEndian.Uint64(data[80:88]))

	h.Comment = strings.TrimRight(string(data[88:160]), "\x00")

	return h, nil
}

// Bytes serializes the Header into a HeaderSize-byte slice, the inverse of
// Parse. The tests use it to write container fixtures.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	copy(b[0:8], MagicString)
	copy(b[8:11], VersionString)
	b[11] = h.Family
	b[12] = h.Class
	b[13] = h.Ctype
	b[14] = h.Allocated
	b[15] = h.Used

	copy(b[16:32], h.UUID[:])
	copy(b[32:48], h.Base1UUID[:])
	copy(b[48:64], h.Base2UUID[:])

	binary.LittleEndian.PutUint64(b[64:72], uint64(h.Dim1))
	binary.LittleEndian.PutUint64(b[72:80], uint64(h.Dim2))
	binary.LittleEndian.PutUint64(b[80:88], uint64(h.Extensions))

	copy(b[88:160], h.Comment)

	return b
}

// HasBase1 reports whether Base1UUID is set (non-nil per spec.md invariant 6).
func (h Header) HasBase1() bool { return h.Base1UUID != uuid.Nil }

// HasBase2 reports whether Base2UUID is set.
func (h Header) HasBase2() bool { return h.Base2UUID != uuid.Nil }

// HasChecksum reports whether Extensions carries a non-zero checksum to
// verify (SPEC_FULL.md §3, §9): a zero value means the builder that wrote
// this container did not compute one.
func (h Header) HasChecksum() bool { return h.Extensions != 0 }
