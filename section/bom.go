package section

import (
	"encoding/binary"
	"strings"

	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/zgerr"
)

// BOMNameSize is the fixed size of a BOM entry's Name field, including its
// NUL terminator (spec.md invariant 5: "≤ 12 printable ASCII bytes,
// zero-terminated").
const BOMNameSize = 13

// BOMEntry describes one component: its shape, its name, and the byte
// range of its payload within the container file (spec.md §6.1).
//
// The 48 bytes of family/ctype/mode/name/offset/size/param1/param2 are
// followed by 8 reserved padding bytes to round the entry up to the
// BOMEntrySize of 56 bytes spec.md declares; readers ignore them and
// writers zero them.
type BOMEntry struct {
	Family byte
	Ctype  byte
	Mode   format.ComponentMode
	Name   string

	Offset int64
	Size   int64
	Param1 int64
	Param2 int64
}

// ComponentType returns the (ctype<<8)|mode tag used to dispatch component
// decoding.
func (e BOMEntry) ComponentType() format.ComponentType {
	return format.NewComponentType(e.Ctype, e.Mode)
}

// ParseBOM decodes `allocated` BOM entries starting at data[BOMOffset:],
// returning only the first `used` of them (spec.md invariant 3).
func ParseBOM(data []byte, allocated, used int) ([]BOMEntry, error) {
	need := BOMOffset + allocated*BOMEntrySize
	if len(data) < need {
		return nil, zgerr.ErrBOMOutOfBounds
	}

	entries := make([]BOMEntry, used)
	for i := 0; i < used; i++ {
		off := BOMOffset + i*BOMEntrySize
		entries[i] = parseBOMEntry(data[off : off+BOMEntrySize])
	}

	return entries, nil
}

func parseBOMEntry(b []byte) BOMEntry {
	var e BOMEntry

	e.Family = b[0]
	e.Ctype = b[1]
	e.Mode = format.ComponentMode(b[2])
	e.Name = strings.TrimRight(string(b[3:3+BOMNameSize]), "\x00")

	e.Offset = int64(binary.LittleEndian.Uint64(b[16:24]))
	e.Size = int64(binary.LittleEndian.Uint64(b[24:32]))
	e.Param1 = int64(binary.LittleEndian.Uint64(b[32:40]))
	e.Param2 = int64(binary.LittleEndian.Uint64(b[40:48]))

	return e
}

// Bytes serializes a BOMEntry into a BOMEntrySize-byte slice.
func (e BOMEntry) Bytes() []byte {
	b := make([]byte, BOMEntrySize)

	b[0] = e.Family
	b[1] = e.Ctype
	b[2] = byte(e.Mode)
	copy(b[3:3+BOMNameSize], e.Name)

	binary.LittleEndian.PutUint64(b[16:24], uint64(e.Offset))
	binary.LittleEndian.PutUint64(b[24:32], uint64(e.Size))
	binary.LittleEndian.PutUint64(b[32:40], uint64(e.Param1))
	binary.LittleEndian.PutUint64(b[40:48], uint64(e.Param2))

	return b
}

// InBounds reports whether the entry's byte range lies within a file of
// length fileSize and is 8-byte aligned at Offset (spec.md invariant 4).
func (e BOMEntry) InBounds(fileSize int64) bool {
	if e.Offset < 0 || e.Size < 0 {
		return false
	}
	if e.Offset%componentAlign != 0 {
		return false
	}

	end := e.Offset + e.Size
	return end >= e.Offset && end <= fileSize
}
