package variable_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/section"
	"github.com/ling-corp/ziggurat/varint"
)

func alignUp8(b []byte) []byte {
	for len(b)%8 != 0 {
		b = append(b, 0)
	}

	return b
}

// uncompressedVectorPayload builds a Vector(uncompressed) payload for
// n*d row-major int64 values.
func uncompressedVectorPayload(rows [][]int64) []byte {
	n := len(rows)
	d := 0
	if n > 0 {
		d = len(rows[0])
	}

	data := make([]byte, n*d*8)
	for i, row := range rows {
		for j, v := range row {
			off := (i*d + j) * 8
			binary.LittleEndian.PutUint64(data[off:off+8], uint64(v))
		}
	}

	return data
}

func uncompressedIndexPayload(keys, vals []int64) []byte {
	data := make([]byte, len(keys)*16)
	for i := range keys {
		off := i * 16
		binary.LittleEndian.PutUint64(data[off:off+8], uint64(keys[i]))
		binary.LittleEndian.PutUint64(data[off+8:off+16], uint64(vals[i]))
	}

	return data
}

func stringVectorPayload(strs []string) []byte {
	n := len(strs)
	tableLen := (n + 1) * 8

	var payload []byte
	offsets := make([]int64, n+1)
	offsets[0] = int64(tableLen)
	for i, s := range strs {
		payload = append(payload, s...)
		offsets[i+1] = offsets[i] + int64(len(s))
	}

	data := make([]byte, tableLen)
	for i, off := range offsets {
		binary.LittleEndian.PutUint64(data[i*8:i*8+8], uint64(off))
	}

	return append(data, payload...)
}

func stringListPayload(strs []string) []byte {
	var out []byte
	for _, s := range strs {
		out = append(out, s...)
		out = append(out, 0)
	}

	return out
}

func invertedIndexPayload(postingsByType [][]int64) []byte {
	k := len(postingsByType)
	head := make([]byte, k*16)

	var payload []byte
	for t, positions := range postingsByType {
		off := int64(len(payload))

		prev := int64(0)
		for _, p := range positions {
			payload = varint.AppendEncode(payload, p-prev)
			prev = p
		}

		binary.LittleEndian.PutUint64(head[t*16:t*16+8], uint64(len(positions)))
		binary.LittleEndian.PutUint64(head[t*16+8:t*16+16], uint64(off))
	}

	return append(head, payload...)
}

// componentSpec describes one named component to be laid out into a
// synthetic container fixture.
type componentSpec struct {
	name           string
	ctype          byte
	mode           format.ComponentMode
	param1, param2 int64
	payload        []byte
}

func writeContainer(t *testing.T, h section.Header, specs []componentSpec) string {
	t.Helper()

	h.Allocated = uint8(len(specs))
	h.Used = uint8(len(specs))

	bomLen := int64(section.BOMOffset + len(specs)*section.BOMEntrySize)
	off := bomLen

	entries := make([]section.BOMEntry, len(specs))
	for i, s := range specs {
		payload := alignUp8(s.payload)
		entries[i] = section.BOMEntry{
			Family: h.Family,
			Ctype:  s.ctype,
			Mode:   s.mode,
			Name:   s.name,
			Offset: off,
			Size:   int64(len(payload)),
			Param1: s.param1,
			Param2: s.param2,
		}
		specs[i].payload = payload
		off += int64(len(payload))
	}

	body := h.Bytes()
	for _, e := range entries {
		body = append(body, e.Bytes()...)
	}
	for _, s := range specs {
		body = append(body, s.payload...)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.zigv")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	return path
}

func newUUID() uuid.UUID { return uuid.New() }
