package container_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ling-corp/ziggurat/container"
	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/section"
)

// buildContainer assembles a minimal valid container file: a header, one
// BOM entry pointing at a Blob payload, and the payload itself.
func buildContainer(t *testing.T, withChecksum bool) string {
	t.Helper()

	payload := []byte("hello, ziggurat")
	for len(payload)%8 != 0 {
		payload = append(payload, 0)
	}

	h := section.Header{
		Family:    'Z',
		Class:     'V',
		Ctype:     'c',
		Allocated: 1,
		Used:      1,
		UUID:      uuid.New(),
		Comment:   "test fixture",
	}

	e := section.BOMEntry{
		Family: h.Family,
		Ctype:  format.CtypeBlob,
		Mode:   format.ModePlain,
		Name:   "payload",
		Offset: int64(section.BOMOffset + 1*section.BOMEntrySize),
		Size:   int64(len(payload)),
	}

	body := append(h.Bytes(), e.Bytes()...)
	body = append(body, payload...)

	if withChecksum {
		sum := int64(xxhash.Sum64(body[section.HeaderSize:]))
		h.Extensions = sum
		body = append(h.Bytes(), e.Bytes()...)
		body = append(body, payload...)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.zigv")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	return path
}

func TestContainer_OpenAndRead(t *testing.T) {
	path := buildContainer(t, false)

	c, err := container.Open(path)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, format.PlainStringVariable, c.Type())
	assert.Equal(t, "test fixture", c.Comment())
	assert.True(t, c.Has("payload"))
	assert.False(t, c.Has("missing"))

	data, ok := c.Payload("payload")
	require.True(t, ok)
	assert.Equal(t, "hello, ziggurat", string(data[:15]))
}

func TestContainer_ChecksumVerified(t *testing.T) {
	path := buildContainer(t, true)

	c, err := container.Open(path)
	require.NoError(t, err)
	defer c.Close()

	data, ok := c.Payload("payload")
	require.True(t, ok)
	assert.Equal(t, "hello, ziggurat", string(data[:15]))
}

func TestContainer_ChecksumMismatch(t *testing.T) {
	path := buildContainer(t, true)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xFF
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err = container.Open(path)
	assert.Error(t, err)
}

func TestContainer_UnknownType(t *testing.T) {
	path := buildContainer(t, false)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	raw[11] = 'Q' // corrupt family byte
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err = container.Open(path)
	assert.Error(t, err)
}
