package ziggurat_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ling-corp/ziggurat"
	"github.com/ling-corp/ziggurat/section"
)

func writeMinimalPrimaryLayer(t *testing.T, path string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	h := section.Header{Family: 'Z', Class: 'L', Ctype: 'p', UUID: id, Dim1: 7}
	require.NoError(t, os.WriteFile(path, h.Bytes(), 0o644))

	return id
}

func TestOpenContainer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.zigl")
	id := writeMinimalPrimaryLayer(t, path)

	c, err := ziggurat.OpenContainer(path)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, id, c.UUID())
	assert.Equal(t, int64(7), c.Dim1())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	writeMinimalPrimaryLayer(t, filepath.Join(dir, "tokens.zigl"))

	ds, err := ziggurat.Open(dir)
	require.NoError(t, err)
	defer ds.Close()

	assert.NotNil(t, ds)
}
