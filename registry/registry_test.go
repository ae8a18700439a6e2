package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ling-corp/ziggurat/registry"
	"github.com/ling-corp/ziggurat/zgerr"
)

const sample = `
layers:
  - name: token
    file: token.zigl
    variables:
      - name: word
        file: word.zigv
      - name: pos
        file: pos.zigv
  - name: sentence
    file: sentence.zigl
    base: token
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	r, err := registry.Load(path)
	require.NoError(t, err)
	require.Len(t, r.Layers, 2)

	token, ok := r.LayerByFile("token.zigl")
	require.True(t, ok)
	assert.Equal(t, "token", token.Name)
	require.Len(t, token.Variables, 2)
	assert.Equal(t, "word", token.Variables[0].Name)

	sentence, ok := r.LayerByFile("sentence.zigl")
	require.True(t, ok)
	assert.Equal(t, "token", sentence.Base)

	v, ok := r.VariableByFile("pos.zigv")
	require.True(t, ok)
	assert.Equal(t, "pos", v.Name)

	_, ok = r.LayerByFile("missing.zigl")
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := registry.Load(filepath.Join(t.TempDir(), "registry.yaml"))
	assert.ErrorIs(t, err, zgerr.ErrRegistryNotFound)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))

	_, err := registry.Load(path)
	assert.ErrorIs(t, err, zgerr.ErrRegistryInvalid)
}
