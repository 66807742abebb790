package fonts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/bnema/fontview/internal/application/port"
)

func writeFont(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestOpenBytes_ReadsNames(t *testing.T) {
	face, err := OpenBytes(goregular.TTF)
	require.NoError(t, err)
	assert.Equal(t, "Go", face.FamilyName())
	assert.Equal(t, "Regular", face.StyleName())
	assert.NotNil(t, face.Font())

	require.NoError(t, face.Close())
	assert.Nil(t, face.Font())
}

func TestOpenBytes_RejectsGarbage(t *testing.T) {
	_, err := OpenBytes([]byte("definitely not a font"))
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrUnsupportedFont)
}

func TestParseFirstFace_BrokenCollection(t *testing.T) {
	data := append([]byte("ttcf"), make([]byte, 8)...)
	_, err := ParseFirstFace(data)
	assert.ErrorIs(t, err, port.ErrUnsupportedFont)
}

func TestLibrary_Open(t *testing.T) {
	dir := t.TempDir()
	path := writeFont(t, dir, "GoBold.ttf", gobold.TTF)

	face, err := NewLibrary().Open(context.Background(), path)
	require.NoError(t, err)
	defer func() { _ = face.Close() }()

	assert.Equal(t, "Go", face.FamilyName())
	assert.Equal(t, "Bold", face.StyleName())
}

func TestLibrary_OpenMissingFile(t *testing.T) {
	_, err := NewLibrary().Open(context.Background(), filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
}
