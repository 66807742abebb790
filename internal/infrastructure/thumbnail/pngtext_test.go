package thumbnail

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	repomocks "github.com/bnema/fontview/internal/domain/repository/mocks"
)

// readText returns the tEXt chunks of a PNG file, checking every chunk CRC.
func readText(t *testing.T, path string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, pngSignature))

	text := make(map[string]string)
	for rest := data[8:]; len(rest) >= 12; {
		n := int(binary.BigEndian.Uint32(rest[:4]))
		require.LessOrEqual(t, 12+n, len(rest))
		typ, body := rest[4:8], rest[8:8+n]
		sum := binary.BigEndian.Uint32(rest[8+n : 12+n])
		require.Equal(t, crc32.ChecksumIEEE(append(append([]byte{}, typ...), body...)), sum, "crc of %s", typ)

		if string(typ) == "tEXt" {
			key, value, ok := strings.Cut(string(body), "\x00")
			require.True(t, ok)
			text[key] = value
		}
		rest = rest[12+n:]
	}
	return text
}

func TestFactory_SaveWritesThumbKeys(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "thumbnails")
	repo := repomocks.NewMockThumbnailRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Twice()

	f := NewFactory(Config{Root: root, Size: 128}, repo)
	uri := "file:///usr/share/fonts/Go-Regular.ttf"
	mtime := time.Unix(1700000123, 0)

	require.NoError(t, f.Save(ctx, image.NewRGBA(image.Rect(0, 0, 16, 8)), uri, mtime))
	path := f.Layout().Path(uri, 128)

	text := readText(t, path)
	assert.Equal(t, uri, text["Thumb::URI"])
	assert.Equal(t, "1700000123", text["Thumb::MTime"])
	assert.Equal(t, "fontview", text["Software"])

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())

	require.NoError(t, f.MarkFailed(ctx, uri, mtime))
	assert.Equal(t, uri, readText(t, f.Layout().FailPath(uri))["Thumb::URI"])
}

func TestInsertText_RejectsNonPNG(t *testing.T) {
	_, err := insertText([]byte("GIF89a not a png at all, clearly"), thumbText("file:///a", time.Unix(1, 0)))
	assert.Error(t, err)
}
