package thumbnail

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/domain/entity"
	repomocks "github.com/bnema/fontview/internal/domain/repository/mocks"
	"github.com/bnema/fontview/internal/infrastructure/filesystem"
)

func goRegular(t *testing.T) *sfnt.Font {
	t.Helper()
	f, err := sfnt.Parse(goregular.TTF)
	require.NoError(t, err)
	return f
}

func hasInk(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r < 0x8000 && g < 0x8000 && bl < 0x8000 {
				return true
			}
		}
	}
	return false
}

func TestLayout(t *testing.T) {
	l := Layout{Root: "/cache/thumbnails"}
	uri := "file:///home/jens/photos/me.png"

	assert.Equal(t, "c6ee772d9e49320e97ec29a7eb5b1697", Hash(uri))
	assert.Equal(t, "/cache/thumbnails/normal/c6ee772d9e49320e97ec29a7eb5b1697.png", l.Path(uri, 128))
	assert.Equal(t, "/cache/thumbnails/large/c6ee772d9e49320e97ec29a7eb5b1697.png", l.Path(uri, 256))
	assert.Equal(t, "/cache/thumbnails/fail/fontview/c6ee772d9e49320e97ec29a7eb5b1697.png", l.FailPath(uri))
}

func TestFlavor(t *testing.T) {
	assert.Equal(t, "normal", Flavor(64))
	assert.Equal(t, "normal", Flavor(128))
	assert.Equal(t, "large", Flavor(129))
	assert.Equal(t, "x-large", Flavor(512))
	assert.Equal(t, "xx-large", Flavor(1024))
}

func TestSampleFor(t *testing.T) {
	f := goRegular(t)

	s, err := SampleFor(f, "Aa")
	require.NoError(t, err)
	assert.Equal(t, "Aa", s)

	s, err = SampleFor(f, "一丁")
	require.NoError(t, err)
	assert.Equal(t, "AB", s)
}

func TestRender(t *testing.T) {
	img, err := Render(goRegular(t), 128, DefaultSampleText)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 128, 128), img.Bounds())
	assert.True(t, hasInk(img))

	_, err = Render(goRegular(t), 0, DefaultSampleText)
	assert.Error(t, err)
}

func TestFallbackIcon(t *testing.T) {
	a := FallbackIcon(64)
	b := FallbackIcon(64)
	assert.Same(t, a, b)
	assert.Equal(t, 64, a.Bounds().Dx())
	assert.NotEqual(t, color.RGBAModel.Convert(color.White), color.RGBAModel.Convert(a.At(32, 32)))
}

func TestFactory_GenerateAndSave(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0o600))
	uri := filesystem.FileURI(fontPath)
	mtime := time.Unix(1700000000, 0)

	repo := repomocks.NewMockThumbnailRepository(t)
	f := NewFactory(Config{Root: filepath.Join(dir, "thumbnails"), Size: 128}, repo)

	img, err := f.Generate(ctx, uri, "font/ttf")
	require.NoError(t, err)
	assert.True(t, hasInk(img))

	want := f.Layout().Path(uri, 128)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(e *entity.ThumbnailEntry) bool {
		return e.URI == uri && e.Path == want && !e.Failed && e.MTime.Equal(mtime) && e.Size == 128
	})).Return(nil)

	require.NoError(t, f.Save(ctx, img, uri, mtime))
	info, err := os.Stat(want)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(cacheFilePerm), info.Mode().Perm())
}

func TestFactory_GenerateRejects(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f := NewFactory(Config{Root: dir}, repomocks.NewMockThumbnailRepository(t))

	_, err := f.Generate(ctx, "file:///x/readme.txt", "text/plain")
	assert.ErrorIs(t, err, port.ErrNoThumbnailer)

	broken := filepath.Join(dir, "broken.ttf")
	require.NoError(t, os.WriteFile(broken, []byte("nope"), 0o600))
	_, err = f.Generate(ctx, filesystem.FileURI(broken), "font/ttf")
	assert.ErrorIs(t, err, port.ErrUnsupportedFont)
}

func TestFactory_MarkFailedAndPurge(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "thumbnails")
	repo := repomocks.NewMockThumbnailRepository(t)
	f := NewFactory(Config{Root: root}, repo)
	uri := "file:///fonts/broken.ttf"

	var saved *entity.ThumbnailEntry
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *entity.ThumbnailEntry) { saved = e }).
		Return(nil)

	require.NoError(t, f.MarkFailed(ctx, uri, time.Unix(10, 0)))
	require.NotNil(t, saved)
	assert.True(t, saved.Failed)
	assert.FileExists(t, f.Layout().FailPath(uri))

	repo.EXPECT().List(mock.Anything).Return([]*entity.ThumbnailEntry{saved}, nil)
	repo.EXPECT().DeleteAll(mock.Anything).Return(int64(1), nil)

	entries, size, err := f.Usage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, entries)
	assert.Positive(t, size)

	n, err := f.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoDirExists(t, f.Layout().FailDir())
}
