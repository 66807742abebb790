package usecase_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/application/port/mocks"
	"github.com/bnema/fontview/internal/application/usecase"
	"github.com/bnema/fontview/internal/infrastructure/cache"
)

const fontPath = "/usr/share/fonts/go/Go-Regular.ttf"

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thumb.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func fileInfo() port.FileInfo {
	return port.FileInfo{
		URI:         "file://" + fontPath,
		ContentType: "font/ttf",
		ModTime:     time.Unix(1700000000, 0),
	}
}

func TestEnsureThumbnailUseCase_FailedFlagSkipsGeneration(t *testing.T) {
	meta := mocks.NewMockFileMetadata(t)
	factory := mocks.NewMockThumbnailFactory(t)

	meta.EXPECT().QueryThumbnail(mock.Anything, fontPath).Return(port.ThumbnailInfo{Failed: true}, nil)

	uc := usecase.NewEnsureThumbnailUseCase(meta, factory, nil, 128)
	assert.Nil(t, uc.Execute(testContext(), fontPath))
}

func TestEnsureThumbnailUseCase_CachedThumbnailSkipsGeneration(t *testing.T) {
	meta := mocks.NewMockFileMetadata(t)
	factory := mocks.NewMockThumbnailFactory(t)
	cached := writePNG(t, solid(256, 128))

	meta.EXPECT().QueryThumbnail(mock.Anything, fontPath).Return(port.ThumbnailInfo{Path: cached}, nil)

	uc := usecase.NewEnsureThumbnailUseCase(meta, factory, nil, 128)
	img := uc.Execute(testContext(), fontPath)

	require.NotNil(t, img)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
	factory.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureThumbnailUseCase_MemoryCacheAvoidsDecode(t *testing.T) {
	meta := mocks.NewMockFileMetadata(t)
	factory := mocks.NewMockThumbnailFactory(t)
	memory := cache.NewLRU[string, image.Image](4)
	cached := writePNG(t, solid(128, 128))

	meta.EXPECT().QueryThumbnail(mock.Anything, fontPath).Return(port.ThumbnailInfo{Path: cached}, nil).Twice()

	uc := usecase.NewEnsureThumbnailUseCase(meta, factory, memory, 128)
	first := uc.Execute(testContext(), fontPath)
	require.NotNil(t, first)

	// The file is gone, only the memory cache can answer now.
	require.NoError(t, os.Remove(cached))
	second := uc.Execute(testContext(), fontPath)

	assert.Same(t, first, second)
	assert.Equal(t, uint64(1), memory.Stats().Hits)
}

func TestEnsureThumbnailUseCase_RewrittenFontIsNotServedFromMemory(t *testing.T) {
	meta := mocks.NewMockFileMetadata(t)
	factory := mocks.NewMockThumbnailFactory(t)
	memory := cache.NewLRU[string, image.Image](4)

	cached := writePNG(t, solid(128, 128))
	before := time.Unix(1700000000, 0)
	after := before.Add(time.Hour)

	meta.EXPECT().QueryThumbnail(mock.Anything, fontPath).
		Return(port.ThumbnailInfo{Path: cached, MTime: before}, nil).Twice()

	uc := usecase.NewEnsureThumbnailUseCase(meta, factory, memory, 128)
	old := uc.Execute(testContext(), fontPath)
	require.NotNil(t, old)
	require.Same(t, old, uc.Execute(testContext(), fontPath))

	// The font was rewritten and its preview regenerated at the same cache path.
	blue := image.NewRGBA(image.Rect(0, 0, 128, 128))
	for i := 0; i < len(blue.Pix); i += 4 {
		blue.Pix[i+2], blue.Pix[i+3] = 200, 255
	}
	f, err := os.Create(cached)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, blue))
	require.NoError(t, f.Close())

	meta.EXPECT().QueryThumbnail(mock.Anything, fontPath).
		Return(port.ThumbnailInfo{Path: cached, MTime: after}, nil).Twice()

	fresh := uc.Execute(testContext(), fontPath)
	require.NotNil(t, fresh)
	assert.NotSame(t, old, fresh)
	_, _, b, _ := fresh.At(64, 64).RGBA()
	assert.Greater(t, b, uint32(0))

	assert.Same(t, fresh, uc.Execute(testContext(), fontPath))
}

func TestEnsureThumbnailUseCase_UnreadableCacheRegenerates(t *testing.T) {
	meta := mocks.NewMockFileMetadata(t)
	factory := mocks.NewMockThumbnailFactory(t)

	corrupt := filepath.Join(t.TempDir(), "thumb.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a png"), 0o600))

	info := fileInfo()
	generated := solid(128, 128)

	meta.EXPECT().QueryThumbnail(mock.Anything, fontPath).Return(port.ThumbnailInfo{Path: corrupt}, nil)
	meta.EXPECT().QueryInfo(mock.Anything, fontPath).Return(info, nil)
	factory.EXPECT().Generate(mock.Anything, info.URI, info.ContentType).Return(generated, nil)
	factory.EXPECT().Save(mock.Anything, generated, info.URI, info.ModTime).Return(nil)

	uc := usecase.NewEnsureThumbnailUseCase(meta, factory, nil, 128)
	img := uc.Execute(testContext(), fontPath)

	assert.Same(t, generated, img)
}

func TestEnsureThumbnailUseCase_GeneratesAndSaves(t *testing.T) {
	meta := mocks.NewMockFileMetadata(t)
	factory := mocks.NewMockThumbnailFactory(t)

	info := fileInfo()
	generated := solid(64, 256)

	meta.EXPECT().QueryThumbnail(mock.Anything, fontPath).Return(port.ThumbnailInfo{}, nil)
	meta.EXPECT().QueryInfo(mock.Anything, fontPath).Return(info, nil)
	factory.EXPECT().Generate(mock.Anything, info.URI, info.ContentType).Return(generated, nil)
	factory.EXPECT().Save(mock.Anything, generated, info.URI, info.ModTime).Return(nil)

	uc := usecase.NewEnsureThumbnailUseCase(meta, factory, nil, 128)
	img := uc.Execute(testContext(), fontPath)

	require.NotNil(t, img)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestEnsureThumbnailUseCase_SaveErrorStillReturnsImage(t *testing.T) {
	meta := mocks.NewMockFileMetadata(t)
	factory := mocks.NewMockThumbnailFactory(t)

	info := fileInfo()
	generated := solid(128, 128)

	meta.EXPECT().QueryThumbnail(mock.Anything, fontPath).Return(port.ThumbnailInfo{}, nil)
	meta.EXPECT().QueryInfo(mock.Anything, fontPath).Return(info, nil)
	factory.EXPECT().Generate(mock.Anything, info.URI, info.ContentType).Return(generated, nil)
	factory.EXPECT().Save(mock.Anything, generated, info.URI, info.ModTime).Return(errors.New("disk full"))

	uc := usecase.NewEnsureThumbnailUseCase(meta, factory, nil, 128)
	assert.NotNil(t, uc.Execute(testContext(), fontPath))
}

func TestEnsureThumbnailUseCase_GenerateFailureMarksFailed(t *testing.T) {
	meta := mocks.NewMockFileMetadata(t)
	factory := mocks.NewMockThumbnailFactory(t)

	info := fileInfo()

	meta.EXPECT().QueryThumbnail(mock.Anything, fontPath).Return(port.ThumbnailInfo{}, nil)
	meta.EXPECT().QueryInfo(mock.Anything, fontPath).Return(info, nil)
	factory.EXPECT().Generate(mock.Anything, info.URI, info.ContentType).Return(nil, port.ErrNoThumbnailer)
	factory.EXPECT().MarkFailed(mock.Anything, info.URI, info.ModTime).Return(nil)

	uc := usecase.NewEnsureThumbnailUseCase(meta, factory, nil, 128)
	assert.Nil(t, uc.Execute(testContext(), fontPath))
}

func TestEnsureThumbnailUseCase_MetadataErrors(t *testing.T) {
	t.Run("query thumbnail", func(t *testing.T) {
		meta := mocks.NewMockFileMetadata(t)
		factory := mocks.NewMockThumbnailFactory(t)
		meta.EXPECT().QueryThumbnail(mock.Anything, fontPath).Return(port.ThumbnailInfo{}, os.ErrNotExist)

		uc := usecase.NewEnsureThumbnailUseCase(meta, factory, nil, 128)
		assert.Nil(t, uc.Execute(testContext(), fontPath))
	})

	t.Run("query info", func(t *testing.T) {
		meta := mocks.NewMockFileMetadata(t)
		factory := mocks.NewMockThumbnailFactory(t)
		meta.EXPECT().QueryThumbnail(mock.Anything, fontPath).Return(port.ThumbnailInfo{}, nil)
		meta.EXPECT().QueryInfo(mock.Anything, fontPath).Return(port.FileInfo{}, os.ErrPermission)

		uc := usecase.NewEnsureThumbnailUseCase(meta, factory, nil, 128)
		assert.Nil(t, uc.Execute(testContext(), fontPath))
	})
}

func TestNewEnsureThumbnailUseCase_DefaultSize(t *testing.T) {
	uc := usecase.NewEnsureThumbnailUseCase(nil, nil, nil, 0)
	assert.Equal(t, usecase.DefaultPreviewSize, uc.Size())
}

func TestScaleToFit(t *testing.T) {
	tests := []struct {
		name         string
		w, h, size   int
		wantW, wantH int
	}{
		{"square", 256, 256, 128, 128, 128},
		{"wide", 300, 100, 150, 150, 50},
		{"tall", 100, 400, 100, 25, 100},
		{"upscale", 32, 16, 128, 128, 64},
		{"exact", 128, 128, 128, 128, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := usecase.ScaleToFit(solid(tt.w, tt.h), tt.size)
			assert.Equal(t, tt.wantW, out.Bounds().Dx())
			assert.Equal(t, tt.wantH, out.Bounds().Dy())
		})
	}
}
