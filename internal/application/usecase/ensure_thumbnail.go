package usecase

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // cached previews written by other thumbnailers
	_ "image/png"
	"os"
	"strconv"

	"golang.org/x/image/draw"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/logging"
)

// DefaultPreviewSize is the edge of the square previews shown in the list.
const DefaultPreviewSize = 128

// EnsureThumbnailUseCase finds or creates the preview image of a font file.
type EnsureThumbnailUseCase struct {
	metadata port.FileMetadata
	factory  port.ThumbnailFactory
	memory   port.Cache[string, image.Image]
	size     int
}

// NewEnsureThumbnailUseCase creates a new thumbnail use case.
// memory may be nil to disable the decoded-preview cache.
func NewEnsureThumbnailUseCase(
	metadata port.FileMetadata,
	factory port.ThumbnailFactory,
	memory port.Cache[string, image.Image],
	size int,
) *EnsureThumbnailUseCase {
	if size <= 0 {
		size = DefaultPreviewSize
	}
	return &EnsureThumbnailUseCase{
		metadata: metadata,
		factory:  factory,
		memory:   memory,
		size:     size,
	}
}

// Size returns the preview edge in pixels.
func (uc *EnsureThumbnailUseCase) Size() int {
	return uc.size
}

// Execute returns the preview for the font at path, or nil when none can be produced.
// A file whose thumbnailing previously failed is not retried. A cached preview that
// cannot be read or decoded is regenerated.
func (uc *EnsureThumbnailUseCase) Execute(ctx context.Context, path string) image.Image {
	log := logging.FromContext(ctx)

	thumb, err := uc.metadata.QueryThumbnail(ctx, path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("can't query thumbnail info")
		return nil
	}
	if thumb.Failed {
		return nil
	}

	if thumb.Path != "" {
		img, loadErr := uc.loadCached(thumb)
		if loadErr == nil {
			return img
		}
		log.Debug().Err(loadErr).Str("thumbnail", thumb.Path).Msg("can't read cached thumbnail, regenerating")
	}

	return uc.create(ctx, path)
}

// memoryKey identifies a decoded preview. The cache file path is derived from
// the URI alone, so the font's mtime is part of the key.
func memoryKey(thumb port.ThumbnailInfo) string {
	return thumb.Path + "@" + strconv.FormatInt(thumb.MTime.Unix(), 10)
}

func (uc *EnsureThumbnailUseCase) loadCached(thumb port.ThumbnailInfo) (image.Image, error) {
	key := memoryKey(thumb)
	if uc.memory != nil {
		if img, ok := uc.memory.Get(key); ok {
			return img, nil
		}
	}

	f, err := os.Open(thumb.Path)
	if err != nil {
		return nil, fmt.Errorf("open thumbnail: %w", err)
	}
	defer func() { _ = f.Close() }()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode thumbnail: %w", err)
	}

	img := ScaleToFit(src, uc.size)
	if uc.memory != nil {
		uc.memory.Set(key, img)
	}
	return img, nil
}

func (uc *EnsureThumbnailUseCase) create(ctx context.Context, path string) image.Image {
	log := logging.FromContext(ctx)

	info, err := uc.metadata.QueryInfo(ctx, path)
	if err != nil {
		// Not reported beyond the log: the fallback icon stays.
		log.Debug().Err(err).Str("path", path).Msg("can't query file info for thumbnail")
		return nil
	}

	img, genErr := uc.factory.Generate(ctx, info.URI, info.ContentType)
	if genErr != nil || img == nil {
		log.Debug().Err(genErr).Str("uri", info.URI).Msg("thumbnail generation failed")
		if err := uc.factory.MarkFailed(ctx, info.URI, info.ModTime); err != nil {
			log.Debug().Err(err).Str("uri", info.URI).Msg("failed to record thumbnail failure")
		}
		return nil
	}

	if err := uc.factory.Save(ctx, img, info.URI, info.ModTime); err != nil {
		log.Debug().Err(err).Str("uri", info.URI).Msg("failed to save thumbnail")
	}
	return ScaleToFit(img, uc.size)
}

// ScaleToFit scales src so that its longer edge is size pixels, keeping its
// aspect ratio. Images that already fit exactly are returned unchanged.
func ScaleToFit(src image.Image, size int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || size <= 0 {
		return src
	}

	dw, dh := size, size
	if w > h {
		dh = max(1, h*size/w)
	} else if h > w {
		dw = max(1, w*size/h)
	}
	if dw == w && dh == h {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
