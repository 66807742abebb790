package thumbnail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/domain/entity"
	"github.com/bnema/fontview/internal/domain/repository"
	"github.com/bnema/fontview/internal/infrastructure/filesystem"
	"github.com/bnema/fontview/internal/infrastructure/fonts"
	"github.com/bnema/fontview/internal/logging"
)

const (
	cacheDirPerm  = 0o700
	cacheFilePerm = 0o600
)

// Config configures a Factory.
type Config struct {
	// Root is the thumbnail cache root, e.g. ~/.cache/thumbnails.
	Root string
	// Size is the preview edge length in pixels.
	Size int
	// SampleText is drawn in each font.
	SampleText string
}

// Factory implements port.ThumbnailFactory for font files.
type Factory struct {
	layout Layout
	index  repository.ThumbnailRepository
	size   int
	sample string
	now    func() time.Time
}

// NewFactory creates a factory writing below cfg.Root and recording every
// preview in index.
func NewFactory(cfg Config, index repository.ThumbnailRepository) *Factory {
	if cfg.SampleText == "" {
		cfg.SampleText = DefaultSampleText
	}
	if cfg.Size <= 0 {
		cfg.Size = 128
	}
	return &Factory{
		layout: Layout{Root: cfg.Root},
		index:  index,
		size:   cfg.Size,
		sample: cfg.SampleText,
		now:    time.Now,
	}
}

// Layout returns the cache layout used by the factory.
func (f *Factory) Layout() Layout { return f.layout }

// Generate implements port.ThumbnailFactory.
func (f *Factory) Generate(ctx context.Context, uri, contentType string) (image.Image, error) {
	if !filesystem.IsFontType(contentType) {
		return nil, fmt.Errorf("%w: %s", port.ErrNoThumbnailer, contentType)
	}
	path, err := filesystem.PathFromURI(uri)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	font, err := fonts.ParseFirstFace(data)
	if err != nil {
		return nil, err
	}

	img, err := Render(font, f.size, f.sample)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", uri, err)
	}
	return img, nil
}

// Save implements port.ThumbnailFactory.
func (f *Factory) Save(ctx context.Context, img image.Image, uri string, mtime time.Time) error {
	if img == nil {
		return errors.New("nil thumbnail image")
	}
	path := f.layout.Path(uri, f.size)
	if err := writePNG(path, img, thumbText(uri, mtime)); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Str("uri", uri).Str("path", path).Msg("thumbnail saved")
	return f.index.Save(ctx, &entity.ThumbnailEntry{
		URI:       uri,
		MTime:     mtime,
		Path:      path,
		Size:      f.size,
		UpdatedAt: f.now(),
	})
}

// MarkFailed implements port.ThumbnailFactory. The marker is a 1×1 PNG so
// other thumbnailers reading the fail directory see a valid file.
func (f *Factory) MarkFailed(ctx context.Context, uri string, mtime time.Time) error {
	path := f.layout.FailPath(uri)
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1)), thumbText(uri, mtime)); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Str("uri", uri).Msg("thumbnail failure recorded")
	return f.index.Save(ctx, &entity.ThumbnailEntry{
		URI:       uri,
		MTime:     mtime,
		Path:      path,
		Size:      f.size,
		Failed:    true,
		UpdatedAt: f.now(),
	})
}

// Usage implements port.ThumbnailCache. Entries whose file is gone count
// with size zero.
func (f *Factory) Usage(ctx context.Context) (entries int, size int64, err error) {
	list, err := f.index.List(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, e := range list {
		if info, statErr := os.Stat(e.Path); statErr == nil {
			size += info.Size()
		}
	}
	return len(list), size, nil
}

// Purge implements port.ThumbnailCache. It removes every preview and failure marker this application wrote,
// then empties the index. It returns how many entries were removed.
func (f *Factory) Purge(ctx context.Context) (int64, error) {
	log := logging.FromContext(ctx)

	entries, err := f.index.List(ctx)
	if err != nil {
		return 0, err
	}

	var errs []error
	for _, e := range entries {
		if rmErr := os.Remove(e.Path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			log.Warn().Err(rmErr).Str("path", e.Path).Msg("failed to remove thumbnail")
			errs = append(errs, rmErr)
		}
	}
	if rmErr := os.RemoveAll(f.layout.FailDir()); rmErr != nil {
		errs = append(errs, rmErr)
	}

	n, err := f.index.DeleteAll(ctx)
	if err != nil {
		errs = append(errs, err)
	}
	return n, errors.Join(errs...)
}

// writePNG encodes img with the given text chunks and atomically replaces
// path with it.
func writePNG(path string, img image.Image, text []textChunk) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	data, err := insertText(buf.Bytes(), text)
	if err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), cacheDirPerm); err != nil {
		return fmt.Errorf("create thumbnail directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".fontview-*.png")
	if err != nil {
		return fmt.Errorf("create temp thumbnail: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write thumbnail: %w", err)
	}
	if err := os.Chmod(tmpPath, cacheFilePerm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod thumbnail: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename thumbnail: %w", err)
	}
	return nil
}

var (
	_ port.ThumbnailFactory = (*Factory)(nil)
	_ port.ThumbnailCache   = (*Factory)(nil)
)
