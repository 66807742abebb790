package port

import (
	"context"
	"errors"
	"image"
	"time"
)

// ErrNoThumbnailer is returned by Generate when no thumbnailer handles the content type.
var ErrNoThumbnailer = errors.New("no thumbnailer for content type")

// ThumbnailFactory renders previews and persists them in the shared cache.
type ThumbnailFactory interface {
	// Generate renders a preview for the file at uri.
	Generate(ctx context.Context, uri, contentType string) (image.Image, error)

	// Save stores a generated preview for uri, valid for mtime.
	Save(ctx context.Context, img image.Image, uri string, mtime time.Time) error

	// MarkFailed records that uri could not be thumbnailed at mtime.
	MarkFailed(ctx context.Context, uri string, mtime time.Time) error
}

// ThumbnailCache manages the previews this application wrote to the shared cache.
type ThumbnailCache interface {
	// Usage returns how many previews are indexed and their total size on disk.
	Usage(ctx context.Context) (entries int, size int64, err error)

	// Purge removes every indexed preview and failure marker and returns how
	// many index entries were dropped.
	Purge(ctx context.Context) (int64, error)
}
