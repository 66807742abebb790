package port

import (
	"context"
	"time"
)

// FileInfo holds the attributes needed to create a thumbnail.
type FileInfo struct {
	URI         string
	ContentType string
	ModTime     time.Time
}

// ThumbnailInfo holds the attributes describing an existing thumbnail.
type ThumbnailInfo struct {
	// Path is the cached thumbnail path, empty when none is valid for the current file.
	Path string
	// MTime is the modification time of the font file the thumbnail describes.
	MTime time.Time
	// Failed is true when thumbnailing the current file previously failed.
	Failed bool
}

// FileMetadata queries filesystem attributes and the persistent thumbnail cache.
type FileMetadata interface {
	QueryInfo(ctx context.Context, path string) (FileInfo, error)
	QueryThumbnail(ctx context.Context, path string) (ThumbnailInfo, error)
}
