package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/domain/repository"
	"github.com/bnema/fontview/internal/logging"
)

// Metadata implements port.FileMetadata on top of os.Stat and the
// thumbnail index.
type Metadata struct {
	index repository.ThumbnailRepository
}

// NewMetadata creates a metadata adapter reading thumbnails from index.
func NewMetadata(index repository.ThumbnailRepository) *Metadata {
	return &Metadata{index: index}
}

// QueryInfo implements port.FileMetadata.
func (m *Metadata) QueryInfo(_ context.Context, path string) (port.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return port.FileInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return port.FileInfo{
		URI:         FileURI(path),
		ContentType: ContentType(path),
		ModTime:     info.ModTime(),
	}, nil
}

// QueryThumbnail implements port.FileMetadata. An index entry recorded for
// another modification time, or whose PNG has vanished, is ignored.
func (m *Metadata) QueryThumbnail(ctx context.Context, path string) (port.ThumbnailInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return port.ThumbnailInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}

	uri := FileURI(path)
	entry, err := m.index.Get(ctx, uri)
	if err != nil {
		return port.ThumbnailInfo{}, err
	}
	if entry == nil || !entry.Matches(info.ModTime()) {
		return port.ThumbnailInfo{}, nil
	}
	if entry.Failed {
		return port.ThumbnailInfo{Failed: true}, nil
	}

	if _, statErr := os.Stat(entry.Path); statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			logging.FromContext(ctx).Debug().Str("uri", uri).Msg("indexed thumbnail missing on disk")
			return port.ThumbnailInfo{}, nil
		}
		return port.ThumbnailInfo{}, statErr
	}
	return port.ThumbnailInfo{Path: entry.Path, MTime: info.ModTime()}, nil
}

var _ port.FileMetadata = (*Metadata)(nil)
