package repository

import (
	"context"

	"github.com/bnema/fontview/internal/domain/entity"
)

// ThumbnailRepository persists the thumbnail index keyed by file URI.
type ThumbnailRepository interface {
	// Get retrieves the entry for a URI.
	// Returns nil if the URI was never thumbnailed.
	Get(ctx context.Context, uri string) (*entity.ThumbnailEntry, error)

	// Save inserts or replaces the entry for entry.URI.
	Save(ctx context.Context, entry *entity.ThumbnailEntry) error

	// Delete removes the entry for a URI.
	Delete(ctx context.Context, uri string) error

	// List returns every indexed entry.
	List(ctx context.Context) ([]*entity.ThumbnailEntry, error)

	// DeleteAll removes every entry and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
