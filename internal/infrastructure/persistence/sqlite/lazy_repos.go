package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/domain/entity"
	"github.com/bnema/fontview/internal/domain/repository"
)

// LazyThumbnailRepository opens the database on the first repository call.
type LazyThumbnailRepository struct {
	provider port.DatabaseProvider
	repo     repository.ThumbnailRepository
	once     sync.Once
	initErr  error
}

// NewLazyThumbnailRepository wraps provider in a repository.ThumbnailRepository.
func NewLazyThumbnailRepository(provider port.DatabaseProvider) repository.ThumbnailRepository {
	return &LazyThumbnailRepository{provider: provider}
}

func (r *LazyThumbnailRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewThumbnailRepository(db)
	})
	return r.initErr
}

func (r *LazyThumbnailRepository) Get(ctx context.Context, uri string) (*entity.ThumbnailEntry, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, uri)
}

func (r *LazyThumbnailRepository) Save(ctx context.Context, entry *entity.ThumbnailEntry) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, entry)
}

func (r *LazyThumbnailRepository) Delete(ctx context.Context, uri string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, uri)
}

func (r *LazyThumbnailRepository) List(ctx context.Context) ([]*entity.ThumbnailEntry, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazyThumbnailRepository) DeleteAll(ctx context.Context) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.DeleteAll(ctx)
}
