package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/fontview/internal/domain/entity"
	"github.com/bnema/fontview/internal/domain/repository"
	"github.com/bnema/fontview/internal/logging"
)

const (
	selectThumbnail = `SELECT uri, mtime, path, size, failed, updated_at FROM thumbnails WHERE uri = ?`
	selectAll       = `SELECT uri, mtime, path, size, failed, updated_at FROM thumbnails ORDER BY uri`
	upsertThumbnail = `INSERT INTO thumbnails (uri, mtime, path, size, failed, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(uri) DO UPDATE SET
    mtime = excluded.mtime,
    path = excluded.path,
    size = excluded.size,
    failed = excluded.failed,
    updated_at = excluded.updated_at`
	deleteThumbnail  = `DELETE FROM thumbnails WHERE uri = ?`
	deleteThumbnails = `DELETE FROM thumbnails`
)

type thumbnailRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewThumbnailRepository returns a repository backed by db.
func NewThumbnailRepository(db *sql.DB) repository.ThumbnailRepository {
	return &thumbnailRepo{db: db, now: time.Now}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanThumbnail(row rowScanner) (*entity.ThumbnailEntry, error) {
	var (
		e         entity.ThumbnailEntry
		mtime     int64
		failed    int64
		size      int64
		updatedAt int64
	)
	if err := row.Scan(&e.URI, &mtime, &e.Path, &size, &failed, &updatedAt); err != nil {
		return nil, err
	}
	e.MTime = time.Unix(mtime, 0)
	e.Size = int(size)
	e.Failed = failed != 0
	e.UpdatedAt = time.Unix(updatedAt, 0)
	return &e, nil
}

func (r *thumbnailRepo) Get(ctx context.Context, uri string) (*entity.ThumbnailEntry, error) {
	e, err := scanThumbnail(r.db.QueryRowContext(ctx, selectThumbnail, uri))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get thumbnail %s: %w", uri, err)
	}
	return e, nil
}

func (r *thumbnailRepo) Save(ctx context.Context, entry *entity.ThumbnailEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = r.now()
	}

	logging.FromContext(ctx).Debug().
		Str("uri", entry.URI).
		Bool("failed", entry.Failed).
		Msg("saving thumbnail entry")

	failed := 0
	if entry.Failed {
		failed = 1
	}
	_, err := r.db.ExecContext(ctx, upsertThumbnail,
		entry.URI, entry.MTime.Unix(), entry.Path, entry.Size, failed, entry.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("save thumbnail %s: %w", entry.URI, err)
	}
	return nil
}

func (r *thumbnailRepo) Delete(ctx context.Context, uri string) error {
	if _, err := r.db.ExecContext(ctx, deleteThumbnail, uri); err != nil {
		return fmt.Errorf("delete thumbnail %s: %w", uri, err)
	}
	return nil
}

func (r *thumbnailRepo) List(ctx context.Context) ([]*entity.ThumbnailEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectAll)
	if err != nil {
		return nil, fmt.Errorf("list thumbnails: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*entity.ThumbnailEntry
	for rows.Next() {
		e, scanErr := scanThumbnail(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan thumbnail: %w", scanErr)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *thumbnailRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteThumbnails)
	if err != nil {
		return 0, fmt.Errorf("purge thumbnails: %w", err)
	}
	return res.RowsAffected()
}
