package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider opens the thumbnail index on first use, so commands that
// never touch thumbnails never pay for migrations.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
	Path() string
}
