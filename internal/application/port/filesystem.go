package port

import "context"

// FileSystem is what doctor and purge need from the disk: they inspect and
// remove the thumbnail cache and database without knowing their layout.
type FileSystem interface {
	// Exists reports whether path exists. A missing path is not an error.
	Exists(ctx context.Context, path string) (bool, error)
	IsDirectory(ctx context.Context, path string) (bool, error)
	// GetSize sums the files below path. Missing paths have size zero.
	GetSize(ctx context.Context, path string) (int64, error)
	RemoveAll(ctx context.Context, path string) error
	// FreeSpace returns the bytes available to unprivileged users on the
	// filesystem holding path.
	FreeSpace(ctx context.Context, path string) (uint64, error)
}
