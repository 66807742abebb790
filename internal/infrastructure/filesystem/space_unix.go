//go:build unix

package filesystem

import (
	"context"

	"golang.org/x/sys/unix"
)

// FreeSpace reports the blocks available to unprivileged users.
func (a *Adapter) FreeSpace(_ context.Context, path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return st.Bavail * uint64(st.Bsize), nil //nolint:gosec // Bsize is never negative
}
