//go:build !unix

package filesystem

import (
	"context"
	"errors"
)

// FreeSpace is not implemented on this platform.
func (a *Adapter) FreeSpace(context.Context, string) (uint64, error) {
	return 0, errors.ErrUnsupported
}
