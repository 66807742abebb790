// Package thumbnail renders font previews and stores them in the
// freedesktop thumbnail cache.
package thumbnail

import (
	"crypto/md5" //nolint:gosec // the cache naming scheme mandates MD5
	"encoding/hex"
	"path/filepath"
)

// appName names this application's directory under fail/.
const appName = "fontview"

// Flavor returns the cache subdirectory for previews of the given edge size.
func Flavor(size int) string {
	switch {
	case size <= 128:
		return "normal"
	case size <= 256:
		return "large"
	case size <= 512:
		return "x-large"
	default:
		return "xx-large"
	}
}

// Hash returns the cache file stem for uri.
func Hash(uri string) string {
	sum := md5.Sum([]byte(uri)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// Layout resolves thumbnail paths below a cache root such as
// $XDG_CACHE_HOME/thumbnails.
type Layout struct {
	Root string
}

// Path returns where the preview of uri at size is stored.
func (l Layout) Path(uri string, size int) string {
	return filepath.Join(l.Root, Flavor(size), Hash(uri)+".png")
}

// FailPath returns where the failure marker for uri is stored.
func (l Layout) FailPath(uri string) string {
	return filepath.Join(l.FailDir(), Hash(uri)+".png")
}

// FailDir returns the directory holding this application's failure markers.
func (l Layout) FailDir() string {
	return filepath.Join(l.Root, "fail", appName)
}
