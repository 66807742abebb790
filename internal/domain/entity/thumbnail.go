package entity

import (
	"errors"
	"time"
)

// ErrInvalidThumbnail is returned when a thumbnail entry cannot be stored.
var ErrInvalidThumbnail = errors.New("invalid thumbnail entry")

// ThumbnailEntry is one row of the persistent thumbnail index.
// Entries are keyed by file URI and valid only for the recorded modification time.
type ThumbnailEntry struct {
	URI       string
	MTime     time.Time
	Path      string // Path of the cached PNG
	Size      int    // Edge length the PNG was rendered at
	Failed    bool
	UpdatedAt time.Time
}

// Matches reports whether the entry still describes a file modified at mtime.
// Comparison is at one second resolution, like the freedesktop Thumb::MTime key.
func (e *ThumbnailEntry) Matches(mtime time.Time) bool {
	if e == nil {
		return false
	}
	return e.MTime.Unix() == mtime.Unix()
}

// Validate checks the entry can be persisted.
func (e *ThumbnailEntry) Validate() error {
	switch {
	case e == nil:
		return ErrInvalidThumbnail
	case e.URI == "":
		return errors.Join(ErrInvalidThumbnail, errors.New("uri is empty"))
	case e.Path == "":
		return errors.Join(ErrInvalidThumbnail, errors.New("path is empty"))
	}
	return nil
}
