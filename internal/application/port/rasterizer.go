package port

import (
	"context"
	"errors"
)

// ErrUnsupportedFont is returned when a file cannot be parsed as a font.
var ErrUnsupportedFont = errors.New("unsupported font file")

// FontFace is an open face handle.
type FontFace interface {
	FamilyName() string
	StyleName() string
	Close() error
}

// Rasterizer opens font files and exposes their naming metadata.
type Rasterizer interface {
	// Open opens the first face of the font file at path.
	// The caller must Close the returned face.
	Open(ctx context.Context, path string) (FontFace, error)
}
