// Package fonts adapts the system font database and font file parsing to the
// application ports.
package fonts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"

	"github.com/bnema/fontview/internal/application/port"
)

// collectionTag starts every TrueType/OpenType collection file.
var collectionTag = []byte("ttcf")

// Library implements port.Rasterizer by parsing files with golang.org/x/image/font/sfnt.
type Library struct{}

// NewLibrary creates a new font library.
func NewLibrary() *Library {
	return &Library{}
}

// Face is an open font face.
type Face struct {
	font   *sfnt.Font
	family string
	style  string
}

// FamilyName implements port.FontFace.
func (f *Face) FamilyName() string { return f.family }

// StyleName implements port.FontFace.
func (f *Face) StyleName() string { return f.style }

// Font returns the parsed font, or nil once closed.
func (f *Face) Font() *sfnt.Font { return f.font }

// Close implements port.FontFace.
func (f *Face) Close() error {
	f.font = nil
	return nil
}

// Open implements port.Rasterizer. Collections open their first face.
func (l *Library) Open(_ context.Context, path string) (port.FontFace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return OpenBytes(data)
}

// OpenBytes parses font data and reads its naming table.
func OpenBytes(data []byte) (*Face, error) {
	f, err := ParseFirstFace(data)
	if err != nil {
		return nil, err
	}

	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
		return nil, fmt.Errorf("%w: read family name: %v", port.ErrUnsupportedFont, err)
	}
	style, err := f.Name(&buf, sfnt.NameIDSubfamily)
	if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
		return nil, fmt.Errorf("%w: read style name: %v", port.ErrUnsupportedFont, err)
	}

	return &Face{font: f, family: family, style: style}, nil
}

// ParseFirstFace parses a single font or the first face of a collection.
func ParseFirstFace(data []byte) (*sfnt.Font, error) {
	if bytes.HasPrefix(data, collectionTag) {
		c, err := sfnt.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", port.ErrUnsupportedFont, err)
		}
		if c.NumFonts() == 0 {
			return nil, fmt.Errorf("%w: empty collection", port.ErrUnsupportedFont)
		}
		f, err := c.Font(0)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", port.ErrUnsupportedFont, err)
		}
		return f, nil
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrUnsupportedFont, err)
	}
	return f, nil
}

var _ port.Rasterizer = (*Library)(nil)
