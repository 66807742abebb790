package thumbnail

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrNoGlyphs is returned when a font covers none of the preview characters.
var ErrNoGlyphs = errors.New("font has no previewable glyphs")

const (
	// DefaultSampleText is drawn when the font covers it.
	DefaultSampleText = "Aa"

	fillRatio = 0.85
)

var (
	background = color.White
	foreground = color.Black
)

// fallbackRanges are searched for covered characters when a font lacks the
// sample text, as symbol and non-Latin fonts do.
var fallbackRanges = [][2]rune{
	{0x0041, 0x005A}, // Latin capitals
	{0x0391, 0x03A9}, // Greek
	{0x0410, 0x042F}, // Cyrillic
	{0x05D0, 0x05EA}, // Hebrew
	{0x0627, 0x064A}, // Arabic
	{0x0905, 0x0939}, // Devanagari
	{0x3041, 0x3096}, // Hiragana
	{0x4E00, 0x4E20}, // CJK
	{0xAC00, 0xAC20}, // Hangul
	{0x2600, 0x26FF}, // Miscellaneous symbols
	{0xF020, 0xF0FF}, // Symbol fonts mapped to the private use area
	{0x0021, 0x007E}, // ASCII punctuation and digits
}

// SampleFor returns sample when f covers all of it, otherwise up to two
// characters f does cover.
func SampleFor(f *sfnt.Font, sample string) (string, error) {
	var buf sfnt.Buffer
	covered := func(r rune) bool {
		idx, err := f.GlyphIndex(&buf, r)
		return err == nil && idx != 0
	}

	all := sample != ""
	for _, r := range sample {
		if !covered(r) {
			all = false
			break
		}
	}
	if all {
		return sample, nil
	}

	var picked []rune
	for _, rng := range fallbackRanges {
		for r := rng[0]; r <= rng[1] && len(picked) < 2; r++ {
			if covered(r) {
				picked = append(picked, r)
			}
		}
		if len(picked) == 2 {
			break
		}
	}
	if len(picked) == 0 {
		return "", ErrNoGlyphs
	}
	return string(picked), nil
}

// Render draws sample in f centered on a size×size white square. The text
// is scaled to fill most of the square's width.
func Render(f *sfnt.Font, size int, sample string) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid preview size %d", size)
	}
	text, err := SampleFor(f, sample)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(size, size)
	dc.SetColor(background)
	dc.Clear()

	points := float64(size) * 0.6
	face, err := newFace(f, points)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	limit := float64(size) * fillRatio
	if w, h := dc.MeasureString(text); w > limit || h > limit {
		scale := limit / max(w, h)
		_ = face.Close()
		if face, err = newFace(f, points*scale); err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
	}
	defer func() { _ = face.Close() }()

	dc.SetColor(foreground)
	dc.DrawStringAnchored(text, float64(size)/2, float64(size)/2, 0.5, 0.5)
	return dc.Image(), nil
}

func newFace(f *sfnt.Font, points float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}
