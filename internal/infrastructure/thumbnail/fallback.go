package thumbnail

import (
	"image"
	"image/color"
	"sync"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fallbackMu    sync.Mutex
	fallbackIcons = map[int]image.Image{}

	fallbackFill   = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	fallbackStroke = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	fallbackText   = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// FallbackIcon returns the generic font icon shown until a preview is ready.
// Icons are built once per size and shared, so callers must not modify them.
func FallbackIcon(size int) image.Image {
	if size <= 0 {
		size = 1
	}

	fallbackMu.Lock()
	defer fallbackMu.Unlock()

	if img, ok := fallbackIcons[size]; ok {
		return img
	}
	img := drawFallback(size)
	fallbackIcons[size] = img
	return img
}

func drawFallback(size int) image.Image {
	s := float64(size)
	margin := s * 0.08
	radius := s * 0.12

	dc := gg.NewContext(size, size)
	dc.SetColor(fallbackFill)
	dc.DrawRoundedRectangle(margin, margin, s-2*margin, s-2*margin, radius)
	dc.Fill()
	dc.SetColor(fallbackStroke)
	dc.SetLineWidth(max(1, s/64))
	dc.DrawRoundedRectangle(margin, margin, s-2*margin, s-2*margin, radius)
	dc.Stroke()

	f, err := opentype.Parse(goregular.TTF)
	if err == nil {
		if face, faceErr := newFace(f, s*0.4); faceErr == nil {
			dc.SetFontFace(face)
			dc.SetColor(fallbackText)
			dc.DrawStringAnchored("Aa", s/2, s/2, 0.5, 0.5)
			_ = face.Close()
		}
	}
	return dc.Image()
}
