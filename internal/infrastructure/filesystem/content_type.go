package filesystem

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	sniffLen           = 512
	defaultContentType = "application/octet-stream"
)

// fontTypes maps font extensions to their registered media types.
var fontTypes = map[string]string{
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".ttc":   "font/collection",
	".otc":   "font/collection",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".pfb":   "application/x-font-type1",
	".pfa":   "application/x-font-type1",
	".pcf":   "application/x-font-pcf",
	".bdf":   "application/x-font-bdf",
}

// ContentType guesses the media type of the file at path, first by
// extension and then by sniffing its header.
func ContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := fontTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return sniff(path)
}

func sniff(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return defaultContentType
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && n == 0 {
		return defaultContentType
	}
	return http.DetectContentType(buf[:n])
}

// IsFontType reports whether contentType names a font format.
func IsFontType(contentType string) bool {
	ct, _, _ := strings.Cut(contentType, ";")
	ct = strings.TrimSpace(ct)
	switch {
	case strings.HasPrefix(ct, "font/"):
		return true
	case strings.HasPrefix(ct, "application/x-font"):
		return true
	case ct == "application/vnd.ms-opentype", ct == "application/font-sfnt":
		return true
	}
	return false
}
