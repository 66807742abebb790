// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"strings"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/logging"
)

// regularStyle is omitted from display names.
const regularStyle = "Regular"

// ResolveFontNameUseCase derives display names from font files.
type ResolveFontNameUseCase struct {
	rasterizer port.Rasterizer
}

// NewResolveFontNameUseCase creates a new name resolver.
func NewResolveFontNameUseCase(rasterizer port.Rasterizer) *ResolveFontNameUseCase {
	return &ResolveFontNameUseCase{rasterizer: rasterizer}
}

// Execute opens the font at path and returns its display name.
// Returns false when the file cannot be opened or has no family name;
// the failure is logged and the caller skips the font.
func (uc *ResolveFontNameUseCase) Execute(ctx context.Context, path string) (string, bool) {
	log := logging.FromContext(ctx)

	face, err := uc.rasterizer.Open(ctx, path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("cannot open font file")
		return "", false
	}
	defer func() {
		if closeErr := face.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Str("path", path).Msg("failed to close font face")
		}
	}()

	name := DisplayName(face.FamilyName(), face.StyleName())
	if name == "" {
		log.Debug().Str("path", path).Msg("font has no family name")
		return "", false
	}
	return name, true
}

// DisplayName builds "Family, Style", or just "Family" for the regular style.
func DisplayName(family, style string) string {
	family = strings.TrimSpace(family)
	style = strings.TrimSpace(style)
	if family == "" {
		return ""
	}
	if style == "" || style == regularStyle {
		return family
	}
	return family + ", " + style
}
