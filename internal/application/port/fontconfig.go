// Package port defines the interfaces the application layer needs from its collaborators.
package port

import (
	"context"
	"errors"

	"github.com/bnema/fontview/internal/domain/entity"
)

// ErrFontConfigUnavailable is returned when the font database cannot be (re)initialized.
var ErrFontConfigUnavailable = errors.New("font configuration unavailable")

// FontConfig is the font-configuration database.
type FontConfig interface {
	// Reinitialize reloads the database configuration.
	// Returns ErrFontConfigUnavailable (possibly wrapped) if the database cannot be used.
	Reinitialize(ctx context.Context) error

	// ListFonts returns every font known to the database with file, family,
	// weight and slant filled in. An empty result is not an error.
	ListFonts(ctx context.Context) ([]entity.FontFace, error)

	// FontDirs returns the directories the database scans for fonts.
	FontDirs(ctx context.Context) ([]string, error)
}
