package bootstrap

import (
	"context"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/domain/repository"
	"github.com/bnema/fontview/internal/infrastructure/config"
	"github.com/bnema/fontview/internal/infrastructure/fonts"
	"github.com/bnema/fontview/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/fontview/internal/infrastructure/thumbnail"
	"github.com/bnema/fontview/internal/logging"
)

// NewFontConfig returns the configured font database, falling back to
// scanning directories when fc-list is missing.
func NewFontConfig(ctx context.Context, cfg *config.Config) (port.FontConfig, config.FontBackend) {
	dirs := cfg.Fonts.Directories
	if cfg.Fonts.Backend != config.FontBackendScan {
		fc := fonts.NewFontConfig(dirs)
		if fc.IsAvailable() {
			return fc, config.FontBackendFontconfig
		}
		logging.FromContext(ctx).Warn().Msg("fc-list not found, scanning font directories instead")
	}
	return fonts.NewScanner(dirs), config.FontBackendScan
}

// NewThumbnailCache opens the preview cache described by cfg. The database
// is opened on first use; the caller closes it.
func NewThumbnailCache(cfg *config.Config) (*thumbnail.Factory, repository.ThumbnailRepository, *sqlite.LazyDB) {
	db := sqlite.NewLazyDB(cfg.Database.Path)
	index := sqlite.NewLazyThumbnailRepository(db)
	factory := thumbnail.NewFactory(thumbnail.Config{
		Root:       cfg.Thumbnails.CacheDir,
		Size:       cfg.Thumbnails.Size,
		SampleText: cfg.Thumbnails.SampleText,
	}, index)
	return factory, index, db
}
