// Package bootstrap wires the font list pipeline from configuration.
package bootstrap

import (
	"context"
	"errors"
	"image"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/application/usecase"
	"github.com/bnema/fontview/internal/domain/repository"
	"github.com/bnema/fontview/internal/infrastructure/cache"
	"github.com/bnema/fontview/internal/infrastructure/collation"
	"github.com/bnema/fontview/internal/infrastructure/config"
	"github.com/bnema/fontview/internal/infrastructure/filesystem"
	"github.com/bnema/fontview/internal/infrastructure/fonts"
	"github.com/bnema/fontview/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/fontview/internal/infrastructure/scheduler"
	"github.com/bnema/fontview/internal/infrastructure/thumbnail"
	"github.com/bnema/fontview/internal/infrastructure/watcher"
	"github.com/bnema/fontview/internal/logging"
	"github.com/bnema/fontview/internal/ui/fontlist"
	"github.com/bnema/fontview/internal/ui/mainloop"
)

const rebuildKey = "rebuild"

// Pipeline holds every collaborator of the font list. Store and Registry
// belong to the goroutine draining the main loop.
type Pipeline struct {
	Config     *config.Config
	Backend    config.FontBackend
	FontConfig port.FontConfig
	Registry   *usecase.FontRegistry
	Store      *fontlist.Store
	Thumbnails *thumbnail.Factory
	Memory     *cache.LRU[string, image.Image]
	DB         *sqlite.LazyDB

	scanner   *fonts.Scanner
	pool      *scheduler.Pool
	coalescer *mainloop.Coalescer
	watcher   *watcher.Directory
}

// NewPipeline builds the pipeline. Nothing runs until Refresh is called.
// loop must be drained by the goroutine that owns the UI.
func NewPipeline(ctx context.Context, cfg *config.Config, loop port.MainLoop) *Pipeline {
	log := logging.FromContext(ctx)
	p := &Pipeline{Config: cfg}

	p.FontConfig, p.Backend = NewFontConfig(ctx, cfg)
	p.scanner, _ = p.FontConfig.(*fonts.Scanner)
	log.Debug().Str("backend", string(p.Backend)).Msg("font backend selected")

	var index repository.ThumbnailRepository
	p.Thumbnails, index, p.DB = NewThumbnailCache(cfg)
	size := cfg.Thumbnails.Size

	var memory port.Cache[string, image.Image]
	if cfg.Thumbnails.MemoryEntries > 0 {
		p.Memory = cache.NewLRU[string, image.Image](cfg.Thumbnails.MemoryEntries)
		memory = p.Memory
	}

	var collator *collation.Collator
	if cfg.Locale != "" {
		collator = collation.New(cfg.Locale)
	} else {
		collator = collation.NewFromEnv()
	}

	p.Store = fontlist.NewStore()
	p.pool = scheduler.NewPool(cfg.Workers)
	p.coalescer = mainloop.NewCoalescer(loop.Post)
	p.Registry = usecase.NewFontRegistry(usecase.FontRegistryDeps{
		FontConfig:   p.FontConfig,
		Resolver:     usecase.NewResolveFontNameUseCase(fonts.NewLibrary()),
		Thumbnails:   usecase.NewEnsureThumbnailUseCase(filesystem.NewMetadata(index), p.Thumbnails, memory, size),
		Collator:     collator,
		Store:        p.Store,
		Loop:         loop,
		Scheduler:    p.pool,
		FallbackIcon: thumbnail.FallbackIcon(size),
	})
	return p
}

// Refresh asks for a rebuild on the main loop. Requests arriving while one is
// already queued are merged into it. Safe from any goroutine.
func (p *Pipeline) Refresh(ctx context.Context) {
	p.coalescer.Post(rebuildKey, func() {
		if err := p.Registry.Rebuild(ctx); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("rebuild left the list empty")
		}
	})
}

// MergedRefreshes returns how many refresh requests were folded into queued ones.
func (p *Pipeline) MergedRefreshes() int {
	return p.coalescer.Merged(rebuildKey)
}

// StartWatching watches the font directories and refreshes on changes. The
// directory set is read once; directories added later are not watched.
func (p *Pipeline) StartWatching(ctx context.Context) error {
	if !p.Config.Fonts.Watch {
		return nil
	}
	ctx = logging.WithComponent(ctx, "watcher")
	log := logging.FromContext(ctx)

	if err := p.FontConfig.Reinitialize(ctx); err != nil {
		return err
	}
	dirs, err := p.FontConfig.FontDirs(ctx)
	if err != nil {
		return err
	}

	p.watcher = watcher.New(
		watcher.WithOnChange(func(ev watcher.Event, path string) {
			log.Debug().Stringer("event", ev).Str("path", path).Msg("font directory changed, rebuilding")
			p.Refresh(ctx)
		}),
		watcher.WithOnError(func(err error) {
			log.Warn().Err(err).Msg("font directory watcher error")
		}),
	)
	return p.watcher.Start(ctx, dirs)
}

// WatchedDirs returns the directories being watched.
func (p *Pipeline) WatchedDirs() []string {
	if p.watcher == nil {
		return nil
	}
	return p.watcher.Dirs()
}

// ApplyConfig takes a reloaded configuration into account: the scan backend
// picks up its new roots and the list is rebuilt. Watched directories stay
// as they were at startup.
func (p *Pipeline) ApplyConfig(ctx context.Context, cfg *config.Config) {
	if p.scanner != nil {
		p.scanner.SetRoots(cfg.Fonts.Directories)
	}
	p.Refresh(ctx)
}

// Close stops watching, cancels in-flight work and releases the database.
// Call it after the main loop stopped.
func (p *Pipeline) Close() error {
	p.coalescer.Destroy()
	p.Registry.Close()

	var errs []error
	if p.watcher != nil {
		errs = append(errs, p.watcher.Stop())
	}
	p.pool.Close()
	errs = append(errs, p.DB.Close())
	return errors.Join(errs...)
}
