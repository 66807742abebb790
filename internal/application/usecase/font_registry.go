package usecase

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/domain/entity"
	"github.com/bnema/fontview/internal/logging"
)

// FontRegistryDeps holds the collaborators of a FontRegistry.
type FontRegistryDeps struct {
	FontConfig   port.FontConfig
	Resolver     *ResolveFontNameUseCase
	Thumbnails   *EnsureThumbnailUseCase
	Collator     port.Collator
	Store        port.FontListStore
	Loop         port.MainLoop
	Scheduler    port.JobScheduler
	FallbackIcon image.Image
}

// FontRegistry owns the current font snapshot and drives the list rebuild pipeline:
// enumeration and name resolution in one background job, row insertion on the UI
// goroutine, then one serial thumbnail job per generation.
//
// Rebuild, Generation and Close must be called from the UI goroutine. Listener
// callbacks run on the UI goroutine.
type FontRegistry struct {
	deps FontRegistryDeps

	snapMu   sync.Mutex
	snapshot *entity.FontSnapshot

	generation uint64
	cancel     context.CancelFunc

	listenMu         sync.Mutex
	onConfigChanged  []func()
	onThumbnailsDone []func(generation uint64)
}

// NewFontRegistry creates a registry. No work happens until Rebuild is called.
func NewFontRegistry(deps FontRegistryDeps) *FontRegistry {
	return &FontRegistry{deps: deps}
}

// OnConfigChanged registers fn to run once per completed rebuild, after the rows
// are inserted and before any thumbnail arrives.
func (r *FontRegistry) OnConfigChanged(fn func()) {
	r.listenMu.Lock()
	defer r.listenMu.Unlock()
	r.onConfigChanged = append(r.onConfigChanged, fn)
}

// OnThumbnailsDone registers fn to run when a generation's thumbnail job finishes.
// Canceled generations never report.
func (r *FontRegistry) OnThumbnailsDone(fn func(generation uint64)) {
	r.listenMu.Lock()
	defer r.listenMu.Unlock()
	r.onThumbnailsDone = append(r.onThumbnailsDone, fn)
}

// Snapshot returns the current font snapshot. Safe from any goroutine.
func (r *FontRegistry) Snapshot() *entity.FontSnapshot {
	r.snapMu.Lock()
	defer r.snapMu.Unlock()
	return r.snapshot
}

// Generation returns the number of the latest rebuild.
func (r *FontRegistry) Generation() uint64 {
	return r.generation
}

// Rebuild reloads the font database and restarts the list pipeline.
// In-flight work of the previous generation is canceled and its results are
// never delivered. ctx must outlive the background work; it is the parent of
// the generation's cancellation context.
//
// The returned error is informational: a failed rebuild leaves the list empty
// until the next trigger, and no error is ever surfaced through the store.
func (r *FontRegistry) Rebuild(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "registry")
	log := logging.FromContext(ctx)

	reinitErr := r.deps.FontConfig.Reinitialize(ctx)

	r.cancelInFlight()
	r.deps.Store.Clear()

	if reinitErr != nil {
		log.Warn().Err(reinitErr).Msg("font database unavailable, list left empty")
		return fmt.Errorf("reinitialize font database: %w", reinitErr)
	}

	r.generation++
	gen := r.generation
	ctx = logging.WithGeneration(ctx, gen)
	log = logging.FromContext(ctx)

	faces, listErr := r.deps.FontConfig.ListFonts(ctx)
	if listErr != nil {
		if !errors.Is(listErr, context.Canceled) {
			log.Warn().Err(listErr).Msg("font database query failed, list left empty")
		}
		faces = nil
		listErr = fmt.Errorf("list fonts: %w", listErr)
	}

	snap := entity.NewFontSnapshot(gen, faces)
	r.swapSnapshot(snap)

	if snap.Len() == 0 {
		log.Debug().Msg("font database is empty")
		r.emitConfigChanged()
		r.emitThumbnailsDone(gen)
		return listErr
	}

	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	log.Debug().Int("faces", snap.Len()).Msg("font snapshot installed, resolving names")
	r.deps.Scheduler.Push(jobCtx, func(jobCtx context.Context) {
		r.loadFontInfos(jobCtx, snap)
	})
	return nil
}

// Close cancels any in-flight work.
func (r *FontRegistry) Close() {
	r.cancelInFlight()
}

func (r *FontRegistry) cancelInFlight() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// swapSnapshot installs snap; the previous snapshot is dropped only after the
// new one is visible.
func (r *FontRegistry) swapSnapshot(snap *entity.FontSnapshot) {
	r.snapMu.Lock()
	r.snapshot = snap
	r.snapMu.Unlock()
}

// loadFontInfos runs on a worker and resolves one display name per face.
func (r *FontRegistry) loadFontInfos(ctx context.Context, snap *entity.FontSnapshot) {
	log := logging.FromContext(ctx)

	if ctx.Err() != nil {
		return
	}

	infos := make([]entity.FontInfo, 0, snap.Len())
	skipped := 0
	for i := 0; i < snap.Len(); i++ {
		if ctx.Err() != nil {
			break
		}

		face := snap.At(i)
		name, ok := r.deps.Resolver.Execute(ctx, face.File)
		if !ok {
			skipped++
			continue
		}
		infos = append(infos, entity.FontInfo{Name: name, Path: face.File})
	}

	if ctx.Err() != nil {
		log.Debug().Int("resolved", len(infos)).Msg("generation canceled, discarding resolved fonts")
		return
	}

	log.Debug().Int("resolved", len(infos)).Int("skipped", skipped).Msg("font names resolved")
	r.deps.Loop.Post(func() {
		r.fontInfosLoaded(ctx, snap.Generation(), infos)
	})
}

// fontInfosLoaded runs on the UI goroutine: it inserts rows and starts the
// thumbnail job for them.
func (r *FontRegistry) fontInfosLoaded(ctx context.Context, gen uint64, infos []entity.FontInfo) {
	if ctx.Err() != nil {
		return
	}

	requests := make([]entity.ThumbnailRequest, 0, len(infos))
	seen := make(map[entity.RecordHandle]struct{}, len(infos))
	for _, info := range infos {
		handle := r.deps.Store.Insert(entity.FontRecord{
			Name:    info.Name,
			Path:    info.Path,
			Icon:    r.deps.FallbackIcon,
			SortKey: r.deps.Collator.Key(info.Name),
		})
		if _, dup := seen[handle]; dup {
			continue
		}
		seen[handle] = struct{}{}
		requests = append(requests, entity.ThumbnailRequest{
			FontPath: info.Path,
			Name:     info.Name,
			Handle:   handle,
		})
	}

	logging.FromContext(ctx).Info().Int("fonts", r.deps.Store.Len()).Msg("font list loaded")
	r.emitConfigChanged()

	r.deps.Scheduler.Push(ctx, func(jobCtx context.Context) {
		r.ensureThumbnails(logging.WithComponent(jobCtx, "thumbnails"), gen, requests)
	})
}

// ensureThumbnails runs on a worker and walks every request serially, posting
// one UI callback per request.
func (r *FontRegistry) ensureThumbnails(ctx context.Context, gen uint64, requests []entity.ThumbnailRequest) {
	for i := range requests {
		if ctx.Err() != nil {
			return
		}

		req := requests[i]
		req.Image = r.deps.Thumbnails.Execute(logging.WithFontPath(ctx, req.FontPath), req.FontPath)
		r.deps.Loop.Post(func() {
			r.oneThumbnailDone(ctx, req)
		})
	}

	r.deps.Loop.Post(func() {
		if ctx.Err() == nil {
			r.emitThumbnailsDone(gen)
		}
	})
}

// oneThumbnailDone runs on the UI goroutine.
func (r *FontRegistry) oneThumbnailDone(ctx context.Context, req entity.ThumbnailRequest) {
	if req.Image == nil || ctx.Err() != nil {
		return
	}
	if !r.deps.Store.SetIcon(req.Handle, req.Image) {
		logging.FromContext(ctx).Debug().Str("font", req.Name).Msg("row gone, dropping thumbnail")
	}
}

func (r *FontRegistry) emitConfigChanged() {
	r.listenMu.Lock()
	callbacks := make([]func(), len(r.onConfigChanged))
	copy(callbacks, r.onConfigChanged)
	r.listenMu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

func (r *FontRegistry) emitThumbnailsDone(gen uint64) {
	r.listenMu.Lock()
	callbacks := make([]func(uint64), len(r.onThumbnailsDone))
	copy(callbacks, r.onThumbnailsDone)
	r.listenMu.Unlock()

	for _, cb := range callbacks {
		cb(gen)
	}
}
