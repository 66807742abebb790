package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/domain/entity"
	"github.com/bnema/fontview/internal/logging"
)

// PurgeDataUseCase handles discovering and purging application data.
type PurgeDataUseCase struct {
	fs     port.FileSystem
	xdg    port.XDGPaths
	thumbs port.ThumbnailCache
}

// NewPurgeDataUseCase creates a new PurgeDataUseCase.
func NewPurgeDataUseCase(fs port.FileSystem, xdg port.XDGPaths, thumbs port.ThumbnailCache) *PurgeDataUseCase {
	return &PurgeDataUseCase{fs: fs, xdg: xdg, thumbs: thumbs}
}

// GetPurgeTargets returns all available purge targets with their current state.
// Thumbnails come first: removing them needs the index that lives in the cache
// directory.
func (uc *PurgeDataUseCase) GetPurgeTargets(ctx context.Context) ([]entity.PurgeTarget, error) {
	thumbDir, err := uc.xdg.ThumbnailDir()
	if err != nil {
		return nil, err
	}
	cacheDir, err := uc.xdg.CacheDir()
	if err != nil {
		return nil, err
	}
	stateDir, err := uc.xdg.StateDir()
	if err != nil {
		return nil, err
	}
	configDir, err := uc.xdg.ConfigDir()
	if err != nil {
		return nil, err
	}

	entries, size, err := uc.thumbs.Usage(ctx)
	if err != nil {
		return nil, fmt.Errorf("read thumbnail index: %w", err)
	}
	targets := []entity.PurgeTarget{{
		Type:        entity.PurgeTargetThumbnails,
		Path:        thumbDir,
		Description: "font previews",
		Size:        size,
		Entries:     entries,
		Exists:      entries > 0,
	}}

	for _, t := range []entity.PurgeTarget{
		{Type: entity.PurgeTargetCache, Path: cacheDir, Description: "cache and thumbnail index"},
		{Type: entity.PurgeTargetState, Path: stateDir, Description: "logs"},
		{Type: entity.PurgeTargetConfig, Path: configDir, Description: "config"},
	} {
		exists, err := uc.fs.Exists(ctx, t.Path)
		if err != nil {
			return nil, err
		}
		t.Exists = exists
		if exists {
			if t.Size, err = uc.fs.GetSize(ctx, t.Path); err != nil {
				return nil, err
			}
		}
		targets = append(targets, t)
	}

	return targets, nil
}

// PurgeInput specifies which target types to purge.
type PurgeInput struct {
	TargetTypes []entity.PurgeTargetType
}

// PurgeOutput contains the results of the purge operation.
type PurgeOutput struct {
	Results      []entity.PurgeResult
	TotalSize    int64
	SuccessCount int
	FailureCount int
}

// Execute purges the selected target types.
// Continues on errors, collecting all results.
func (uc *PurgeDataUseCase) Execute(ctx context.Context, input PurgeInput) (*PurgeOutput, error) {
	log := logging.FromContext(ctx)

	targets, err := uc.GetPurgeTargets(ctx)
	if err != nil {
		return nil, err
	}

	selected := make(map[entity.PurgeTargetType]struct{}, len(input.TargetTypes))
	for _, tt := range input.TargetTypes {
		selected[tt] = struct{}{}
	}

	out := &PurgeOutput{}
	for _, t := range targets {
		if _, ok := selected[t.Type]; !ok || !t.Exists {
			continue
		}

		res := entity.PurgeResult{Target: t}
		out.TotalSize += t.Size

		if t.Type == entity.PurgeTargetThumbnails {
			_, err = uc.thumbs.Purge(ctx)
		} else {
			err = uc.fs.RemoveAll(ctx, t.Path)
		}

		if err != nil {
			res.Error = err
			out.FailureCount++
			log.Warn().Err(err).Str("path", t.Path).Stringer("type", t.Type).Msg("purge target failed")
		} else {
			res.Success = true
			out.SuccessCount++
			log.Info().Str("path", t.Path).Stringer("type", t.Type).Msg("purge target removed")
		}

		out.Results = append(out.Results, res)
	}

	if out.FailureCount > 0 {
		return out, fmt.Errorf("failed to remove %d items", out.FailureCount)
	}
	return out, nil
}

// PurgeAll purges all existing targets (for --force mode).
func (uc *PurgeDataUseCase) PurgeAll(ctx context.Context) (*PurgeOutput, error) {
	return uc.Execute(ctx, PurgeInput{TargetTypes: []entity.PurgeTargetType{
		entity.PurgeTargetThumbnails,
		entity.PurgeTargetCache,
		entity.PurgeTargetState,
		entity.PurgeTargetConfig,
	}})
}
