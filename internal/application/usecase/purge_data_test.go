package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontview/internal/application/port/mocks"
	"github.com/bnema/fontview/internal/application/usecase"
	"github.com/bnema/fontview/internal/domain/entity"
)

type purgeMocks struct {
	fs     *mocks.MockFileSystem
	xdg    *mocks.MockXDGPaths
	thumbs *mocks.MockThumbnailCache
}

func newPurgeMocks(t *testing.T) purgeMocks {
	m := purgeMocks{
		fs:     mocks.NewMockFileSystem(t),
		xdg:    mocks.NewMockXDGPaths(t),
		thumbs: mocks.NewMockThumbnailCache(t),
	}
	m.xdg.EXPECT().ThumbnailDir().Return("/home/u/.cache/thumbnails", nil)
	m.xdg.EXPECT().CacheDir().Return("/home/u/.cache/fontview", nil)
	m.xdg.EXPECT().StateDir().Return("/home/u/.local/state/fontview", nil)
	m.xdg.EXPECT().ConfigDir().Return("/home/u/.config/fontview", nil)
	return m
}

func TestPurgeDataUseCase_GetPurgeTargets(t *testing.T) {
	m := newPurgeMocks(t)
	ctx := testContext()

	m.thumbs.EXPECT().Usage(mock.Anything).Return(42, int64(4200), nil)
	m.fs.EXPECT().Exists(mock.Anything, "/home/u/.cache/fontview").Return(true, nil)
	m.fs.EXPECT().GetSize(mock.Anything, "/home/u/.cache/fontview").Return(int64(8192), nil)
	m.fs.EXPECT().Exists(mock.Anything, "/home/u/.local/state/fontview").Return(false, nil)
	m.fs.EXPECT().Exists(mock.Anything, "/home/u/.config/fontview").Return(true, nil)
	m.fs.EXPECT().GetSize(mock.Anything, "/home/u/.config/fontview").Return(int64(512), nil)

	uc := usecase.NewPurgeDataUseCase(m.fs, m.xdg, m.thumbs)
	targets, err := uc.GetPurgeTargets(ctx)
	require.NoError(t, err)
	require.Len(t, targets, 4)

	assert.Equal(t, entity.PurgeTargetThumbnails, targets[0].Type)
	assert.Equal(t, 42, targets[0].Entries)
	assert.Equal(t, int64(4200), targets[0].Size)
	assert.True(t, targets[0].Exists)

	assert.Equal(t, entity.PurgeTargetCache, targets[1].Type)
	assert.Equal(t, int64(8192), targets[1].Size)
	assert.False(t, targets[2].Exists)
	assert.Zero(t, targets[2].Size)
	assert.Equal(t, entity.PurgeTargetConfig, targets[3].Type)
}

func TestPurgeDataUseCase_Execute_OnlySelected(t *testing.T) {
	m := newPurgeMocks(t)
	ctx := testContext()

	m.thumbs.EXPECT().Usage(mock.Anything).Return(3, int64(300), nil)
	m.thumbs.EXPECT().Purge(mock.Anything).Return(int64(3), nil)
	m.fs.EXPECT().Exists(mock.Anything, mock.Anything).Return(true, nil)
	m.fs.EXPECT().GetSize(mock.Anything, mock.Anything).Return(int64(100), nil)
	m.fs.EXPECT().RemoveAll(mock.Anything, "/home/u/.local/state/fontview").Return(nil)

	uc := usecase.NewPurgeDataUseCase(m.fs, m.xdg, m.thumbs)
	out, err := uc.Execute(ctx, usecase.PurgeInput{TargetTypes: []entity.PurgeTargetType{
		entity.PurgeTargetThumbnails,
		entity.PurgeTargetState,
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, out.SuccessCount)
	assert.Equal(t, int64(400), out.TotalSize)
	m.fs.AssertNotCalled(t, "RemoveAll", mock.Anything, "/home/u/.config/fontview")
}

func TestPurgeDataUseCase_PurgeAll_CollectsFailures(t *testing.T) {
	m := newPurgeMocks(t)
	ctx := testContext()

	m.thumbs.EXPECT().Usage(mock.Anything).Return(0, int64(0), nil)
	m.fs.EXPECT().Exists(mock.Anything, mock.Anything).Return(true, nil)
	m.fs.EXPECT().GetSize(mock.Anything, mock.Anything).Return(int64(1), nil)
	m.fs.EXPECT().RemoveAll(mock.Anything, "/home/u/.cache/fontview").Return(errors.New("busy"))
	m.fs.EXPECT().RemoveAll(mock.Anything, "/home/u/.local/state/fontview").Return(nil)
	m.fs.EXPECT().RemoveAll(mock.Anything, "/home/u/.config/fontview").Return(nil)

	uc := usecase.NewPurgeDataUseCase(m.fs, m.xdg, m.thumbs)
	out, err := uc.PurgeAll(ctx)
	require.Error(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 1, out.FailureCount)
	assert.Equal(t, 2, out.SuccessCount)
	m.thumbs.AssertNotCalled(t, "Purge", mock.Anything)
}

func TestPurgeDataUseCase_UsageError(t *testing.T) {
	m := purgeMocks{
		fs:     mocks.NewMockFileSystem(t),
		xdg:    mocks.NewMockXDGPaths(t),
		thumbs: mocks.NewMockThumbnailCache(t),
	}
	m.xdg.EXPECT().ThumbnailDir().Return("/t", nil)
	m.xdg.EXPECT().CacheDir().Return("/c", nil)
	m.xdg.EXPECT().StateDir().Return("/s", nil)
	m.xdg.EXPECT().ConfigDir().Return("/cfg", nil)
	m.thumbs.EXPECT().Usage(mock.Anything).Return(0, int64(0), errors.New("locked"))

	uc := usecase.NewPurgeDataUseCase(m.fs, m.xdg, m.thumbs)
	_, err := uc.GetPurgeTargets(testContext())
	assert.ErrorContains(t, err, "locked")
}
