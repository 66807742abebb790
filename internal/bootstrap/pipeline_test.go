package bootstrap_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/bnema/fontview/internal/bootstrap"
	"github.com/bnema/fontview/internal/infrastructure/config"
	"github.com/bnema/fontview/internal/logging"
	"github.com/bnema/fontview/internal/ui/mainloop"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func scanConfig(t *testing.T) *config.Config {
	t.Helper()
	fontDir := filepath.Join(t.TempDir(), "fonts")
	require.NoError(t, os.MkdirAll(fontDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(fontDir, "Go-Regular.ttf"), goregular.TTF, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(fontDir, "Go-Bold.ttf"), gobold.TTF, 0o644))

	cfg := config.DefaultConfig()
	cfg.Fonts.Backend = config.FontBackendScan
	cfg.Fonts.Directories = []string{fontDir}
	cfg.Fonts.Watch = false
	cfg.Thumbnails.CacheDir = filepath.Join(t.TempDir(), "thumbnails")
	cfg.Thumbnails.Size = 64
	cfg.Database.Path = filepath.Join(t.TempDir(), "thumbnails.sqlite")
	cfg.Locale = "en"
	return cfg
}

// drain runs the loop until done reports true or the deadline passes.
func drain(t *testing.T, loop *mainloop.Loop, done func() bool) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for !done() {
		require.True(t, time.Now().Before(deadline), "pipeline did not settle")
		if loop.RunPending() == 0 {
			time.Sleep(time.Millisecond)
		}
	}
}

func TestPipeline_RefreshLoadsFontsAndThumbnails(t *testing.T) {
	ctx := testContext()
	cfg := scanConfig(t)
	loop := mainloop.NewLoop(64)

	p := bootstrap.NewPipeline(ctx, cfg, loop)
	assert.Equal(t, config.FontBackendScan, p.Backend)

	finished := false
	p.Registry.OnThumbnailsDone(func(uint64) { finished = true })

	p.Refresh(ctx)
	drain(t, loop, func() bool { return finished })

	recs := p.Store.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "Go", recs[0].Name)
	assert.Equal(t, "Go, Bold", recs[1].Name)
	for _, rec := range recs {
		require.True(t, rec.Preview, rec.Name)
		require.NotNil(t, rec.Icon)
		assert.LessOrEqual(t, rec.Icon.Bounds().Dx(), 64)
	}

	saved, err := filepath.Glob(filepath.Join(cfg.Thumbnails.CacheDir, "*", "*.png"))
	require.NoError(t, err)
	assert.Len(t, saved, 2, "one cached preview per font")

	entries, _, err := p.Thumbnails.Usage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, entries)

	require.NoError(t, p.Close())
}

func TestPipeline_RefreshBurstCoalesces(t *testing.T) {
	ctx := testContext()
	loop := mainloop.NewLoop(64)
	p := bootstrap.NewPipeline(ctx, scanConfig(t), loop)
	defer func() { _ = p.Close() }()

	rebuilds := 0
	p.Registry.OnConfigChanged(func() { rebuilds++ })

	p.Refresh(ctx)
	p.Refresh(ctx)
	p.Refresh(ctx)
	assert.Equal(t, 2, p.MergedRefreshes())

	drain(t, loop, func() bool { return rebuilds > 0 })
	assert.Equal(t, uint64(1), p.Registry.Generation())
}

func TestPipeline_ApplyConfigRescansNewRoots(t *testing.T) {
	ctx := testContext()
	cfg := scanConfig(t)
	loop := mainloop.NewLoop(64)
	p := bootstrap.NewPipeline(ctx, cfg, loop)
	defer func() { _ = p.Close() }()

	finished := uint64(0)
	p.Registry.OnThumbnailsDone(func(gen uint64) { finished = gen })

	p.Refresh(ctx)
	drain(t, loop, func() bool { return finished == 1 })
	require.Equal(t, 2, p.Store.Len())

	next := *cfg
	next.Fonts.Directories = []string{t.TempDir()}
	p.ApplyConfig(ctx, &next)
	drain(t, loop, func() bool { return finished == 2 })

	assert.Zero(t, p.Store.Len())
}

func TestPipeline_StartWatching(t *testing.T) {
	ctx := testContext()
	cfg := scanConfig(t)
	cfg.Fonts.Watch = true
	loop := mainloop.NewLoop(64)
	p := bootstrap.NewPipeline(ctx, cfg, loop)

	require.NoError(t, p.StartWatching(ctx))
	assert.ElementsMatch(t, cfg.Fonts.Directories, p.WatchedDirs())

	rebuilt := false
	p.Registry.OnConfigChanged(func() { rebuilt = true })

	dst := filepath.Join(cfg.Fonts.Directories[0], "Copy.ttf")
	require.NoError(t, os.WriteFile(dst, goregular.TTF, 0o644))
	drain(t, loop, func() bool { return rebuilt })

	require.NoError(t, p.Close())
}

func TestPhaseTimer(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))

	timer := bootstrap.NewPhaseTimer()
	timer.Mark("setup")
	timer.Mark("fonts")
	timer.Mark("setup")

	assert.Equal(t, []string{"setup", "fonts"}, timer.Phases())
	assert.Greater(t, timer.Elapsed(), time.Duration(0))

	timer.Log(ctx, zerolog.InfoLevel, "list loaded")
	assert.Contains(t, buf.String(), `"setup":`)
	assert.Contains(t, buf.String(), `"fonts":`)
	assert.Contains(t, buf.String(), "list loaded")
}
