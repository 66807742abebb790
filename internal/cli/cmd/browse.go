package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/fontview/internal/bootstrap"
	"github.com/bnema/fontview/internal/cli"
	"github.com/bnema/fontview/internal/cli/model"
	"github.com/bnema/fontview/internal/infrastructure/config"
	"github.com/bnema/fontview/internal/logging"
	"github.com/bnema/fontview/internal/ui/mainloop"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse installed fonts interactively",
	Long: `Show installed fonts in a live list.

Previews appear as they are rendered. When fonts.watch is enabled the list
reloads after fonts are added to or removed from a font directory, and
editing the config file applies the new font directories.

Keys:
  /        find a font by name
  c, enter copy the selected font's path
  r        reload the list
  q        quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if !cli.IsInteractive() {
		return fmt.Errorf("browse needs a terminal, use 'fontview list' instead")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	timer := bootstrap.NewPhaseTimer()
	loop := mainloop.NewLoop(mainloop.DefaultCapacity)
	p := bootstrap.NewPipeline(ctx, app.Config, loop)
	defer func() {
		if err := p.Close(); err != nil {
			log.Warn().Err(err).Msg("pipeline shutdown")
		}
	}()
	timer.Mark("setup")

	if err := p.StartWatching(ctx); err != nil {
		log.Warn().Err(err).Msg("font directories are not watched")
	}

	m := model.NewBrowseModel(ctx, app.Theme, model.BrowseDeps{
		Store:    p.Store,
		Loop:     loop,
		Refresh:  func() { p.Refresh(ctx) },
		Copy:     clipboard.WriteAll,
		Watching: len(p.WatchedDirs()),
		LogFile:  app.LogFile,
	})
	p.Registry.OnConfigChanged(func() {
		m.ConfigChanged()
		timer.Mark("fonts")
	})
	p.Registry.OnThumbnailsDone(func(gen uint64) {
		m.ThumbnailsDone(gen)
		if timer.Mark("thumbnails") {
			timer.Log(ctx, zerolog.InfoLevel, "font list ready")
		}
	})

	app.ConfigMgr.OnConfigChange(func(cfg *config.Config) {
		log.Info().Str("file", app.ConfigMgr.ConfigFile()).Msg("config reloaded")
		p.ApplyConfig(ctx, cfg)
	})
	app.ConfigMgr.Watch()

	p.Refresh(ctx)

	// Quitting the loop on every exit path unblocks workers posting results.
	defer loop.Quit()
	go func() {
		<-ctx.Done()
		loop.Quit()
	}()

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
