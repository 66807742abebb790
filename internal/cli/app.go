// Package cli holds the state shared by fontview's commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/bnema/fontview/internal/cli/styles"
	"github.com/bnema/fontview/internal/domain/build"
	"github.com/bnema/fontview/internal/infrastructure/config"
	"github.com/bnema/fontview/internal/logging"
)

// Options configures NewApp.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// LogToFile sends logs to the rotated log file even when the config
	// does not ask for it. Full-screen commands set it since the terminal
	// is taken.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	LogFile   string

	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and sets up logging.
func NewApp(opts Options) (*App, error) {
	var mgrOpts []config.ManagerOption
	if opts.ConfigFile != "" {
		mgrOpts = append(mgrOpts, config.WithConfigFile(opts.ConfigFile))
	}
	if err := config.EnsureDirectories(); err != nil {
		return nil, err
	}
	mgr, err := config.NewManager(mgrOpts...)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	fileCfg := logging.FileConfig{Enabled: cfg.Logging.File || opts.LogToFile}
	if fileCfg.Enabled {
		if fileCfg.Dir, err = config.GetLogDir(); err != nil {
			return nil, err
		}
		// Commands that keep the terminal get both.
		fileCfg.WriteToStderr = !opts.LogToFile
	}

	logger, cleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		fileCfg,
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	app := &App{
		Config:     cfg,
		ConfigMgr:  mgr,
		Theme:      styles.NewTheme(),
		ctx:        logging.WithContext(context.Background(), logger),
		logCleanup: cleanup,
	}
	if fileCfg.Enabled {
		app.LogFile = fileCfg.Path()
	}

	if mgr.CreatedDefault() {
		logger.Info().Str("path", mgr.ConfigFile()).Msg("wrote default configuration")
	}
	logger.Debug().Str("config", mgr.ConfigFile()).Str("level", cfg.Logging.Level).Msg("cli initialized")
	return app, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// IsInteractive reports whether stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
