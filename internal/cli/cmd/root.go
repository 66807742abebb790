// Package cmd provides Cobra CLI commands for fontview.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/fontview/internal/cli"
	"github.com/bnema/fontview/internal/domain/build"
)

// fullScreenCommands take over the terminal, so their logs go to a file.
var fullScreenCommands = map[string]bool{
	"browse": true,
}

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "fontview",
		Short: "List installed fonts with rendered previews",
		Long: `fontview lists the fonts installed on this machine.

Fonts are enumerated through fontconfig (or by scanning font directories),
named from their own family and style tables, sorted for the current
locale, and shown with a preview that is cached in the shared freedesktop
thumbnail directory.

Use 'fontview list' for a one-shot listing or 'fontview browse' for a live
list that reloads when fonts are installed or removed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile: configFile,
				LogToFile:  fullScreenCommands[cmd.Name()],
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/fontview/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
