package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/fontview/internal/cli"
)

const defaultListWidth = 100

var (
	listWaitThumbnails bool
	listFormat         string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print installed fonts",
	Long: `Print every installed font once, sorted by name for the current locale.

Fonts whose preview is not cached yet are marked with a dot. With
--wait-thumbnails the command renders missing previews before printing,
which also warms the cache for other applications.

Examples:
  fontview list
  fontview list --wait-thumbnails
  fontview list --format json | jq '.[].name'`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listWaitThumbnails, "wait-thumbnails", "w", false, "render missing previews before printing")
	listCmd.Flags().StringVarP(&listFormat, "format", "o", cli.FormatTable, "output format: table, json, yaml")
}

func runList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entries, err := cli.LoadFonts(ctx, app.Config, cli.LoadOptions{WaitThumbnails: listWaitThumbnails})
	if err != nil {
		return err
	}

	width := defaultListWidth
	if w, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && w > 0 {
		width = w
	}
	return cli.WriteFonts(cmd.OutOrStdout(), entries, listFormat, width, app.Theme)
}
