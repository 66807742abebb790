package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	xdgadapter "github.com/bnema/fontview/internal/infrastructure/xdg"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

By default, man pages are installed to ~/.local/share/man/man1/ so they
are immediately available via 'man fontview'. You may need to run 'mandb'
to update the man page index.

Examples:
  fontview gen-docs                     # Install man pages
  fontview gen-docs --format markdown   # Generate markdown docs in ./docs
  fontview gen-docs --output ./man      # Generate to local directory`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			dataDir, err := xdgadapter.New().DataDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = filepath.Join(dataDir, "man", "man1")
		case "markdown":
			outputDir = "./docs"
		}
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Keep output reproducible.
	rootCmd.DisableAutoGenTag = true

	var (
		ext string
		err error
	)
	switch genDocsFormat {
	case "man":
		ext = ".1"
		now := time.Now()
		err = doc.GenManTree(rootCmd, &doc.GenManHeader{
			Title:   "FONTVIEW",
			Section: "1",
			Source:  "fontview " + buildInfo.Version,
			Manual:  "fontview Manual",
			Date:    &now,
		}, outputDir)
	case "markdown":
		ext = ".md"
		err = doc.GenMarkdownTree(rootCmd, outputDir)
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}
	if err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s docs in %s\n", genDocsFormat, outputDir)
	entries, readErr := os.ReadDir(outputDir)
	if readErr != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(out, "  - %s\n", e.Name())
		}
	}
	return nil
}
