package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/fontview/internal/application/usecase"
	"github.com/bnema/fontview/internal/bootstrap"
	"github.com/bnema/fontview/internal/cli/styles"
	"github.com/bnema/fontview/internal/domain/entity"
	"github.com/bnema/fontview/internal/infrastructure/filesystem"
	xdgadapter "github.com/bnema/fontview/internal/infrastructure/xdg"
)

var purgeForce bool

var thumbnailsCmd = &cobra.Command{
	Use:   "thumbnails",
	Short: "Manage cached font previews",
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove cached previews and fontview data",
	Long: `Interactively select and remove fontview data.

This can remove:
  - Font previews fontview wrote to the shared thumbnail cache
  - The cache directory, which holds the preview index
  - Logs
  - Config directory

Previews written by other applications are never touched. Use --force to
remove everything without prompting.`,
	RunE: runPurge,
}

func init() {
	rootCmd.AddCommand(thumbnailsCmd)
	thumbnailsCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().BoolVarP(&purgeForce, "force", "f", false, "remove all items without prompting")
}

func runPurge(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	out := cmd.OutOrStdout()
	renderer := styles.NewPurgeRenderer(app.Theme)

	thumbs, _, db := bootstrap.NewThumbnailCache(app.Config)
	defer func() { _ = db.Close() }()
	purgeUC := usecase.NewPurgeDataUseCase(filesystem.New(), xdgadapter.New(), thumbs)

	var (
		result *usecase.PurgeOutput
		err    error
	)
	if purgeForce {
		result, err = purgeUC.PurgeAll(ctx)
	} else {
		targets, targetsErr := purgeUC.GetPurgeTargets(ctx)
		if targetsErr != nil {
			return targetsErr
		}
		selected, selectErr := selectPurgeTargets(targets)
		if errors.Is(selectErr, huh.ErrUserAborted) || (selectErr == nil && len(selected) == 0) {
			fmt.Fprintln(out, app.Theme.Subtle.Render("Nothing removed."))
			return nil
		}
		if selectErr != nil {
			return selectErr
		}
		result, err = purgeUC.Execute(ctx, usecase.PurgeInput{TargetTypes: selected})
	}

	if result != nil {
		fmt.Fprintln(out, renderer.RenderResults(result.Results, result.TotalSize))
	}
	return err
}

// selectPurgeTargets asks which existing targets to remove, then confirms.
func selectPurgeTargets(targets []entity.PurgeTarget) ([]entity.PurgeTargetType, error) {
	options := make([]huh.Option[entity.PurgeTargetType], 0, len(targets))
	var selected []entity.PurgeTargetType
	for _, t := range targets {
		if !t.Exists {
			continue
		}
		opt := huh.NewOption(styles.PurgeLabel(t), t.Type)
		if t.Type == entity.PurgeTargetThumbnails {
			opt = opt.Selected(true)
			selected = append(selected, t.Type)
		}
		options = append(options, opt)
	}
	if len(options) == 0 {
		return nil, nil
	}

	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[entity.PurgeTargetType]().
				Title("What should be removed?").
				Options(options...).
				Value(&selected),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Remove the selected items?").
				Affirmative("Remove").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeDracula())
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, nil
	}
	return selected, nil
}
