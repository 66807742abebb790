package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontview/internal/application/usecase"
	"github.com/bnema/fontview/internal/bootstrap"
	"github.com/bnema/fontview/internal/cli/styles"
	"github.com/bnema/fontview/internal/infrastructure/filesystem"
	xdgadapter "github.com/bnema/fontview/internal/infrastructure/xdg"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that fonts can be listed and previews cached",
	Long: `Doctor checks the font database, the font directories and the
thumbnail cache, and reports anything that would leave the list empty or
previews missing.

Examples:
  fontview doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	fontConfig, backend := bootstrap.NewFontConfig(ctx, app.Config)
	thumbs, _, db := bootstrap.NewThumbnailCache(app.Config)
	defer func() { _ = db.Close() }()

	uc := usecase.NewDiagnoseUseCase(fontConfig, filesystem.New(), xdgadapter.New(), thumbs)
	report, err := uc.Execute(ctx, usecase.DiagnoseInput{Backend: string(backend)})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(app.Theme).Render(report))
	if !report.OK {
		return errors.New("font database unavailable")
	}
	return nil
}
