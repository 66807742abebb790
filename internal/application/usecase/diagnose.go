package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/logging"
)

// CheckStatus grades one diagnostic check.
type CheckStatus int

const (
	CheckOK CheckStatus = iota
	CheckWarning
	CheckFailed
)

// lowDiskSpace is the free space under which previews may fail to save.
const lowDiskSpace = 64 << 20

// DiagnosticCheck is the result of one check.
type DiagnosticCheck struct {
	Name   string
	Status CheckStatus
	Detail string
}

// DiagnoseInput carries the configured values to check.
type DiagnoseInput struct {
	Backend string
}

// DiagnoseOutput holds every check in execution order.
type DiagnoseOutput struct {
	OK     bool
	Checks []DiagnosticCheck
}

// DiagnoseUseCase checks that fonts can be listed and previews can be cached.
type DiagnoseUseCase struct {
	fontConfig port.FontConfig
	fs         port.FileSystem
	xdg        port.XDGPaths
	thumbs     port.ThumbnailCache
}

// NewDiagnoseUseCase creates a new DiagnoseUseCase.
func NewDiagnoseUseCase(
	fontConfig port.FontConfig,
	fs port.FileSystem,
	xdg port.XDGPaths,
	thumbs port.ThumbnailCache,
) *DiagnoseUseCase {
	return &DiagnoseUseCase{fontConfig: fontConfig, fs: fs, xdg: xdg, thumbs: thumbs}
}

// Execute runs every check. Only a missing font database fails the report;
// the rest degrade to warnings.
func (uc *DiagnoseUseCase) Execute(ctx context.Context, input DiagnoseInput) (*DiagnoseOutput, error) {
	log := logging.FromContext(logging.WithComponent(ctx, "doctor"))
	out := &DiagnoseOutput{OK: true}
	add := func(c DiagnosticCheck) {
		if c.Status == CheckFailed {
			out.OK = false
		}
		log.Debug().Str("check", c.Name).Int("status", int(c.Status)).Str("detail", c.Detail).Msg("diagnostic")
		out.Checks = append(out.Checks, c)
	}

	if err := uc.fontConfig.Reinitialize(ctx); err != nil {
		add(DiagnosticCheck{Name: "font database", Status: CheckFailed, Detail: err.Error()})
		return out, nil
	}
	add(DiagnosticCheck{Name: "font database", Detail: input.Backend})

	faces, err := uc.fontConfig.ListFonts(ctx)
	switch {
	case err != nil:
		add(DiagnosticCheck{Name: "fonts", Status: CheckFailed, Detail: err.Error()})
	case len(faces) == 0:
		add(DiagnosticCheck{Name: "fonts", Status: CheckWarning, Detail: "no fonts found"})
	default:
		add(DiagnosticCheck{Name: "fonts", Detail: fmt.Sprintf("%d faces", len(faces))})
	}

	dirs, err := uc.fontConfig.FontDirs(ctx)
	if err != nil {
		add(DiagnosticCheck{Name: "font directories", Status: CheckWarning, Detail: err.Error()})
	} else {
		add(DiagnosticCheck{Name: "font directories", Detail: fmt.Sprintf("%d watched", len(dirs))})
	}

	thumbDir, err := uc.xdg.ThumbnailDir()
	if err != nil {
		return nil, err
	}
	exists, err := uc.fs.Exists(ctx, thumbDir)
	switch {
	case err != nil:
		add(DiagnosticCheck{Name: "thumbnail cache", Status: CheckWarning, Detail: err.Error()})
	case !exists:
		add(DiagnosticCheck{Name: "thumbnail cache", Status: CheckWarning, Detail: thumbDir + " is created on first preview"})
	default:
		add(uc.diskCheck(ctx, thumbDir))
	}

	entries, size, err := uc.thumbs.Usage(ctx)
	if err != nil {
		add(DiagnosticCheck{Name: "thumbnail index", Status: CheckWarning, Detail: err.Error()})
	} else {
		add(DiagnosticCheck{Name: "thumbnail index", Detail: fmt.Sprintf("%d previews, %d bytes", entries, size)})
	}

	return out, nil
}

func (uc *DiagnoseUseCase) diskCheck(ctx context.Context, thumbDir string) DiagnosticCheck {
	free, err := uc.fs.FreeSpace(ctx, thumbDir)
	switch {
	case err != nil:
		// Unknown free space is not worth a warning.
		return DiagnosticCheck{Name: "thumbnail cache", Detail: thumbDir}
	case free < lowDiskSpace:
		return DiagnosticCheck{
			Name:   "thumbnail cache",
			Status: CheckWarning,
			Detail: fmt.Sprintf("%s has %d MiB free", thumbDir, free>>20),
		}
	default:
		return DiagnosticCheck{Name: "thumbnail cache", Detail: fmt.Sprintf("%s (%d MiB free)", thumbDir, free>>20)}
	}
}
