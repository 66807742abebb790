package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/fontview/internal/domain/entity"
)

// PurgeIcon returns the icon shown next to a target type.
func PurgeIcon(t entity.PurgeTargetType) string {
	switch t {
	case entity.PurgeTargetThumbnails:
		return IconImage
	case entity.PurgeTargetCache:
		return IconCache
	case entity.PurgeTargetState:
		return IconLogs
	case entity.PurgeTargetConfig:
		return IconConfig
	default:
		return IconFolder
	}
}

// PurgeLabel describes a target in one line, for selection lists.
func PurgeLabel(t entity.PurgeTarget) string {
	detail := FormatBytes(t.Size)
	if t.Type == entity.PurgeTargetThumbnails {
		detail = fmt.Sprintf("%d previews, %s", t.Entries, detail)
	}
	return fmt.Sprintf("%s %s (%s)", PurgeIcon(t.Type), t.Description, detail)
}

// PurgeRenderer renders purge targets and outcomes.
type PurgeRenderer struct {
	theme *Theme
}

// NewPurgeRenderer creates a renderer.
func NewPurgeRenderer(theme *Theme) *PurgeRenderer {
	return &PurgeRenderer{theme: theme}
}

// RenderTargets lists every target with its path and size.
func (r *PurgeRenderer) RenderTargets(targets []entity.PurgeTarget) string {
	lines := make([]string, 0, len(targets))
	for _, t := range targets {
		style := r.theme.Normal
		if !t.Exists {
			style = r.theme.Subtle
		}
		lines = append(lines, fmt.Sprintf("%s %s\n  %s",
			r.theme.Highlight.Render(PurgeIcon(t.Type)),
			style.Render(PurgeLabel(t)),
			r.theme.Subtle.Render(t.Path)))
	}
	return strings.Join(lines, "\n")
}

// RenderResults summarizes what was removed.
func (r *PurgeRenderer) RenderResults(results []entity.PurgeResult, total int64) string {
	lines := make([]string, 0, len(results)+2)
	for _, res := range results {
		if res.Success {
			lines = append(lines, fmt.Sprintf("%s %s %s",
				r.theme.SuccessStyle.Render(IconCheck),
				r.theme.Normal.Render(res.Target.Type.String()),
				r.theme.Subtle.Render(FormatBytes(res.Target.Size))))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			r.theme.ErrorStyle.Render(IconX),
			r.theme.Normal.Render(res.Target.Type.String()),
			r.theme.ErrorStyle.Render(res.Error.Error())))
	}
	lines = append(lines, "", fmt.Sprintf("%s freed %s",
		r.theme.Highlight.Render(IconTrash), r.theme.Title.Render(FormatBytes(total))))
	return strings.Join(lines, "\n")
}
