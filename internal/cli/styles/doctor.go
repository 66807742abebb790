package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontview/internal/application/usecase"
)

// DoctorRenderer renders a diagnostic report.
type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

func (r *DoctorRenderer) Render(report *usecase.DiagnoseOutput) string {
	lines := make([]string, 0, len(report.Checks))
	for _, c := range report.Checks {
		lines = append(lines, r.renderCheck(c))
	}
	body := r.theme.Box.Render(
		r.theme.BoxHeader.Render(fmt.Sprintf("%s Fonts", r.theme.Highlight.Render(IconFont))) +
			"\n" + strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, r.renderHeader(report), "", body)
}

func (r *DoctorRenderer) renderHeader(report *usecase.DiagnoseOutput) string {
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	switch {
	case !report.OK:
		statusStyle = r.theme.ErrorStyle
		statusText = "Broken"
	case hasWarnings(report):
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderCheck(c usecase.DiagnosticCheck) string {
	icon, style := IconCheck, r.theme.SuccessStyle
	switch c.Status {
	case usecase.CheckWarning:
		icon, style = IconWarning, r.theme.WarningStyle
	case usecase.CheckFailed:
		icon, style = IconX, r.theme.ErrorStyle
	}
	return fmt.Sprintf("%s %s\n  %s", style.Render(icon), r.theme.Normal.Render(c.Name), r.theme.Subtle.Render(c.Detail))
}

func hasWarnings(report *usecase.DiagnoseOutput) bool {
	for _, c := range report.Checks {
		if c.Status == usecase.CheckWarning {
			return true
		}
	}
	return false
}
