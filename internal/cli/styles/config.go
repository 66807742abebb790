package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath shows where the config file lives and whether it was just written.
func (r *ConfigRenderer) RenderPath(path string, created bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	status := ""
	if created {
		status = " " + r.theme.BadgeMuted.Render(r.theme.SuccessStyle.Render("created"))
	}
	return fmt.Sprintf("%s Config %s%s", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path), status)
}

// RenderWritten reports a file written by a config subcommand.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	return fmt.Sprintf("%s %s written to %s",
		r.theme.SuccessStyle.Render(IconCheck), what, r.theme.Subtle.Render(path))
}
