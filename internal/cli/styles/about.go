package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontview/internal/domain/build"
)

const aboutWrap = 60

const aboutMarkdown = `fontview lists the fonts installed on this machine, sorted by name,
with a rendered preview of each one. Previews are shared with other
desktop applications through the freedesktop thumbnail cache.

- **list** prints the fonts once
- **browse** keeps a live list that follows font directory changes
- **thumbnails purge** removes cached previews
`

// AboutRenderer renders build info in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders the logo and build info side by side, followed by a short
// description. The description falls back to plain text when markdown
// rendering fails.
func (r *AboutRenderer) Render(info build.Info) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
	return header + "\n" + r.renderDescription()
}

func (r *AboutRenderer) renderLogo() string {
	logo := `▄▀▀▀▀
█▀▀▀
█
▀`
	return lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	line := func(icon, key, val string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(key), valStyle.Render(val))
	}

	lines := []string{
		line(IconVersion, "Version", info.Version),
		line(IconGitBranch, "Commit", info.Commit),
		line(IconCalendar, "Built", info.BuildDate),
		line(IconGo, "Go", info.GoVersion),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
		line(IconHeart, "Made with love by", strings.Join(build.Contributors(), ", ")),
	}
	return strings.Join(lines, "\n")
}

func (r *AboutRenderer) renderDescription() string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(aboutWrap),
	)
	if err != nil {
		return aboutMarkdown
	}
	out, err := renderer.Render(aboutMarkdown)
	if err != nil {
		return aboutMarkdown
	}
	return out
}
