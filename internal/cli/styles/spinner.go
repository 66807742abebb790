package styles

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// NewSpinner creates a themed dot spinner.
func NewSpinner(theme *Theme) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return s
}

// LoadingView renders a spinner frame next to a message.
func LoadingView(theme *Theme, s spinner.Model, message string) string {
	return lipgloss.JoinHorizontal(lipgloss.Center, s.View(), " ", theme.Subtle.Render(message))
}
