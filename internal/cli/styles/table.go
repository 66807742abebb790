package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	minNameWidth  = 16
	iconColWidth  = 6
	tableChrome   = 6
	ellipsis      = "…"
	previewPlain  = "font"
	previewLoaded = "ready"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// FontTableColumns splits width between the name, preview and path columns.
func FontTableColumns(width int) []table.Column {
	avail := width - iconColWidth - tableChrome
	name := avail * 2 / 5
	if name < minNameWidth {
		name = minNameWidth
	}
	path := avail - name
	if path < minNameWidth {
		path = minNameWidth
	}
	return []table.Column{
		{Title: "Name", Width: name},
		{Title: "Icon", Width: iconColWidth},
		{Title: "Path", Width: path},
	}
}

// FontRow builds a table row. hasPreview reports whether a real thumbnail
// replaced the fallback icon.
func FontRow(name, path string, hasPreview bool, columns []table.Column) table.Row {
	status := previewPlain
	if hasPreview {
		status = previewLoaded
	}
	return table.Row{
		Truncate(name, columns[0].Width),
		status,
		TruncateLeft(path, columns[2].Width),
	}
}

// Truncate cuts s to width terminal cells, ending with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// TruncateLeft keeps the end of s, which is where paths differ.
func TruncateLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	keep := width - runewidth.StringWidth(ellipsis)
	w := 0
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > keep {
			break
		}
		w += rw
		i--
	}
	return ellipsis + string(runes[i:])
}

// FormatBytes renders a byte count with a binary unit.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
