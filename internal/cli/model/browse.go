// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontview/internal/cli/styles"
	"github.com/bnema/fontview/internal/domain/entity"
	"github.com/bnema/fontview/internal/logging"
	"github.com/bnema/fontview/internal/ui/fontlist"
	"github.com/bnema/fontview/internal/ui/mainloop"
)

const (
	defaultWidth  = 100
	defaultHeight = 24
	// Lines taken by the find bar, status bar and help.
	browseChrome = 6

	statusReloading = "reloading"
)

// BrowseDeps are the pipeline pieces the browse model drives.
type BrowseDeps struct {
	Store *fontlist.Store
	Loop  *mainloop.Loop
	// Refresh requests a rebuild. Safe from any goroutine.
	Refresh func()
	// Copy puts text on the clipboard.
	Copy func(string) error
	// Watching names the watched directory count for the status bar.
	Watching int
	LogFile  string
}

// BrowseModel is the live font list. The Bubble Tea goroutine drains the
// pipeline's main loop, so store updates and Bubble Tea state share one
// goroutine.
type BrowseModel struct {
	table   table.Model
	find    textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    styles.BrowseKeyMap

	rows          []table.Row
	columns       []table.Column
	dirty         bool
	finding       bool
	loading       bool
	thumbsPending bool
	showHelp      bool
	status        string
	width, height int
	unsubscribe   func()
	loopClosed    bool

	ctx   context.Context
	deps  BrowseDeps
	theme *styles.Theme
}

// loopTaskMsg carries one main-loop task into Update.
type loopTaskMsg struct{ fn func() }

// loopClosedMsg reports that the main loop quit.
type loopClosedMsg struct{}

// NewBrowseModel creates the model and subscribes it to the store.
func NewBrowseModel(ctx context.Context, theme *styles.Theme, deps BrowseDeps) *BrowseModel {
	find := textinput.New()
	find.Prompt = styles.IconSearch + " "
	find.Placeholder = "font name"
	find.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)

	m := &BrowseModel{
		find:          find,
		spinner:       styles.NewSpinner(theme),
		help:          styles.NewStyledHelp(theme),
		keys:          styles.DefaultBrowseKeyMap(),
		loading:       true,
		thumbsPending: true,
		width:         defaultWidth,
		height:        defaultHeight,
		ctx:           ctx,
		deps:          deps,
		theme:         theme,
	}
	m.columns = styles.FontTableColumns(m.width)
	m.table = styles.NewStyledTable(theme, m.columns, nil, m.width, m.tableHeight())

	m.unsubscribe = deps.Store.Subscribe(fontlist.ObserverFuncs{
		OnInserted: m.rowInserted,
		OnChanged:  m.rowChanged,
		OnCleared:  m.cleared,
	})
	return m
}

// ConfigChanged marks the list as loaded. Wire it to the registry.
func (m *BrowseModel) ConfigChanged() {
	m.loading = false
	if m.status == statusReloading {
		m.status = ""
	}
}

// ThumbnailsDone marks every preview of the current list as resolved.
func (m *BrowseModel) ThumbnailsDone(uint64) {
	m.thumbsPending = false
}

func (m *BrowseModel) rowInserted(pos int, rec entity.FontRecord) {
	m.rows = append(m.rows, nil)
	copy(m.rows[pos+1:], m.rows[pos:])
	m.rows[pos] = styles.FontRow(rec.Name, rec.Path, rec.Preview, m.columns)
	m.dirty = true
}

func (m *BrowseModel) rowChanged(pos int, rec entity.FontRecord) {
	if pos < 0 || pos >= len(m.rows) {
		return
	}
	m.rows[pos] = styles.FontRow(rec.Name, rec.Path, rec.Preview, m.columns)
	m.dirty = true
}

func (m *BrowseModel) cleared() {
	m.rows = nil
	m.loading = true
	m.thumbsPending = true
	m.dirty = true
}

// Rows returns the rendered rows in display order.
func (m *BrowseModel) Rows() []table.Row {
	return m.rows
}

// Cursor returns the selected row.
func (m *BrowseModel) Cursor() int {
	return m.table.Cursor()
}

// Status returns the last status message.
func (m *BrowseModel) Status() string {
	return m.status
}

func (m *BrowseModel) waitForTask() tea.Msg {
	fn, ok := m.deps.Loop.Next()
	if !ok {
		return loopClosedMsg{}
	}
	return loopTaskMsg{fn: fn}
}

// Init implements tea.Model.
func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.waitForTask, m.spinner.Tick)
}

// Update implements tea.Model.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case loopTaskMsg:
		msg.fn()
		cmds = append(cmds, m.waitForTask)

	case loopClosedMsg:
		m.loopClosed = true

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			m.syncRows()
			return m, cmd
		}
	}

	m.syncRows()
	return m, tea.Batch(cmds...)
}

func (m *BrowseModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.finding {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.finding = false
			m.find.Blur()
			return nil, true
		case msg.Type == tea.KeyEnter:
			m.finding = false
			m.find.Blur()
			m.jumpTo(m.find.Value())
			return nil, true
		}
		var cmd tea.Cmd
		m.find, cmd = m.find.Update(msg)
		return cmd, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		m.deps.Loop.Quit()
		return tea.Quit, true
	case key.Matches(msg, m.keys.Find):
		m.finding = true
		m.find.SetValue("")
		return m.find.Focus(), true
	case key.Matches(msg, m.keys.Copy):
		m.copySelected()
		return nil, true
	case key.Matches(msg, m.keys.Refresh):
		m.status = statusReloading
		m.deps.Refresh()
		return nil, true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil, true
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd, true
}

// jumpTo selects the row named query, or the first row whose name starts
// with it ignoring case.
func (m *BrowseModel) jumpTo(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	store := m.deps.Store

	if h, ok := store.FindByIdentity(query); ok {
		for i := 0; i < store.Len(); i++ {
			if handle, _ := store.At(i); handle == h {
				m.table.SetCursor(i)
				m.status = ""
				return
			}
		}
	}

	lower := strings.ToLower(query)
	for i := 0; i < store.Len(); i++ {
		if _, rec := store.At(i); strings.HasPrefix(strings.ToLower(rec.Name), lower) {
			m.table.SetCursor(i)
			m.status = ""
			return
		}
	}
	m.status = fmt.Sprintf("no font named %q", query)
}

func (m *BrowseModel) copySelected() {
	i := m.table.Cursor()
	if i < 0 || i >= m.deps.Store.Len() {
		return
	}
	_, rec := m.deps.Store.At(i)
	if err := m.deps.Copy(rec.Path); err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("clipboard unavailable")
		m.status = "clipboard unavailable"
		return
	}
	m.status = "copied " + rec.Path
}

func (m *BrowseModel) resize(width, height int) {
	m.width, m.height = width, height
	m.columns = styles.FontTableColumns(width)
	m.table.SetColumns(m.columns)
	m.table.SetWidth(width)
	m.table.SetHeight(m.tableHeight())
	m.help.Width = width

	// Column widths changed, so every cell is truncated again.
	m.rows = m.rows[:0]
	for i := 0; i < m.deps.Store.Len(); i++ {
		_, rec := m.deps.Store.At(i)
		m.rows = append(m.rows, styles.FontRow(rec.Name, rec.Path, rec.Preview, m.columns))
	}
	m.dirty = true
}

func (m *BrowseModel) tableHeight() int {
	h := m.height - browseChrome
	if h < 3 {
		h = 3
	}
	return h
}

func (m *BrowseModel) syncRows() {
	if !m.dirty {
		return
	}
	m.dirty = false
	m.table.SetRows(m.rows)
	if c := m.table.Cursor(); c >= len(m.rows) && len(m.rows) > 0 {
		m.table.SetCursor(len(m.rows) - 1)
	}
}

// View implements tea.Model.
func (m *BrowseModel) View() string {
	parts := []string{m.table.View()}
	if m.finding {
		parts = append(parts, m.theme.InputFocused.Render(m.find.View()))
	}
	parts = append(parts, m.statusBar(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *BrowseModel) statusBar() string {
	var segments []string
	switch {
	case m.loading:
		segments = append(segments, styles.LoadingView(m.theme, m.spinner, "loading fonts"))
	case m.thumbsPending:
		segments = append(segments, styles.LoadingView(m.theme, m.spinner, fmt.Sprintf("%d fonts, rendering previews", len(m.rows))))
	default:
		segments = append(segments, fmt.Sprintf("%s %d fonts", styles.IconFont, len(m.rows)))
	}
	if m.deps.Watching > 0 {
		segments = append(segments, fmt.Sprintf("%s %d dirs", styles.IconEye, m.deps.Watching))
	}
	if m.status != "" {
		segments = append(segments, m.status)
	}
	if m.deps.LogFile != "" && m.showHelp {
		segments = append(segments, styles.IconLogs+" "+m.deps.LogFile)
	}
	return m.theme.StatusBar.Width(m.width).Render(strings.Join(segments, "  "))
}
