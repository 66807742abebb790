package model

import (
	"context"
	"errors"
	"image"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontview/internal/cli/styles"
	"github.com/bnema/fontview/internal/domain/entity"
	"github.com/bnema/fontview/internal/ui/fontlist"
	"github.com/bnema/fontview/internal/ui/mainloop"
)

type browseFixture struct {
	model     *BrowseModel
	store     *fontlist.Store
	loop      *mainloop.Loop
	refreshes int
	copied    []string
	copyErr   error
}

func newBrowseFixture(t *testing.T) *browseFixture {
	t.Helper()
	f := &browseFixture{
		store: fontlist.NewStore(),
		loop:  mainloop.NewLoop(8),
	}
	t.Cleanup(f.loop.Quit)

	f.model = NewBrowseModel(context.Background(), styles.NewTheme(), BrowseDeps{
		Store:   f.store,
		Loop:    f.loop,
		Refresh: func() { f.refreshes++ },
		Copy: func(s string) error {
			if f.copyErr != nil {
				return f.copyErr
			}
			f.copied = append(f.copied, s)
			return nil
		},
	})
	return f
}

func (f *browseFixture) insert(names ...string) {
	for _, name := range names {
		f.store.Insert(entity.FontRecord{Name: name, Path: "/fonts/" + name + ".ttf", SortKey: name})
	}
}

func (f *browseFixture) send(msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = f.model.Update(msg)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseModel_TracksStoreRows(t *testing.T) {
	f := newBrowseFixture(t)

	f.insert("Cantarell", "Adwaita Sans")
	f.insert("Bitstream Vera")

	rows := f.model.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Adwaita Sans", rows[0][0])
	assert.Equal(t, "Bitstream Vera", rows[1][0])
	assert.Equal(t, "Cantarell", rows[2][0])
	assert.Equal(t, "font", rows[1][1])

	h, ok := f.store.FindByIdentity("Bitstream Vera")
	require.True(t, ok)
	f.store.SetIcon(h, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.Equal(t, "ready", f.model.Rows()[1][1])

	f.store.Clear()
	assert.Empty(t, f.model.Rows())
}

func TestBrowseModel_RunsLoopTasks(t *testing.T) {
	f := newBrowseFixture(t)

	ran := false
	f.loop.Post(func() {
		ran = true
		f.insert("Inter")
	})

	msg := f.model.waitForTask()
	require.IsType(t, loopTaskMsg{}, msg)
	cmd := f.send(msg)

	assert.True(t, ran)
	assert.NotNil(t, cmd)
	assert.Len(t, f.model.Rows(), 1)
	assert.Contains(t, f.model.View(), "Inter")
}

func TestBrowseModel_LoadingState(t *testing.T) {
	f := newBrowseFixture(t)
	f.send(tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Contains(t, f.model.View(), "loading fonts")

	f.insert("Inter")
	f.model.ConfigChanged()
	f.send(tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Contains(t, f.model.View(), "rendering previews")

	f.model.ThumbnailsDone(1)
	f.send(tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Contains(t, f.model.View(), "1 fonts")
}

func TestBrowseModel_Find(t *testing.T) {
	f := newBrowseFixture(t)
	f.insert("Adwaita Sans", "Bitstream Vera", "Cantarell")
	f.send(tea.WindowSizeMsg{Width: 120, Height: 30})

	f.send(runes("/"), runes("Cantarell"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, f.model.Cursor())
	assert.Empty(t, f.model.Status())

	f.send(runes("/"), runes("bit"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, f.model.Cursor())

	f.send(runes("/"), runes("Zapfino"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, f.model.Cursor())
	assert.Contains(t, f.model.Status(), "Zapfino")
}

func TestBrowseModel_FindCancel(t *testing.T) {
	f := newBrowseFixture(t)
	f.insert("Adwaita Sans", "Cantarell")
	f.send(tea.WindowSizeMsg{Width: 120, Height: 30})

	f.send(runes("/"), runes("Cantarell"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 0, f.model.Cursor())

	// Keys go back to the table once the find bar closes.
	f.send(runes("j"))
	assert.Equal(t, 1, f.model.Cursor())
}

func TestBrowseModel_CopyPath(t *testing.T) {
	f := newBrowseFixture(t)
	f.insert("Adwaita Sans", "Cantarell")
	f.send(tea.WindowSizeMsg{Width: 120, Height: 30})

	f.send(runes("j"), runes("c"))
	assert.Equal(t, []string{"/fonts/Cantarell.ttf"}, f.copied)
	assert.Contains(t, f.model.Status(), "copied")

	f.copyErr = errors.New("no display")
	f.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, f.copied, 1)
	assert.Equal(t, "clipboard unavailable", f.model.Status())
}

func TestBrowseModel_Refresh(t *testing.T) {
	f := newBrowseFixture(t)
	f.model.ConfigChanged()

	f.send(runes("r"))
	assert.Equal(t, 1, f.refreshes)
	assert.Equal(t, statusReloading, f.model.Status())

	f.model.ConfigChanged()
	assert.Empty(t, f.model.Status())
}

func TestBrowseModel_ResizeKeepsRows(t *testing.T) {
	f := newBrowseFixture(t)
	f.insert("A Font With A Rather Long Family Name")

	f.send(tea.WindowSizeMsg{Width: 200, Height: 40})
	wide := f.model.Rows()[0][0]
	f.send(tea.WindowSizeMsg{Width: 40, Height: 40})
	narrow := f.model.Rows()[0][0]

	assert.Equal(t, "A Font With A Rather Long Family Name", wide)
	assert.NotEqual(t, wide, narrow)
	assert.Len(t, f.model.Rows(), 1)
}

func TestBrowseModel_QuitStopsLoop(t *testing.T) {
	f := newBrowseFixture(t)

	cmd := f.send(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.IsType(t, loopClosedMsg{}, f.model.waitForTask())

	// Unsubscribed, so later store changes do not reach the model.
	f.insert("Inter")
	assert.Empty(t, f.model.Rows())
}
