package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFontSnapshot_IsImmutable(t *testing.T) {
	faces := []FontFace{{File: "/a.ttf", Family: "Alpha"}}
	snap := NewFontSnapshot(3, faces)

	faces[0].Family = "Mutated"
	assert.Equal(t, "Alpha", snap.At(0).Family)

	got := snap.Faces()
	got[0].Family = "Mutated"
	assert.Equal(t, "Alpha", snap.At(0).Family)

	assert.Equal(t, uint64(3), snap.Generation())
	assert.Equal(t, 1, snap.Len())
}

func TestFontSnapshot_NilSafe(t *testing.T) {
	var snap *FontSnapshot
	assert.Equal(t, 0, snap.Len())
	assert.Equal(t, uint64(0), snap.Generation())
	assert.Nil(t, snap.Faces())
	assert.True(t, snap.TakenAt().IsZero())
}

func TestFontRecord_Identity(t *testing.T) {
	a := FontRecord{Name: "Go", Path: "/fonts/Go-Regular.ttf"}
	b := FontRecord{Name: "Go", Path: "/other/Go-Regular.ttf"}
	assert.NotEqual(t, a.Identity(), b.Identity())
	assert.Equal(t, "Go-Regular.ttf", a.FileName())
}

func TestThumbnailEntry_Matches(t *testing.T) {
	mtime := time.Unix(1700000000, 500)
	e := &ThumbnailEntry{URI: "file:///a.ttf", MTime: time.Unix(1700000000, 0)}

	assert.True(t, e.Matches(mtime))
	assert.False(t, e.Matches(mtime.Add(2*time.Second)))

	var nilEntry *ThumbnailEntry
	assert.False(t, nilEntry.Matches(mtime))
}

func TestThumbnailEntry_Validate(t *testing.T) {
	ok := &ThumbnailEntry{URI: "file:///a.ttf", Path: "/cache/x.png"}
	assert.NoError(t, ok.Validate())

	var nilEntry *ThumbnailEntry
	assert.ErrorIs(t, nilEntry.Validate(), ErrInvalidThumbnail)
	assert.ErrorIs(t, (&ThumbnailEntry{Path: "/x.png"}).Validate(), ErrInvalidThumbnail)
	assert.ErrorIs(t, (&ThumbnailEntry{URI: "file:///a.ttf"}).Validate(), ErrInvalidThumbnail)
}
