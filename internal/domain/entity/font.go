package entity

import (
	"image"
	"path/filepath"
	"time"
)

// Fontconfig numeric styles, as reported by FC_WEIGHT and FC_SLANT.
const (
	WeightRegular = 80
	WeightMedium  = 100
	WeightBold    = 200
	WeightBlack   = 210

	SlantRoman   = 0
	SlantItalic  = 100
	SlantOblique = 110
)

// FontFace is one entry of the font-configuration database.
type FontFace struct {
	File   string // Absolute path to the font file
	Family string // First family name reported by the database
	Weight int    // Fontconfig weight scale
	Slant  int    // Fontconfig slant scale
	Index  int    // Face index inside collections (.ttc)
}

// FontSnapshot is an immutable capture of the font database for one generation.
// It is never mutated after construction; a rebuild replaces it wholesale.
type FontSnapshot struct {
	generation uint64
	faces      []FontFace
	takenAt    time.Time
}

// NewFontSnapshot copies faces into a new snapshot.
func NewFontSnapshot(generation uint64, faces []FontFace) *FontSnapshot {
	cp := make([]FontFace, len(faces))
	copy(cp, faces)
	return &FontSnapshot{
		generation: generation,
		faces:      cp,
		takenAt:    time.Now(),
	}
}

// Generation returns the rebuild cycle this snapshot belongs to.
func (s *FontSnapshot) Generation() uint64 {
	if s == nil {
		return 0
	}
	return s.generation
}

// Len returns the number of faces in the snapshot.
func (s *FontSnapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.faces)
}

// At returns the face at index i.
func (s *FontSnapshot) At(i int) FontFace {
	return s.faces[i]
}

// Faces returns a copy of all faces.
func (s *FontSnapshot) Faces() []FontFace {
	if s == nil {
		return nil
	}
	cp := make([]FontFace, len(s.faces))
	copy(cp, s.faces)
	return cp
}

// TakenAt returns when the snapshot was captured.
func (s *FontSnapshot) TakenAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.takenAt
}

// FontInfo is a resolved (name, path) pair produced by the enumeration job.
type FontInfo struct {
	Name string
	Path string
}

// FontRecord is one row of the font list.
type FontRecord struct {
	Name    string      // Display name resolved from the font file
	Path    string      // Font file path
	Icon    image.Image // Preview image, or the fallback icon
	SortKey string      // Collation key derived once from Name
	Preview bool        // True once Icon holds a real thumbnail
}

// Identity returns the key used for duplicate detection within a generation.
func (r FontRecord) Identity() string {
	return r.Name + "\x00" + r.Path
}

// FileName returns the base name of the font file.
func (r FontRecord) FileName() string {
	return filepath.Base(r.Path)
}

// RecordHandle identifies a row in the font list. Handles are never reused,
// so a handle from a previous generation simply stops resolving.
type RecordHandle uint64

// ThumbnailRequest asks the thumbnail pipeline to produce a preview for one row.
type ThumbnailRequest struct {
	FontPath string
	Name     string
	Handle   RecordHandle
	Image    image.Image
}

// WatchSet lists the directories observed for font changes.
// It is captured once at startup.
type WatchSet struct {
	Dirs []string
}
