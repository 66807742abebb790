package fonts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/domain/entity"
	"github.com/bnema/fontview/internal/logging"
)

// fontExtensions lists the file types the scanner considers fonts.
var fontExtensions = map[string]struct{}{
	".ttf": {},
	".otf": {},
	".ttc": {},
	".otc": {},
}

// Scanner implements port.FontConfig without fontconfig by walking font
// directories and reading each file's naming table.
type Scanner struct {
	roots []string
	lib   *Library

	mu   sync.RWMutex
	live []string
}

// NewScanner creates a scanner over the given root directories.
func NewScanner(roots []string) *Scanner {
	return &Scanner{roots: roots, lib: NewLibrary()}
}

// SetRoots replaces the scanned directories. They take effect on the next
// Reinitialize.
func (s *Scanner) SetRoots(roots []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots = append([]string(nil), roots...)
}

// Reinitialize implements port.FontConfig. It fails when none of the roots exist.
func (s *Scanner) Reinitialize(ctx context.Context) error {
	s.mu.RLock()
	roots := s.roots
	s.mu.RUnlock()

	live := make([]string, 0, len(roots))
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			logging.FromContext(ctx).Debug().Str("dir", root).Msg("font directory not found")
			continue
		}
		live = append(live, filepath.Clean(root))
	}

	s.mu.Lock()
	s.live = live
	s.mu.Unlock()

	if len(live) == 0 {
		return fmt.Errorf("%w: no font directory exists", port.ErrFontConfigUnavailable)
	}
	return nil
}

func (s *Scanner) liveRoots() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.live == nil {
		return s.roots
	}
	return s.live
}

// ListFonts implements port.FontConfig. Unreadable files are skipped; the
// family is left empty when the naming table cannot be read.
func (s *Scanner) ListFonts(ctx context.Context) ([]entity.FontFace, error) {
	log := logging.FromContext(ctx)

	var faces []entity.FontFace
	seen := make(map[string]struct{})
	for _, root := range s.liveRoots() {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				log.Debug().Err(err).Str("path", path).Msg("skipping unreadable path")
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !IsFontFile(path) {
				return nil
			}
			if _, dup := seen[path]; dup {
				return nil
			}
			seen[path] = struct{}{}
			faces = append(faces, s.describe(ctx, path))
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
	}

	sort.Slice(faces, func(i, j int) bool { return faces[i].File < faces[j].File })
	return faces, nil
}

func (s *Scanner) describe(ctx context.Context, path string) entity.FontFace {
	face := entity.FontFace{File: path, Weight: entity.WeightRegular, Slant: entity.SlantRoman}

	opened, err := s.lib.Open(ctx, path)
	if err != nil {
		return face
	}
	defer func() { _ = opened.Close() }()

	face.Family = opened.FamilyName()
	face.Weight, face.Slant = StyleToWeightSlant(opened.StyleName())
	return face
}

// FontDirs implements port.FontConfig: every directory below the roots.
func (s *Scanner) FontDirs(ctx context.Context) ([]string, error) {
	var dirs []string
	for _, root := range s.liveRoots() {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				dirs = append(dirs, path)
			}
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// IsFontFile reports whether path has a font file extension.
func IsFontFile(path string) bool {
	_, ok := fontExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

var _ port.FontConfig = (*Scanner)(nil)
