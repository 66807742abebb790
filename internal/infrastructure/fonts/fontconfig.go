package fonts

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/domain/entity"
	"github.com/bnema/fontview/internal/logging"
)

const fcListBinary = "fc-list"

// fcListFormat prints one tab-separated face per line.
const fcListFormat = `%{file}\t%{family[0]}\t%{weight}\t%{slant}\t%{index}\n`

// commandRunner runs an external command and returns its stdout.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// FontConfig implements port.FontConfig using fontconfig's fc-list command.
type FontConfig struct {
	run       commandRunner
	lookPath  func(string) (string, error)
	extraDirs []string

	mu          sync.RWMutex
	cachedFaces []entity.FontFace
	populated   bool
}

// NewFontConfig creates a fontconfig adapter. extraDirs are added to the
// reported font directories when they exist.
func NewFontConfig(extraDirs []string) *FontConfig {
	return &FontConfig{
		run:       execRunner,
		lookPath:  exec.LookPath,
		extraDirs: extraDirs,
	}
}

// IsAvailable returns true if fc-list is installed.
func (fc *FontConfig) IsAvailable() bool {
	_, err := fc.lookPath(fcListBinary)
	return err == nil
}

// Reinitialize implements port.FontConfig.
// Every fc-list run reads the current configuration, so reinitializing
// drops the cached listing and checks that the command is still there.
func (fc *FontConfig) Reinitialize(ctx context.Context) error {
	fc.mu.Lock()
	fc.cachedFaces = nil
	fc.populated = false
	fc.mu.Unlock()

	if !fc.IsAvailable() {
		logging.FromContext(ctx).Debug().Msg("fc-list not found in PATH")
		return fmt.Errorf("%w: %s not found", port.ErrFontConfigUnavailable, fcListBinary)
	}
	return nil
}

// ListFonts implements port.FontConfig.
func (fc *FontConfig) ListFonts(ctx context.Context) ([]entity.FontFace, error) {
	log := logging.FromContext(ctx)

	fc.mu.RLock()
	if fc.populated {
		faces := fc.cachedFaces
		fc.mu.RUnlock()
		return faces, nil
	}
	fc.mu.RUnlock()

	fc.mu.Lock()
	defer fc.mu.Unlock()

	// Double-check after acquiring write lock.
	if fc.populated {
		return fc.cachedFaces, nil
	}

	output, err := fc.run(ctx, fcListBinary, "--format", fcListFormat)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", fcListBinary, err)
	}

	faces, err := parseFontList(output)
	if err != nil {
		return nil, err
	}

	fc.cachedFaces = faces
	fc.populated = true
	log.Debug().Int("count", len(faces)).Msg("listed system fonts")

	return faces, nil
}

// FontDirs implements port.FontConfig. It reports every directory holding a
// listed font plus the configured extra directories that exist.
func (fc *FontConfig) FontDirs(ctx context.Context) ([]string, error) {
	faces, err := fc.ListFonts(ctx)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{})
	for _, f := range faces {
		set[filepath.Dir(f.File)] = struct{}{}
	}
	for _, dir := range fc.extraDirs {
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			set[filepath.Clean(dir)] = struct{}{}
		}
	}

	dirs := make([]string, 0, len(set))
	for d := range set {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs, nil
}

// parseFontList parses fc-list output produced with fcListFormat.
func parseFontList(output []byte) ([]entity.FontFace, error) {
	var faces []entity.FontFace
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 1 || fields[0] == "" {
			continue
		}

		face := entity.FontFace{
			File:   fields[0],
			Weight: entity.WeightRegular,
			Slant:  entity.SlantRoman,
		}
		if len(fields) > 1 {
			face.Family = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			face.Weight = parseFCNumber(fields[2], entity.WeightRegular)
		}
		if len(fields) > 3 {
			face.Slant = parseFCNumber(fields[3], entity.SlantRoman)
		}
		if len(fields) > 4 {
			face.Index = parseFCNumber(fields[4], 0)
		}
		faces = append(faces, face)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse %s output: %w", fcListBinary, err)
	}
	return faces, nil
}

// parseFCNumber parses a fontconfig number. Variable fonts report ranges such
// as "[100 900]"; the lower bound is used.
func parseFCNumber(s string, fallback int) int {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	if fields := strings.Fields(s); len(fields) > 0 {
		s = fields[0]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return int(v)
}

var _ port.FontConfig = (*FontConfig)(nil)
