package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/bnema/fontview/internal/bootstrap"
	"github.com/bnema/fontview/internal/cli/styles"
	"github.com/bnema/fontview/internal/infrastructure/config"
	"github.com/bnema/fontview/internal/logging"
	"github.com/bnema/fontview/internal/ui/mainloop"
)

// Output formats accepted by the list command.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// FontEntry is one listed font.
type FontEntry struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path" yaml:"path"`
	Preview bool   `json:"preview" yaml:"preview"`
}

// LoadOptions controls LoadFonts.
type LoadOptions struct {
	// WaitThumbnails keeps loading until every preview is resolved.
	WaitThumbnails bool
}

// LoadFonts runs one rebuild of the font list and returns its rows in
// display order.
func LoadFonts(ctx context.Context, cfg *config.Config, opts LoadOptions) ([]FontEntry, error) {
	log := logging.FromContext(ctx)
	timer := bootstrap.NewPhaseTimer()

	loop := mainloop.NewLoop(mainloop.DefaultCapacity)
	p := bootstrap.NewPipeline(ctx, cfg, loop)
	defer func() {
		if err := p.Close(); err != nil {
			log.Debug().Err(err).Msg("pipeline close")
		}
	}()
	timer.Mark("setup")

	p.Registry.OnConfigChanged(func() {
		timer.Mark("fonts")
		if !opts.WaitThumbnails {
			loop.Quit()
		}
	})
	p.Registry.OnThumbnailsDone(func(uint64) {
		timer.Mark("thumbnails")
		loop.Quit()
	})

	var rebuildErr error
	loop.Post(func() {
		if err := p.Registry.Rebuild(ctx); err != nil {
			rebuildErr = err
			loop.Quit()
		}
	})

	if err := loop.Run(ctx); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rebuildErr != nil {
		return nil, rebuildErr
	}
	timer.Log(ctx, zerolog.DebugLevel, "font list loaded")

	recs := p.Store.Records()
	entries := make([]FontEntry, len(recs))
	for i, rec := range recs {
		entries[i] = FontEntry{Name: rec.Name, Path: rec.Path, Preview: rec.Preview}
	}
	return entries, nil
}

// WriteFonts encodes entries to w in format. width bounds table rows.
func WriteFonts(w io.Writer, entries []FontEntry, format string, width int, theme *styles.Theme) error {
	switch strings.ToLower(format) {
	case "", FormatTable:
		return writeTable(w, entries, width, theme)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q (use: table, json, yaml)", ErrUnknownFormat, format)
	}
}

func writeTable(w io.Writer, entries []FontEntry, width int, theme *styles.Theme) error {
	cols := styles.FontTableColumns(width)
	nameW, pathW := cols[0].Width, cols[2].Width

	header := fmt.Sprintf("%-*s  %s", nameW, "NAME", "PATH")
	if _, err := fmt.Fprintln(w, theme.Highlight.Render(header)); err != nil {
		return err
	}
	for _, e := range entries {
		name := runewidth.FillRight(styles.Truncate(e.Name, nameW-1), nameW-1)
		marker := " "
		if !e.Preview {
			marker = theme.Subtle.Render("·")
		}
		line := fmt.Sprintf("%s%s  %s", name, marker, theme.Subtle.Render(styles.TruncateLeft(e.Path, pathW)))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, theme.Subtle.Render(fmt.Sprintf("%d fonts", len(entries))))
	return err
}
