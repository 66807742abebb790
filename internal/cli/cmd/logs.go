package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/bnema/fontview/internal/cli/styles"
	"github.com/bnema/fontview/internal/infrastructure/config"
	"github.com/bnema/fontview/internal/logging"
)

const (
	defaultLogsLines = 50
	followInterval   = 200 * time.Millisecond
)

var (
	logsFollow bool
	logsLines  int
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the log file",
	Long: `Print the end of fontview's log file.

'fontview browse' always logs to this file. Other commands write to it when
logging.file is enabled in the configuration.

Examples:
  fontview logs
  fontview logs -n 200
  fontview logs -f`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	dir, err := config.GetLogDir()
	if err != nil {
		return err
	}
	path := logging.FileConfig{Dir: dir}.Path()
	out := cmd.OutOrStdout()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No logs yet. Run 'fontview browse' to create them."))
		return nil
	}
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	lines, err := tailLines(f, logsLines)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}
	for _, line := range lines {
		fmt.Fprintln(out, colorizeLogLine(line, app.Theme))
	}

	if !logsFollow {
		return nil
	}
	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return followLog(ctx, path, out, app.Theme)
}

// tailLines returns the last n lines of r.
func tailLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, scanner.Text())
	}
	return ring, scanner.Err()
}

// followLog prints lines appended to path until ctx is done. A rotation shows
// up as the file shrinking, which restarts reading from the top.
func followLog(ctx context.Context, path string, out io.Writer, theme *styles.Theme) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	offset, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(followInterval)
	defer ticker.Stop()

	pending := ""
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		info, statErr := os.Stat(path)
		if statErr != nil {
			continue
		}
		if info.Size() < offset {
			_ = f.Close()
			if f, err = os.Open(path); err != nil {
				return err
			}
			offset, pending = 0, ""
		}

		chunk, readErr := io.ReadAll(f)
		if readErr != nil {
			return readErr
		}
		offset += int64(len(chunk))
		pending += string(chunk)
		for {
			idx := strings.IndexByte(pending, '\n')
			if idx == -1 {
				break
			}
			fmt.Fprintln(out, colorizeLogLine(pending[:idx], theme))
			pending = pending[idx+1:]
		}
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	switch {
	case strings.Contains(line, " ERR "), strings.Contains(line, " FTL "):
		return theme.ErrorStyle.Render(line)
	case strings.Contains(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case strings.Contains(line, " DBG "), strings.Contains(line, " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var level string
	switch entry.Level {
	case "error", "fatal":
		level = theme.ErrorStyle.Render("ERR")
	case "warn":
		level = theme.WarningStyle.Render("WRN")
	case "info":
		level = theme.Highlight.Render("INF")
	case "debug":
		level = theme.Subtle.Render("DBG")
	case "trace":
		level = theme.Subtle.Render("TRC")
	default:
		level = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render(entry.Component+":") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), level, msg)
}
