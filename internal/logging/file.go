package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const (
	logDirPerm  = 0o750
	logFilePerm = 0o600

	defaultLogName    = "fontview.log"
	defaultMaxSizeMB  = 5
	defaultMaxBackups = 3
)

// FileConfig describes where file logs go.
type FileConfig struct {
	Enabled bool
	Dir     string
	// Name defaults to fontview.log.
	Name       string
	MaxSizeMB  int
	MaxBackups int
	// WriteToStderr duplicates every entry on stderr.
	WriteToStderr bool
}

// Path returns the active log file location.
func (fc FileConfig) Path() string {
	name := fc.Name
	if name == "" {
		name = defaultLogName
	}
	return filepath.Join(fc.Dir, name)
}

// Rotator is an io.Writer appending to Dir/Name. When the file would grow past
// MaxSizeMB it is shifted to Name.1, older backups move up by one, and the
// oldest beyond MaxBackups is removed.
type Rotator struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
}

// NewRotator opens or creates the log file described by cfg.
func NewRotator(cfg FileConfig) (*Rotator, error) {
	if cfg.Dir == "" {
		return nil, errors.New("log directory is empty")
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = defaultMaxSizeMB
	}
	if cfg.MaxBackups < 0 {
		cfg.MaxBackups = 0
	}
	if err := os.MkdirAll(cfg.Dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	r := &Rotator{
		path:       cfg.Path(),
		maxSize:    int64(cfg.MaxSizeMB) << 20,
		maxBackups: cfg.MaxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file.
func (r *Rotator) Path() string { return r.path }

func (r *Rotator) open() error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return 0, os.ErrClosed
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *Rotator) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.file = nil

	if r.maxBackups == 0 {
		if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return r.open()
	}

	_ = os.Remove(r.backup(r.maxBackups))
	for i := r.maxBackups - 1; i >= 1; i-- {
		if err := os.Rename(r.backup(i), r.backup(i+1)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("shift log backup: %w", err)
		}
	}
	if err := os.Rename(r.path, r.backup(1)); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return r.open()
}

func (r *Rotator) backup(i int) string {
	return fmt.Sprintf("%s.%d", r.path, i)
}

// Close closes the active file. Writes after Close fail.
func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewWithFile creates a logger writing to a rotated file when fc.Enabled, and
// to stderr otherwise or in addition when fc.WriteToStderr is set. The
// returned cleanup closes the file.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	if !fc.Enabled {
		return New(cfg), func() {}, nil
	}

	rot, err := NewRotator(fc)
	if err != nil {
		return New(cfg), func() {}, err
	}

	var fileOut io.Writer = rot
	if cfg.Format == "console" {
		fileOut = zerolog.ConsoleWriter{Out: rot, NoColor: true, TimeFormat: cfg.TimeFormat}
	}

	out := fileOut
	if fc.WriteToStderr {
		out = zerolog.MultiLevelWriter(fileOut, formatWriter(cfg.Format, os.Stderr, cfg.TimeFormat))
	}

	cleanup := func() { _ = rot.Close() }
	return newLogger(cfg.Level, out), cleanup, nil
}
