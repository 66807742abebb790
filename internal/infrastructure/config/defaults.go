package config

import (
	"os"
	"path/filepath"
)

const (
	defaultWorkers       = 2
	defaultThumbnailSize = 128
	defaultMemoryEntries = 512
	defaultSampleText    = "Aa"
)

// DefaultFontDirectories returns the usual font locations on Linux.
func DefaultFontDirectories() []string {
	dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}

	dataHome := os.Getenv("XDG_DATA_HOME")
	home, err := os.UserHomeDir()
	if dataHome == "" && err == nil {
		dataHome = filepath.Join(home, ".local", "share")
	}
	if dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "fonts"))
	}
	if err == nil {
		dirs = append(dirs, filepath.Join(home, ".fonts"))
	}
	return dirs
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	thumbDir, err := GetThumbnailDir()
	if err != nil {
		thumbDir = ""
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		dbPath = ""
	}

	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Fonts: FontsConfig{
			Backend:     FontBackendFontconfig,
			Directories: DefaultFontDirectories(),
			Watch:       true,
		},
		Thumbnails: ThumbnailsConfig{
			Size:          defaultThumbnailSize,
			CacheDir:      thumbDir,
			SampleText:    defaultSampleText,
			MemoryEntries: defaultMemoryEntries,
		},
		Database: DatabaseConfig{Path: dbPath},
		Workers:  defaultWorkers,
	}
}
