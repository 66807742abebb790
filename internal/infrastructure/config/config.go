// Package config loads fontview's TOML configuration through viper.
package config

// Config represents the complete configuration for fontview.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Fonts      FontsConfig      `mapstructure:"fonts" toml:"fonts" json:"fonts"`
	Thumbnails ThumbnailsConfig `mapstructure:"thumbnails" toml:"thumbnails" json:"thumbnails"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	// Workers bounds how many background jobs run at once.
	Workers int `mapstructure:"workers" toml:"workers" json:"workers" jsonschema:"minimum=1,maximum=64,default=2"`
	// Locale selects the collation used to sort font names. Empty reads LC_ALL, LC_COLLATE and LANG.
	Locale string `mapstructure:"locale" toml:"locale" json:"locale"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	// File also writes logs to $XDG_STATE_HOME/fontview/fontview.log. The
	// browse command always logs to the file since the terminal is taken.
	File bool `mapstructure:"file" toml:"file" json:"file" jsonschema:"default=false"`
}

// FontBackend selects how installed fonts are enumerated.
type FontBackend string

const (
	// FontBackendFontconfig asks fontconfig through fc-list.
	FontBackendFontconfig FontBackend = "fontconfig"
	// FontBackendScan walks Directories and parses each font file.
	FontBackendScan FontBackend = "scan"
)

// FontsConfig controls font discovery.
type FontsConfig struct {
	Backend FontBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=fontconfig,enum=scan,default=fontconfig"`
	// Directories are scanned by the scan backend and watched by both backends.
	Directories []string `mapstructure:"directories" toml:"directories" json:"directories"`
	// Watch rebuilds the list when files change in a font directory.
	Watch bool `mapstructure:"watch" toml:"watch" json:"watch" jsonschema:"default=true"`
}

// ThumbnailsConfig controls preview generation.
type ThumbnailsConfig struct {
	// Size is the preview edge length in pixels.
	Size int `mapstructure:"size" toml:"size" json:"size" jsonschema:"minimum=16,maximum=1024,default=128"`
	// CacheDir is the shared thumbnail cache root.
	CacheDir string `mapstructure:"cache_dir" toml:"cache_dir" json:"cache_dir"`
	// SampleText is drawn in each font.
	SampleText string `mapstructure:"sample_text" toml:"sample_text" json:"sample_text" jsonschema:"default=Aa"`
	// MemoryEntries bounds the in-memory preview cache.
	MemoryEntries int `mapstructure:"memory_entries" toml:"memory_entries" json:"memory_entries" jsonschema:"minimum=0,default=512"`
}

// DatabaseConfig locates the thumbnail index.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}
