package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/bnema/fontview/internal/logging"
)

// Manager loads the configuration and reloads it when the file changes.
type Manager struct {
	viper      *viper.Viper
	explicit   string
	mu         sync.RWMutex
	config     *Config
	callbacks  []func(*Config)
	watching   bool
	createdNew bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigFile loads path instead of searching the config directory.
// A missing explicit file is an error rather than being created.
func WithConfigFile(path string) ManagerOption {
	return func(m *Manager) { m.explicit = path }
}

// NewManager creates a configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{viper: viper.New()}
	for _, opt := range opts {
		opt(m)
	}

	v := m.viper
	v.SetConfigType("toml")
	if m.explicit != "" {
		v.SetConfigFile(m.explicit)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix("FONTVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "FONTVIEW_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FONTVIEW_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FONTVIEW_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FONTVIEW_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load reads defaults, the config file and the environment, in increasing
// precedence.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = cfg
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) && m.explicit == "" {
		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile = m.explicit
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(), err)
	}
	return cfg, nil
}

func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.createdNew = true
	return nil
}

// CreatedDefault reports whether Load wrote a fresh default config file.
func (m *Manager) CreatedDefault() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.createdNew
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
	m.viper.SetDefault("logging.file", d.Logging.File)

	m.viper.SetDefault("fonts.backend", string(d.Fonts.Backend))
	m.viper.SetDefault("fonts.directories", d.Fonts.Directories)
	m.viper.SetDefault("fonts.watch", d.Fonts.Watch)

	m.viper.SetDefault("thumbnails.size", d.Thumbnails.Size)
	m.viper.SetDefault("thumbnails.cache_dir", d.Thumbnails.CacheDir)
	m.viper.SetDefault("thumbnails.sample_text", d.Thumbnails.SampleText)
	m.viper.SetDefault("thumbnails.memory_entries", d.Thumbnails.MemoryEntries)

	m.viper.SetDefault("database.path", d.Database.Path)
	m.viper.SetDefault("workers", d.Workers)
	m.viper.SetDefault("locale", d.Locale)
}

// normalizeConfig fills blanks and expands ~ in paths.
func normalizeConfig(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Fonts.Backend = FontBackend(strings.ToLower(strings.TrimSpace(string(cfg.Fonts.Backend))))
	if cfg.Fonts.Backend == "" {
		cfg.Fonts.Backend = FontBackendFontconfig
	}

	dirs := make([]string, 0, len(cfg.Fonts.Directories))
	seen := make(map[string]struct{}, len(cfg.Fonts.Directories))
	for _, dir := range cfg.Fonts.Directories {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		dir = filepath.Clean(expandHome(dir))
		if _, dup := seen[dir]; dup {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	cfg.Fonts.Directories = dirs

	if cfg.Thumbnails.SampleText == "" {
		cfg.Thumbnails.SampleText = defaultSampleText
	}
	if cfg.Thumbnails.CacheDir == "" {
		cfg.Thumbnails.CacheDir, _ = GetThumbnailDir()
	}
	cfg.Thumbnails.CacheDir = expandHome(cfg.Thumbnails.CacheDir)

	if cfg.Database.Path == "" {
		cfg.Database.Path, _ = GetDatabaseFile()
	}
	cfg.Database.Path = expandHome(cfg.Database.Path)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	cfg := *m.config
	cfg.Fonts.Directories = append([]string(nil), m.config.Fonts.Directories...)
	return &cfg
}

// ConfigFile returns the path of the file that was loaded.
func (m *Manager) ConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// OnConfigChange registers fn to run after every successful reload.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// Watch reloads the configuration whenever its file changes. Invalid edits
// are logged and the previous configuration stays in effect.
func (m *Manager) Watch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return
	}
	m.viper.OnConfigChange(m.handleChange)
	m.viper.WatchConfig()
	m.watching = true
}

func (m *Manager) handleChange(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

	m.mu.Lock()
	cfg, err := m.unmarshalConfig()
	if err == nil {
		normalizeConfig(cfg)
		err = validateConfig(cfg)
	}
	if err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("ignoring invalid config change")
		return
	}
	m.config = cfg
	callbacks := slices.Clone(m.callbacks)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(cfg)
	}
}
