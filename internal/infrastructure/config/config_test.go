package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	return root
}

func TestDefaultConfig_IsValid(t *testing.T) {
	root := isolateXDG(t)

	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, 128, cfg.Thumbnails.Size)
	assert.Equal(t, "Aa", cfg.Thumbnails.SampleText)
	assert.Equal(t, filepath.Join(root, "cache", "thumbnails"), cfg.Thumbnails.CacheDir)
	assert.Equal(t, filepath.Join(root, "cache", "fontview", "thumbnails.sqlite"), cfg.Database.Path)
	assert.Contains(t, cfg.Fonts.Directories, filepath.Join(root, "data", "fonts"))
	assert.Equal(t, FontBackendFontconfig, cfg.Fonts.Backend)
}

func TestManager_CreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.True(t, m.CreatedDefault())
	assert.FileExists(t, filepath.Join(root, "config", "fontview", "config.toml"))
	assert.Equal(t, 2, m.Get().Workers)
}

func TestManager_FileAndEnvPrecedence(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
workers = 4

[fonts]
  backend = "scan"
  directories = ["~/fonts", "~/fonts", ""]

[thumbnails]
  size = 256
`), 0o600))

	t.Setenv("FONTVIEW_LOG_LEVEL", "DEBUG")
	t.Setenv("FONTVIEW_WORKERS", "3")

	m, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, FontBackendScan, cfg.Fonts.Backend)
	assert.Equal(t, []string{filepath.Join(root, "fonts")}, cfg.Fonts.Directories)
	assert.Equal(t, 256, cfg.Thumbnails.Size)
	assert.Equal(t, "Aa", cfg.Thumbnails.SampleText)
	assert.Equal(t, path, m.ConfigFile())
	assert.False(t, m.CreatedDefault())
}

func TestManager_MissingExplicitFile(t *testing.T) {
	root := isolateXDG(t)

	m, err := NewManager(WithConfigFile(filepath.Join(root, "nope.toml")))
	require.NoError(t, err)
	assert.Error(t, m.Load())
}

func TestManager_RejectsInvalidValues(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = 0\n[fonts]\nbackend = \"pango\"\n"), 0o600))

	m, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
	assert.Contains(t, err.Error(), "fonts.backend")
}

func TestManager_ReloadRunsCallbacks(t *testing.T) {
	isolateXDG(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var got []int
	m.OnConfigChange(func(cfg *Config) { got = append(got, cfg.Workers) })
	m.OnConfigChange(func(cfg *Config) {
		// Registering from a callback must not affect the running reload.
		m.OnConfigChange(func(*Config) { got = append(got, -1) })
	})

	m.viper.Set("workers", 5)
	m.handleChange(fsnotify.Event{Name: m.ConfigFile(), Op: fsnotify.Write})
	assert.Equal(t, []int{5}, got)
	assert.Equal(t, 5, m.Get().Workers)

	m.viper.Set("workers", 0)
	m.handleChange(fsnotify.Event{Name: m.ConfigFile(), Op: fsnotify.Write})
	assert.Equal(t, []int{5}, got, "invalid edits keep the previous config")
	assert.Equal(t, 5, m.Get().Workers)
}

func TestValidateConfig_ScanNeedsDirectories(t *testing.T) {
	isolateXDG(t)
	cfg := DefaultConfig()
	cfg.Fonts.Backend = FontBackendScan
	cfg.Fonts.Directories = nil
	assert.ErrorContains(t, validateConfig(cfg), "fonts.directories")
}

func TestWriteConfigOrdered_RoundTrip(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "out", "config.toml")
	cfg := DefaultConfig()
	cfg.Locale = "fr_FR.UTF-8"

	require.NoError(t, WriteConfigOrdered(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# fontview configuration.")

	var back Config
	require.NoError(t, toml.Unmarshal(data, &back))
	assert.Equal(t, cfg.Locale, back.Locale)
	assert.Equal(t, cfg.Thumbnails, back.Thumbnails)
	assert.Equal(t, cfg.Fonts, back.Fonts)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"sample_text"`)
	assert.Contains(t, s, `"fontconfig"`)
	assert.Contains(t, s, "fontview configuration")
}
