package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName      = "fontview"
	databaseName = "thumbnails.sqlite"
	configName   = "config.toml"
	schemaName   = "config.schema.json"

	dirPerm  = 0o750
	filePerm = 0o600
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
	CacheHome  string
	// Thumbnails is the shared freedesktop thumbnail root, not app specific.
	Thumbnails string
}

func xdgBase(env string, fallback ...string) (string, error) {
	if dir := os.Getenv(env); dir != "" && filepath.IsAbs(dir) {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", env, err)
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

// GetXDGDirs returns the XDG Base Directory paths for fontview.
// With ENV=dev every directory lives under ./.dev/fontview.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			StateHome:  devDir,
			CacheHome:  devDir,
			Thumbnails: filepath.Join(devDir, "thumbnails"),
		}, nil
	}

	configHome, err := xdgBase("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return nil, err
	}
	dataHome, err := xdgBase("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return nil, err
	}
	stateHome, err := xdgBase("XDG_STATE_HOME", ".local", "state")
	if err != nil {
		return nil, err
	}
	cacheHome, err := xdgBase("XDG_CACHE_HOME", ".cache")
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(configHome, appName),
		DataHome:   filepath.Join(dataHome, appName),
		StateHome:  filepath.Join(stateHome, appName),
		CacheHome:  filepath.Join(cacheHome, appName),
		Thumbnails: filepath.Join(cacheHome, "thumbnails"),
	}, nil
}

// GetConfigDir returns the XDG config directory for fontview.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path of the main configuration file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName), nil
}

// GetSchemaFile returns where the configuration JSON schema is written.
func GetSchemaFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, schemaName), nil
}

// GetDatabaseFile returns the default thumbnail index path. The index only
// mirrors the thumbnail cache, so it lives with cached data.
func GetDatabaseFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.CacheHome, databaseName), nil
}

// GetThumbnailDir returns the default shared thumbnail cache root.
func GetThumbnailDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.Thumbnails, nil
}

// GetLogDir returns where file logs are written.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// EnsureDirectories creates the application directories.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.StateHome, dirs.CacheHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
