package config

import (
	"fmt"
	"strings"
)

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}
	validFormats = []string{"console", "json", "text"}
)

// validateConfig reports every invalid value at once.
func validateConfig(cfg *Config) error {
	var problems []string

	problems = append(problems, validateLogging(cfg)...)
	problems = append(problems, validateFonts(cfg)...)
	problems = append(problems, validateThumbnails(cfg)...)
	if cfg.Workers < 1 || cfg.Workers > 64 {
		problems = append(problems, "workers must be between 1 and 64")
	}
	if cfg.Database.Path == "" {
		problems = append(problems, "database.path must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func validateLogging(cfg *Config) []string {
	var problems []string
	if cfg.Logging.Level != "" && !contains(validLevels, cfg.Logging.Level) {
		problems = append(problems, fmt.Sprintf("logging.level must be one of %s", strings.Join(validLevels, ", ")))
	}
	if cfg.Logging.Format != "" && !contains(validFormats, cfg.Logging.Format) {
		problems = append(problems, fmt.Sprintf("logging.format must be one of %s", strings.Join(validFormats, ", ")))
	}
	return problems
}

func validateFonts(cfg *Config) []string {
	switch cfg.Fonts.Backend {
	case FontBackendFontconfig:
		return nil
	case FontBackendScan:
		if len(cfg.Fonts.Directories) == 0 {
			return []string{"fonts.directories must list at least one directory for the scan backend"}
		}
		return nil
	default:
		return []string{fmt.Sprintf("fonts.backend must be %q or %q", FontBackendFontconfig, FontBackendScan)}
	}
}

func validateThumbnails(cfg *Config) []string {
	var problems []string
	if cfg.Thumbnails.Size < 16 || cfg.Thumbnails.Size > 1024 {
		problems = append(problems, "thumbnails.size must be between 16 and 1024")
	}
	if cfg.Thumbnails.MemoryEntries < 0 {
		problems = append(problems, "thumbnails.memory_entries must be non-negative")
	}
	if cfg.Thumbnails.CacheDir == "" {
		problems = append(problems, "thumbnails.cache_dir must not be empty")
	}
	return problems
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
