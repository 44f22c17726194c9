package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-ogimage/internal/fileutil"
	"github.com/alnah/go-ogimage/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits for multi-tenant safety.
const (
	MaxPathLength       = 4096 // PATH_MAX on Linux
	MaxURLLength        = 2048 // Browser limit
	MaxThemeLength      = 20   // "light", "dark"
	MaxFontFamilyLength = 100  // CSS family name
	MaxFontSizeLength   = 20   // "96px", "clamp(...)" stays short
	MaxWorkers          = 64
)

// Default request values applied when neither config nor flags set them.
const (
	DefaultTheme      = "light"
	DefaultFontFamily = "Source Sans Pro"
	DefaultFontSize   = "96px"
)

// appDirName is the directory under os.UserConfigDir searched for configs.
const appDirName = "go-ogimage"

// Config holds all configuration for document rendering.
type Config struct {
	Fonts    FontsConfig    `yaml:"fonts"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Emoji    EmojiConfig    `yaml:"emoji"`
	Output   OutputConfig   `yaml:"output"`
	Workers  int            `yaml:"workers"` // 0 = auto
}

// FontsConfig defines where font files are read from.
type FontsConfig struct {
	Dir string `yaml:"dir"` // Empty = default search path
}

// DefaultsConfig holds request values used when a request leaves them empty.
type DefaultsConfig struct {
	Theme      string `yaml:"theme"`
	FontFamily string `yaml:"fontFamily"`
	FontSize   string `yaml:"fontSize"`
	Markdown   bool   `yaml:"markdown"`
}

// EmojiConfig defines Twemoji image options.
type EmojiConfig struct {
	BaseURL string `yaml:"baseURL"` // Empty = jsDelivr Twemoji
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the request file
}

// Validate checks field lengths and ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"fonts.dir", c.Fonts.Dir, MaxPathLength},
		{"defaults.theme", c.Defaults.Theme, MaxThemeLength},
		{"defaults.fontFamily", c.Defaults.FontFamily, MaxFontFamilyLength},
		{"defaults.fontSize", c.Defaults.FontSize, MaxFontSizeLength},
		{"emoji.baseURL", c.Emoji.BaseURL, MaxURLLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	if c.Emoji.BaseURL != "" && !strings.HasPrefix(c.Emoji.BaseURL, "https://") && !strings.HasPrefix(c.Emoji.BaseURL, "http://") {
		return fmt.Errorf("%w: emoji.baseURL must be an http(s) URL, got %q", ErrInvalidValue, c.Emoji.BaseURL)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Theme:      DefaultTheme,
			FontFamily: DefaultFontFamily,
			FontSize:   DefaultFontSize,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Defaults fill request fields the file leaves empty.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for nameOrPath, in order.
// A path is returned as is.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-ogimage/
func SearchPaths(nameOrPath string) []string {
	if fileutil.IsFilePath(nameOrPath) {
		return []string{nameOrPath}
	}

	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, nameOrPath+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, nameOrPath+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
