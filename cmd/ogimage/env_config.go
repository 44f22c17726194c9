package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-ogimage/internal/config"
)

// envPrefix marks the environment variables this tool reads.
const envPrefix = "OGIMAGE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // OGIMAGE_CONFIG: config file name or path
	FontDir      string // OGIMAGE_FONT_DIR: font directory
	EmojiBaseURL string // OGIMAGE_EMOJI_BASE_URL: Twemoji SVG prefix
	OutputDir    string // OGIMAGE_OUTPUT_DIR: default batch output directory
	Workers      int    // OGIMAGE_WORKERS: parallel batch workers
}

// knownEnvVars lists valid OGIMAGE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"OGIMAGE_CONFIG":         true,
	"OGIMAGE_FONT_DIR":       true,
	"OGIMAGE_EMOJI_BASE_URL": true,
	"OGIMAGE_OUTPUT_DIR":     true,
	"OGIMAGE_WORKERS":        true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable OGIMAGE_WORKERS is ignored with a warning.
func loadEnvConfig(logger *slog.Logger) *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("OGIMAGE_CONFIG"),
		FontDir:      os.Getenv("OGIMAGE_FONT_DIR"),
		EmojiBaseURL: os.Getenv("OGIMAGE_EMOJI_BASE_URL"),
		OutputDir:    os.Getenv("OGIMAGE_OUTPUT_DIR"),
	}

	if workers := os.Getenv("OGIMAGE_WORKERS"); workers != "" {
		w, err := strconv.Atoi(workers)
		if err != nil || w <= 0 {
			logger.Warn("ignoring invalid environment variable", "name", "OGIMAGE_WORKERS", "value", workers)
		} else {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized OGIMAGE_* variables.
// Helps catch typos like OGIMAGE_FONTS_DIR instead of OGIMAGE_FONT_DIR.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig overrides config file values with the environment variables
// that are set. CLI flags are merged afterwards by mergeRendererFlags, giving
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.FontDir != "" {
		cfg.Fonts.Dir = env.FontDir
	}
	if env.EmojiBaseURL != "" {
		cfg.Emoji.BaseURL = env.EmojiBaseURL
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
