package main

import (
	"fmt"
	"log/slog"
	"os"

	ogimage "github.com/alnah/go-ogimage"
	"github.com/alnah/go-ogimage/internal/config"
	"github.com/alnah/go-ogimage/internal/fileutil"
)

// configName returns the config to load: --config, then OGIMAGE_CONFIG.
func configName(flagConfig string) string {
	if flagConfig != "" {
		return flagConfig
	}
	return os.Getenv("OGIMAGE_CONFIG")
}

// loadSettings resolves configuration with the precedence
// CLI flags > env vars > config file > defaults.
func loadSettings(common commonFlags, rf rendererFlags, logger *slog.Logger) (*config.Config, error) {
	warnUnknownEnvVars(logger)
	envCfg := loadEnvConfig(logger)

	cfg := config.DefaultConfig()
	if name := configName(common.config); name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("loaded config", "name", name)
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeRendererFlags(rf, cfg)

	// Flags and env vars bypass LoadConfig's checks.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeRendererFlags merges renderer flags into config. CLI values override
// config values.
func mergeRendererFlags(f rendererFlags, cfg *config.Config) {
	if f.fontDir != "" {
		cfg.Fonts.Dir = f.fontDir
	}
	if f.emojiBaseURL != "" {
		cfg.Emoji.BaseURL = f.emojiBaseURL
	}
}

// newRenderer builds the renderer described by cfg.
func newRenderer(cfg *config.Config) (*ogimage.Renderer, error) {
	var opts []ogimage.Option
	if cfg.Fonts.Dir != "" {
		if !fileutil.DirExists(cfg.Fonts.Dir) {
			return nil, fmt.Errorf("%w: font directory not found: %s", ogimage.ErrFontLoad, cfg.Fonts.Dir)
		}
		opts = append(opts, ogimage.WithFontDir(cfg.Fonts.Dir))
	}
	if cfg.Emoji.BaseURL != "" {
		opts = append(opts, ogimage.WithEmojiBaseURL(cfg.Emoji.BaseURL))
	}
	return ogimage.NewRenderer(opts...)
}

// applyDefaults fills empty request fields from the config defaults.
func applyDefaults(req *ogimage.Request, d config.DefaultsConfig) {
	if req.Theme == "" {
		req.Theme = d.Theme
	}
	if req.FontFamily == "" {
		req.FontFamily = d.FontFamily
	}
	if req.FontSize == "" {
		req.FontSize = d.FontSize
	}
}
