package main

// Notes:
// - loadEnvConfig and warnUnknownEnvVars use t.Setenv, so those tests
//   cannot run in parallel.

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-ogimage/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("OGIMAGE_CONFIG", "cards")
	t.Setenv("OGIMAGE_FONT_DIR", "/srv/fonts")
	t.Setenv("OGIMAGE_EMOJI_BASE_URL", "https://cdn.example/svg/")
	t.Setenv("OGIMAGE_OUTPUT_DIR", "out")
	t.Setenv("OGIMAGE_WORKERS", "3")

	got := loadEnvConfig(slog.New(slog.NewTextHandler(io.Discard, nil)))

	want := &envConfig{
		ConfigPath:   "cards",
		FontDir:      "/srv/fonts",
		EmojiBaseURL: "https://cdn.example/svg/",
		OutputDir:    "out",
		Workers:      3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loadEnvConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvConfig_InvalidWorkers(t *testing.T) {
	for _, value := range []string{"abc", "0", "-2"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("OGIMAGE_WORKERS", value)

			var buf bytes.Buffer
			got := loadEnvConfig(slog.New(slog.NewTextHandler(&buf, nil)))

			if got.Workers != 0 {
				t.Errorf("Workers = %d, want 0", got.Workers)
			}
			if !strings.Contains(buf.String(), "OGIMAGE_WORKERS") {
				t.Errorf("expected warning, got %q", buf.String())
			}
		})
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("OGIMAGE_FONTS_DIR", "/typo")
	t.Setenv("OGIMAGE_FONT_DIR", "/ok")

	var buf bytes.Buffer
	warnUnknownEnvVars(slog.New(slog.NewTextHandler(&buf, nil)))

	if !strings.Contains(buf.String(), "OGIMAGE_FONTS_DIR") {
		t.Errorf("expected warning for typo, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "name=OGIMAGE_FONT_DIR") {
		t.Errorf("unexpected warning for known variable: %q", buf.String())
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		FontDir:      "/env/fonts",
		EmojiBaseURL: "https://env.example/",
		OutputDir:    "env-out",
		Workers:      5,
	}

	t.Run("fills empty values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.Fonts.Dir != "/env/fonts" || cfg.Emoji.BaseURL != "https://env.example/" ||
			cfg.Output.DefaultDir != "env-out" || cfg.Workers != 5 {
			t.Errorf("applyEnvConfig() = %+v", cfg)
		}
	})

	t.Run("environment beats config file", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Fonts.Dir = "/cfg/fonts"
		cfg.Workers = 2
		applyEnvConfig(env, cfg)

		if cfg.Fonts.Dir != "/env/fonts" {
			t.Errorf("Fonts.Dir = %q, want env value", cfg.Fonts.Dir)
		}
		if cfg.Workers != 5 {
			t.Errorf("Workers = %d, want env value", cfg.Workers)
		}
	})

	t.Run("unset variables keep config values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "cfg-out"
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Output.DefaultDir != "cfg-out" {
			t.Errorf("Output.DefaultDir = %q, want config value", cfg.Output.DefaultDir)
		}
	})
}
