package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if cfg != DefaultKiteConfig() {
		t.Errorf("embedded default differs from DefaultKiteConfig():\n%+v\n%+v", cfg, DefaultKiteConfig())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultKiteConfig()

	if cfg.Physics.Gravity != 0.6 || cfg.Physics.FlapImpulse != -10 || cfg.Physics.ScrollSpeed != 3 {
		t.Errorf("unexpected physics defaults: %+v", cfg.Physics)
	}
	if cfg.Avatar.Size != 160 || cfg.Obstacles.Width != 80 || cfg.Obstacles.Gap != 450 {
		t.Errorf("unexpected size defaults: %+v %+v", cfg.Avatar, cfg.Obstacles)
	}
	if cfg.Rules.WinScore != 30 {
		t.Errorf("WinScore = %d, expected 30", cfg.Rules.WinScore)
	}
	if cfg.Loop.TickInterval() != 16*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 16ms", cfg.Loop.TickInterval())
	}
}

func TestLoadKiteCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kite.yaml")
	writeFile(t, path, "rules:\n  win_score: 5\nphysics:\n  gravity: 0.4\n")

	cfg, err := LoadKite(path)
	if err != nil {
		t.Fatalf("LoadKite() failed: %v", err)
	}

	if cfg.Rules.WinScore != 5 {
		t.Errorf("WinScore = %d, expected 5", cfg.Rules.WinScore)
	}
	if cfg.Physics.Gravity != 0.4 {
		t.Errorf("Gravity = %v, expected 0.4", cfg.Physics.Gravity)
	}
	// Unspecified fields keep defaults
	if cfg.Physics.FlapImpulse != -10 || cfg.Obstacles.Gap != 450 {
		t.Errorf("missing fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadKiteCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadKite(filepath.Join(dir, "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, "physics: [unterminated")
		_, err := LoadKite(path)
		if err == nil || !strings.Contains(err.Error(), "parse") {
			t.Errorf("expected parse error, got %v", err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		writeFile(t, path, "rules:\n  win_score: 0\n")
		_, err := LoadKite(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestLoadKiteUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".kite", "configs", ConfigFile), "rules:\n  win_score: 12\n")

	cfg, err := LoadKite("")
	if err != nil {
		t.Fatalf("LoadKite() failed: %v", err)
	}
	if cfg.Rules.WinScore != 12 {
		t.Errorf("user config should be used, WinScore = %d", cfg.Rules.WinScore)
	}
}

func TestLoadKiteFallsBackToEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	// A broken user file is skipped rather than reported
	writeFile(t, filepath.Join(home, ".kite", "configs", ConfigFile), "rules:\n  win_score: -1\n")

	cfg, err := LoadKite("")
	if err != nil {
		t.Fatalf("LoadKite() failed: %v", err)
	}
	if cfg != DefaultKiteConfig() {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*KiteConfig)
		field  string
	}{
		{"zero height", func(c *KiteConfig) { c.Field.Height = 0 }, "field.height"},
		{"negative width", func(c *KiteConfig) { c.Field.Width = -1 }, "field.width"},
		{"zero avatar", func(c *KiteConfig) { c.Avatar.Size = 0 }, "avatar.size"},
		{"lane out of range", func(c *KiteConfig) { c.Avatar.Lane = 1 }, "avatar.lane"},
		{"gap smaller than avatar", func(c *KiteConfig) { c.Obstacles.Gap = 100 }, "obstacles.gap"},
		{"gap taller than field", func(c *KiteConfig) { c.Obstacles.Gap = 700 }, "obstacles.gap"},
		{"no scroll", func(c *KiteConfig) { c.Physics.ScrollSpeed = 0 }, "physics.scroll_speed"},
		{"zero spawn threshold", func(c *KiteConfig) { c.Obstacles.SpawnThreshold = 0 }, "obstacles.spawn_threshold"},
		{"negative margin", func(c *KiteConfig) { c.Obstacles.Margin = -5 }, "obstacles.margin"},
		{"zero win score", func(c *KiteConfig) { c.Rules.WinScore = 0 }, "rules.win_score"},
		{"zero tick", func(c *KiteConfig) { c.Loop.TickMS = 0 }, "loop.tick_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKiteConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error should mention %s, got %v", tc.field, err)
			}
		})
	}

	if err := DefaultKiteConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}
