// Package config provides YAML-based configuration loading for the kite game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// KiteConfig contains all tunable parameters of the game.
type KiteConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Avatar    AvatarConfig    `yaml:"avatar"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Rules     RulesConfig     `yaml:"rules"`
	Loop      LoopConfig      `yaml:"loop"`
}

// FieldConfig defines the play field size in field units (pixels).
// A zero width is derived from the terminal's aspect ratio.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AvatarConfig defines the kite's square hitbox and horizontal lane.
type AvatarConfig struct {
	Size float64 `yaml:"size"`
	Lane float64 `yaml:"lane"` // Fraction of field width from the left edge
}

// PhysicsConfig defines per-tick motion constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"` // Negative = up
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// ObstaclesConfig defines obstacle size, gap and spawn cadence.
type ObstaclesConfig struct {
	Width          float64 `yaml:"width"`
	Gap            float64 `yaml:"gap"`
	SpawnThreshold float64 `yaml:"spawn_threshold"` // Distance from the right edge before the next spawn
	Margin         float64 `yaml:"margin"`          // Minimum distance of a gap from the field edges
}

// RulesConfig defines the win condition.
type RulesConfig struct {
	WinScore int `yaml:"win_score"`
}

// LoopConfig defines the simulation clock.
type LoopConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// TickInterval returns the configured tick period.
func (c LoopConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable field.
func (c KiteConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width >= 0, "field.width must not be negative, got %v", c.Field.Width)
	check(c.Field.Height > 0, "field.height must be positive, got %v", c.Field.Height)
	check(c.Avatar.Size > 0, "avatar.size must be positive, got %v", c.Avatar.Size)
	check(c.Avatar.Lane >= 0 && c.Avatar.Lane < 1, "avatar.lane must be in [0, 1), got %v", c.Avatar.Lane)
	check(c.Avatar.Size < c.Field.Height, "avatar.size %v must be smaller than field.height %v", c.Avatar.Size, c.Field.Height)
	check(c.Physics.ScrollSpeed > 0, "physics.scroll_speed must be positive, got %v", c.Physics.ScrollSpeed)
	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.Gap > c.Avatar.Size, "obstacles.gap %v must be larger than avatar.size %v", c.Obstacles.Gap, c.Avatar.Size)
	check(c.Obstacles.Gap <= c.Field.Height, "obstacles.gap %v must fit in field.height %v", c.Obstacles.Gap, c.Field.Height)
	check(c.Obstacles.SpawnThreshold > 0, "obstacles.spawn_threshold must be positive, got %v", c.Obstacles.SpawnThreshold)
	check(c.Obstacles.Margin >= 0, "obstacles.margin must not be negative, got %v", c.Obstacles.Margin)
	check(c.Rules.WinScore >= 1, "rules.win_score must be at least 1, got %d", c.Rules.WinScore)
	check(c.Loop.TickMS > 0, "loop.tick_ms must be positive, got %d", c.Loop.TickMS)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
