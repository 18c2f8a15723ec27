package config

import (
	_ "embed"
)

//go:embed defaults/kite.yaml
var defaultKiteYAML []byte

// DefaultKiteConfig returns the built-in configuration.
// It matches defaults/kite.yaml and is used when the embedded file cannot be parsed.
func DefaultKiteConfig() KiteConfig {
	return KiteConfig{
		Field: FieldConfig{
			Width:  0,
			Height: 600,
		},
		Avatar: AvatarConfig{
			Size: 160,
			Lane: 0.2,
		},
		Physics: PhysicsConfig{
			Gravity:     0.6,
			FlapImpulse: -10,
			ScrollSpeed: 3,
		},
		Obstacles: ObstaclesConfig{
			Width:          80,
			Gap:            450,
			SpawnThreshold: 300,
			Margin:         50,
		},
		Rules: RulesConfig{
			WinScore: 30,
		},
		Loop: LoopConfig{
			TickMS: 16,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultKiteYAML
}
