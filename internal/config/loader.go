package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the configuration file looked up on disk.
const ConfigFile = "kite.yaml"

// LoadKite loads the game configuration.
// Search order: customPath -> ~/.kite/configs/kite.yaml -> ./configs/kite.yaml -> embedded default.
// Fields missing from a file keep their default values. The result is validated.
func LoadKite(customPath string) (KiteConfig, error) {
	// Try custom path first; failures here are reported, not skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KiteConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return KiteConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultKiteYAML); err == nil {
		return cfg, nil
	}
	return DefaultKiteConfig(), nil
}

// Parse decodes YAML onto the default configuration and validates the result.
func Parse(data []byte) (KiteConfig, error) {
	cfg := DefaultKiteConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KiteConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return KiteConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kite", "configs", filename)
}
