package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Origins reported by Load.
const (
	OriginCustom   = "custom"
	OriginUser     = "user"
	OriginLocal    = "local"
	OriginEmbedded = "embedded"
	OriginBuiltin  = "builtin"
)

// LocalPath is the working-directory config file.
const LocalPath = "configs/gsnake.yaml"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.gsnake/config.yaml -> ./configs/gsnake.yaml -> embedded default.
//
// Fields missing from a file keep their default values. A custom path that
// cannot be read, parsed or validated is an error; the other locations are
// skipped when unusable.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, OriginCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, OriginUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, OriginLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), OriginBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, OriginEmbedded, nil
}

// Parse decodes YAML on top of Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gsnake", "config.yaml")
}
