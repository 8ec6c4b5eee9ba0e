package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the shapestorm configuration.
// Search order: customPath -> ~/.shapestorm/config.yaml -> ./configs/shapestorm.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/shapestorm.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shapestorm", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// "fixed" leaves the config untouched; the level machine itself never
// changes based on preset, only the agent and trap pressure do.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Agent.BaseSpeed = 0.26
		cfg.Agent.SpeedPerLevel = 0.06
		cfg.Traps.MaxPerWave = 2
		cfg.Traps.ConvertEveryTicks = 420
	case DifficultyHard:
		cfg.Agent.BaseSpeed = 0.42
		cfg.Agent.SpeedPerLevel = 0.10
		cfg.Traps.MinPerWave = 2
		cfg.Traps.ConvertEveryTicks = 240
		cfg.Shapes.MaxSpeed = 0.38
	}
}

// ParsePreset maps a CLI string to a preset, empty on unknown input.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	}
	return ""
}
