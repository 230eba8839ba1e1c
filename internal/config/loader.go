package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetra loads the rule configuration.
// Search order: customPath -> ~/.tetraterm/configs/tetra.yaml ->
// ./configs/tetra.yaml -> embedded default
func LoadTetra(customPath string) (TetraConfig, error) {
	var cfg TetraConfig

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
	if userCfgPath := userConfigPath("tetra.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tetra.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetraYAML, &cfg); err != nil {
		return DefaultTetraConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetraterm", "configs", filename)
}

// ApplyTetraPreset modifies the config based on a difficulty preset.
func ApplyTetraPreset(cfg *TetraConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Leveling.RowsPerLevel = 0
		return
	}
	cfg.Leveling.StartLevel = StartLevelForPreset(preset)
	if preset == DifficultyEasy {
		cfg.Speed.InitialMs = 1200
	}
}
