package config

import (
	_ "embed"
)

//go:embed defaults/tetra.yaml
var defaultTetraYAML []byte

// DefaultTetraConfig returns the classic rule set.
func DefaultTetraConfig() TetraConfig {
	return TetraConfig{
		Speed: SpeedConfig{
			InitialMs:    1000,
			FloorMs:      10,
			ScaleMs:      990,
			ClearDelayMs: 100,
		},
		Scoring: ScoringConfig{
			Single:         100,
			Double:         300,
			Triple:         500,
			Tetris:         800,
			SoftDrop:       1,
			HardDropFactor: 2,
		},
		Leveling: LevelingConfig{
			RowsPerLevel: 10,
			StartLevel:   1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML rule file.
func GetDefaultYAML() []byte {
	return defaultTetraYAML
}
