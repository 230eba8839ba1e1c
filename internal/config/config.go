// Package config provides YAML-based rule configuration and difficulty
// management for the tetraterm platform.
package config

// TetraConfig contains all tunable rules for the falling-block game.
type TetraConfig struct {
	Speed    SpeedConfig    `yaml:"speed"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Leveling LevelingConfig `yaml:"leveling"`
}

// SpeedConfig defines gravity and clear-delay timing in milliseconds.
type SpeedConfig struct {
	InitialMs    int `yaml:"initial_ms"`     // Gravity interval at level 1
	FloorMs      int `yaml:"floor_ms"`       // Gravity interval lower bound
	ScaleMs      int `yaml:"scale_ms"`       // Inverse-level speed-up term
	ClearDelayMs int `yaml:"clear_delay_ms"` // Highlight window before rows compact
}

// ScoringConfig defines the points awarded for clears and drops.
// Clear values are multiplied by the current level.
type ScoringConfig struct {
	Single         int `yaml:"single"`
	Double         int `yaml:"double"`
	Triple         int `yaml:"triple"`
	Tetris         int `yaml:"tetris"`
	SoftDrop       int `yaml:"soft_drop"`        // Per row soft-dropped
	HardDropFactor int `yaml:"hard_drop_factor"` // Per row hard-dropped
}

// LevelingConfig defines level progression.
type LevelingConfig struct {
	RowsPerLevel int `yaml:"rows_per_level"` // 0 disables progression
	StartLevel   int `yaml:"start_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
