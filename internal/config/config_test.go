package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultTetraConfig(t *testing.T) {
	cfg := DefaultTetraConfig()

	if cfg.Speed.InitialMs != 1000 || cfg.Speed.FloorMs != 10 || cfg.Speed.ScaleMs != 990 {
		t.Errorf("Unexpected default speed: %+v", cfg.Speed)
	}
	if cfg.Speed.ClearDelayMs != 100 {
		t.Errorf("Default clear delay = %d, want 100", cfg.Speed.ClearDelayMs)
	}
	if cfg.Scoring.Single != 100 || cfg.Scoring.Double != 300 ||
		cfg.Scoring.Triple != 500 || cfg.Scoring.Tetris != 800 {
		t.Errorf("Unexpected default clear scores: %+v", cfg.Scoring)
	}
	if cfg.Scoring.SoftDrop != 1 || cfg.Scoring.HardDropFactor != 2 {
		t.Errorf("Unexpected default drop scores: %+v", cfg.Scoring)
	}
	if cfg.Leveling.RowsPerLevel != 10 || cfg.Leveling.StartLevel != 1 {
		t.Errorf("Unexpected default leveling: %+v", cfg.Leveling)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg TetraConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultTetraConfig() {
		t.Errorf("Embedded YAML %+v differs from hardcoded defaults %+v",
			cfg, DefaultTetraConfig())
	}
}

func TestLoadTetraCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rules.yaml")

	content := `
speed:
  initial_ms: 500
  floor_ms: 20
  scale_ms: 480
  clear_delay_ms: 50
scoring:
  single: 40
  double: 100
  triple: 300
  tetris: 1200
  soft_drop: 1
  hard_drop_factor: 2
leveling:
  rows_per_level: 5
  start_level: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Cannot write temp config: %v", err)
	}

	cfg, err := LoadTetra(path)
	if err != nil {
		t.Fatalf("LoadTetra() failed: %v", err)
	}

	if cfg.Speed.InitialMs != 500 {
		t.Errorf("Initial speed = %d, want 500", cfg.Speed.InitialMs)
	}
	if cfg.Scoring.Tetris != 1200 {
		t.Errorf("Tetris score = %d, want 1200", cfg.Scoring.Tetris)
	}
	if cfg.Leveling.RowsPerLevel != 5 || cfg.Leveling.StartLevel != 2 {
		t.Errorf("Unexpected leveling: %+v", cfg.Leveling)
	}
}

func TestLoadTetraMissingCustomPath(t *testing.T) {
	_, err := LoadTetra("/nonexistent/rules.yaml")
	if err == nil {
		t.Error("LoadTetra with a missing explicit path should fail")
	}
}

func TestLoadTetraInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	os.WriteFile(path, []byte("speed: [not a mapping"), 0o644)

	_, err := LoadTetra(path)
	if err == nil {
		t.Error("LoadTetra with invalid YAML should fail")
	}
}

func TestStartLevelForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   int
	}{
		{DifficultyEasy, 1},
		{DifficultyNormal, 3},
		{DifficultyHard, 6},
		{DifficultyPreset("unknown"), 1},
	}
	for _, tt := range tests {
		if got := StartLevelForPreset(tt.preset); got != tt.want {
			t.Errorf("StartLevelForPreset(%q) = %d, want %d", tt.preset, got, tt.want)
		}
	}
}

func TestApplyTetraPreset(t *testing.T) {
	cfg := DefaultTetraConfig()
	ApplyTetraPreset(&cfg, DifficultyHard)
	if cfg.Leveling.StartLevel != 6 {
		t.Errorf("Hard preset start level = %d, want 6", cfg.Leveling.StartLevel)
	}

	cfg = DefaultTetraConfig()
	ApplyTetraPreset(&cfg, DifficultyEasy)
	if cfg.Speed.InitialMs != 1200 {
		t.Errorf("Easy preset initial speed = %d, want 1200", cfg.Speed.InitialMs)
	}
	if cfg.Leveling.StartLevel != 1 {
		t.Errorf("Easy preset start level = %d, want 1", cfg.Leveling.StartLevel)
	}

	cfg = DefaultTetraConfig()
	ApplyTetraPreset(&cfg, DifficultyFixed)
	if cfg.Leveling.RowsPerLevel != 0 {
		t.Errorf("Fixed preset should disable leveling, rows_per_level = %d",
			cfg.Leveling.RowsPerLevel)
	}
}
