package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, PauseReduction: 4},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{50, 1.0}, // clamped
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); got < tt.expected-1e-9 || got > tt.expected+1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}

	cfg.Enabled = false
	dm = NewDifficultyManager(cfg)
	if dm.IsEnabled() {
		t.Error("IsEnabled should be false for a disabled config")
	}
	if got := dm.Level(10, 0); got != 0.2 {
		t.Errorf("disabled Level = %v, expected initial 0.2", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := dm.Level(999, 50); got != 0.5 {
		t.Errorf("Level by time = %v, expected 0.5", got)
	}
}

func TestDifficultyStepTicks(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		base, score int
		expected    int
	}{
		{30, 0, 30},
		{30, 10, 15}, // twice as fast at max
		{30, 5, 20},  // 30 / 1.5
		{1, 10, 1},   // never below one tick
	}
	for _, tt := range tests {
		if got := dm.StepTicks(tt.base, tt.score, 0); got != tt.expected {
			t.Errorf("StepTicks(%d, %d) = %d, expected %d", tt.base, tt.score, got, tt.expected)
		}
	}
}

func TestDifficultyPauseSteps(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{PauseReduction: 6},
	})

	if got := dm.PauseSteps(8, 0, 0); got != 8 {
		t.Errorf("PauseSteps at start = %d, expected 8", got)
	}
	if got := dm.PauseSteps(8, 10, 0); got != 2 {
		t.Errorf("PauseSteps at max = %d, expected 2", got)
	}
	if got := dm.PauseSteps(4, 10, 0); got != 1 {
		t.Errorf("PauseSteps floor = %d, expected 1", got)
	}
	if got := dm.PauseSteps(0, 10, 0); got != 0 {
		t.Errorf("PauseSteps with no base = %d, expected 0", got)
	}
}

func TestInitialLevelForPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected float64
	}{
		{DifficultyEasy, 0.0},
		{DifficultyNormal, 0.3},
		{DifficultyHard, 0.7},
		{DifficultyFixed, 0.0},
	}
	for _, tt := range tests {
		if got := InitialLevelForPreset(tt.preset); got != tt.expected {
			t.Errorf("InitialLevelForPreset(%s) = %v, expected %v", tt.preset, got, tt.expected)
		}
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Error("IsFixedPreset misreports")
	}
}
