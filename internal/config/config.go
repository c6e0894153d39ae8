// Package config provides YAML-based game configuration loading and
// difficulty management for Morse Invader.
package config

// InvaderConfig contains all configuration for the Morse Invader game.
type InvaderConfig struct {
	Timing     InvaderTiming    `yaml:"timing"`
	Gameplay   InvaderGameplay  `yaml:"gameplay"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvaderTiming defines how fast the target marker animates.
type InvaderTiming struct {
	StepTicks  int `yaml:"step_ticks"`  // Ticks between two target marker steps
	PauseSteps int `yaml:"pause_steps"` // Steps a new target waits before it moves
}

// InvaderGameplay defines round and character selection.
type InvaderGameplay struct {
	Rounds  int    `yaml:"rounds"`  // Judged rounds per game, 0 = endless
	Charset string `yaml:"charset"` // "full", "letters" or "digits"
}

// AudioConfig defines the Morse tone.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	DitMS      int     `yaml:"dit_ms"`      // Length of a dot in milliseconds, a dash is three
	Frequency  float64 `yaml:"frequency"`   // Tone frequency in Hz
	SampleRate int     `yaml:"sample_rate"` // Output sample rate in Hz
	Volume     float64 `yaml:"volume"`      // 0.0 to 1.0
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to marker speed at max difficulty
	PauseReduction  int     `yaml:"pause_reduction"`  // Launch pause reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values give "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
