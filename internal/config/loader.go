package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the audio section.
const (
	EnvAudioEnabled = "MORSE_AUDIO_ENABLED"
	EnvVolume       = "MORSE_VOLUME" // 0-100
	EnvToneHz       = "MORSE_TONE_HZ"
	EnvDitMS        = "MORSE_DIT_MS"
)

// LoadInvader loads Morse Invader configuration.
// Search order: customPath -> ~/.arcade/configs/invader.yaml -> ./configs/invader.yaml -> embedded default.
// Environment overrides are applied on top of whichever source was used.
// If customPath cannot be read or parsed, the error is returned together
// with the defaults, which still carry the environment overrides.
func LoadInvader(customPath string) (InvaderConfig, error) {
	cfg, err := loadInvaderFile(customPath)
	if err != nil {
		cfg = DefaultInvaderConfig()
	}
	normalize(&cfg)
	ApplyEnv(&cfg)
	return cfg, err
}

func loadInvaderFile(customPath string) (InvaderConfig, error) {
	cfg := DefaultInvaderConfig()

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
	if userCfgPath := userConfigPath("invader.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "invader.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultInvaderYAML, &cfg); err != nil {
		return DefaultInvaderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// normalize replaces out-of-range values with their defaults.
func normalize(cfg *InvaderConfig) {
	def := DefaultInvaderConfig()
	if cfg.Timing.StepTicks <= 0 {
		cfg.Timing.StepTicks = def.Timing.StepTicks
	}
	if cfg.Timing.PauseSteps < 0 {
		cfg.Timing.PauseSteps = 0
	}
	if cfg.Gameplay.Rounds < 0 {
		cfg.Gameplay.Rounds = 0
	}
	switch cfg.Gameplay.Charset {
	case "full", "letters", "digits":
	default:
		cfg.Gameplay.Charset = def.Gameplay.Charset
	}
	if cfg.Audio.DitMS <= 0 {
		cfg.Audio.DitMS = def.Audio.DitMS
	}
	if cfg.Audio.Frequency <= 0 {
		cfg.Audio.Frequency = def.Audio.Frequency
	}
	if cfg.Audio.SampleRate <= 0 {
		cfg.Audio.SampleRate = def.Audio.SampleRate
	}
	cfg.Audio.Volume = clampF(cfg.Audio.Volume, 0, 1)
}

// ApplyEnv overrides the audio section from MORSE_* environment variables.
// Malformed values are ignored.
func ApplyEnv(cfg *InvaderConfig) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// Volume is given as 0-100
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.Volume = clampF(float64(val)/100.0, 0, 1)
		}
	}

	if hz := os.Getenv(EnvToneHz); hz != "" {
		if val, err := strconv.ParseFloat(hz, 64); err == nil && val > 0 {
			cfg.Audio.Frequency = val
		}
	}

	if dit := os.Getenv(EnvDitMS); dit != "" {
		if val, err := strconv.Atoi(dit); err == nil && val > 0 {
			cfg.Audio.DitMS = val
		}
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyInvaderPreset modifies the config based on a difficulty preset.
func ApplyInvaderPreset(cfg *InvaderConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timing.StepTicks = 45
		cfg.Timing.PauseSteps = 6
	case DifficultyHard:
		cfg.Timing.StepTicks = 20
		cfg.Timing.PauseSteps = 2
	}
}
