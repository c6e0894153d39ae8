package config

import (
	_ "embed"
)

//go:embed defaults/invader.yaml
var defaultInvaderYAML []byte

// DefaultInvaderConfig returns the default Morse Invader configuration.
func DefaultInvaderConfig() InvaderConfig {
	return InvaderConfig{
		Timing: InvaderTiming{
			StepTicks:  30,
			PauseSteps: 4,
		},
		Gameplay: InvaderGameplay{
			Rounds:  0,
			Charset: "full",
		},
		Audio: AudioConfig{
			Enabled:    true,
			DitMS:      100,
			Frequency:  700,
			SampleRate: 44100,
			Volume:     0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				PauseReduction:  2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invader", "invader_letters", "invader_digits":
		return defaultInvaderYAML
	default:
		return nil
	}
}
