package config

import (
	_ "embed"
)

//go:embed defaults/lanehop.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded default configuration.
// It matches defaults/lanehop.yaml and is used when the embed cannot be parsed.
func DefaultConfig() GameConfig {
	return GameConfig{
		Lanes: LanesConfig{
			Count: 5,
		},
		World: WorldConfig{
			Width:  100,
			Height: 50,
		},
		Character: CharacterConfig{
			X:         12,
			Radius:    3,
			StartLane: 2,
			SpinRate:  6.0,
		},
		Enemies: EnemiesConfig{
			Radius:   3,
			Speed:    40,
			Variants: 4,
		},
		Spawn: SpawnConfig{
			MinDelay:     0.6,
			MaxDelay:     1.4,
			InitialDelay: 0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				DelayReduction:  0.5,
			},
		},
		Audio: AudioConfig{
			Enabled:        true,
			Volume:         0.5,
			EvadeCueChance: 0.33,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
