package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in configuration.
// It must stay in sync with defaults/dodge.yaml.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Arena: ArenaConfig{
			Width:  1024,
			Height: 768,
		},
		Player: PlayerConfig{
			AccelStep: 10,
			MaxSpeed:  300,
			Damping:   0.9,
			Width:     36,
			Height:    36,
		},
		Obstacles: ObstacleConfig{
			SpawnIntervalMs: 1000,
			MinSpeed:        100,
			MaxSpeed:        200,
			LargeSize:       48,
			SmallSize:       24,
			CullMargin:      64,
		},
		Pursuers: PursuerConfig{
			FirstDelayMs:  20000,
			MinIntervalMs: 8000,
			MaxIntervalMs: 16000,
			MinSpeed:      100,
			MaxSpeed:      225,
			Size:          32,
			MaxActive:     16,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type: "score",
				Step: 10,
			},
			Scaling: ScalingConfig{
				BaseObstacles:   1,
				MaxObstacles:    8,
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
