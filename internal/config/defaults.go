package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  0,
			Height: 0,
		},
		Snake: StartConfig{
			StartingLength:    4,
			StartingDirection: "right",
		},
		Scoring: ScoringConfig{
			PointsPerFood: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			BaseInterval:   160 * time.Millisecond,
			IntervalStep:   20 * time.Millisecond,
			PointsPerLevel: 500,
			MaxLevel:       6,
		},
		Food: FoodConfig{
			RespawnAttempts: 64,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
