// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import "time"

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Snake      StartConfig      `yaml:"snake"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Food       FoodConfig       `yaml:"food"`
}

// BoardConfig defines the playable area. Zero values fit the terminal.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StartConfig defines the snake at the start of a session.
type StartConfig struct {
	StartingLength    int    `yaml:"starting_length"`
	StartingDirection string `yaml:"starting_direction"`
}

// ScoringConfig defines how food is scored.
type ScoringConfig struct {
	PointsPerFood int `yaml:"points_per_food"`
}

// DifficultyConfig defines the stepwise speed-up.
type DifficultyConfig struct {
	Enabled        bool          `yaml:"enabled"`
	BaseInterval   time.Duration `yaml:"base_interval"`    // Tick interval at level 0
	IntervalStep   time.Duration `yaml:"interval_step"`    // Interval reduction per level
	PointsPerLevel int           `yaml:"points_per_level"` // Score per level
	MaxLevel       int           `yaml:"max_level"`        // Level cap
}

// FoodConfig defines food placement.
type FoodConfig struct {
	RespawnAttempts int `yaml:"respawn_attempts"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
