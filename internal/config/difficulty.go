package config

import (
	"fmt"
	"strings"
	"time"
)

// ParsePreset validates a preset name. An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded pacing untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseInterval = 200 * time.Millisecond
		cfg.Difficulty.IntervalStep = 20 * time.Millisecond
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseInterval = 120 * time.Millisecond
		cfg.Difficulty.IntervalStep = 15 * time.Millisecond
	}
}

// EffectiveMaxLevel returns the level cap, or 0 when progression is disabled.
func (d DifficultyConfig) EffectiveMaxLevel() int {
	if !d.Enabled {
		return 0
	}
	return d.MaxLevel
}

// FastestInterval returns the tick interval at the level cap.
func (d DifficultyConfig) FastestInterval() time.Duration {
	return d.BaseInterval - time.Duration(d.EffectiveMaxLevel())*d.IntervalStep
}
