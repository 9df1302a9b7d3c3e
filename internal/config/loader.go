package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var validDirections = map[string]bool{
	"": true, "none": true, "up": true, "down": true, "left": true, "right": true,
}

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSnake(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := parseSnake(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSnake decodes data over the defaults and validates the result.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every invalid setting at once.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Width < 0 || c.Board.Height < 0 {
		errs = append(errs, fmt.Errorf("board: size must not be negative, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Snake.StartingLength < 1 {
		errs = append(errs, fmt.Errorf("snake.starting_length: must be at least 1, got %d", c.Snake.StartingLength))
	}
	switch strings.ToLower(strings.TrimSpace(c.Snake.StartingDirection)) {
	case "up", "down":
		if c.Board.Height > 0 && c.Snake.StartingLength > c.Board.Height {
			errs = append(errs, fmt.Errorf("snake.starting_length: %d does not fit a board %d high", c.Snake.StartingLength, c.Board.Height))
		}
	default:
		if c.Board.Width > 0 && c.Snake.StartingLength > c.Board.Width {
			errs = append(errs, fmt.Errorf("snake.starting_length: %d does not fit a board %d wide", c.Snake.StartingLength, c.Board.Width))
		}
	}
	if !validDirections[strings.ToLower(strings.TrimSpace(c.Snake.StartingDirection))] {
		errs = append(errs, fmt.Errorf("snake.starting_direction: unknown direction %q", c.Snake.StartingDirection))
	}
	if c.Scoring.PointsPerFood < 0 {
		errs = append(errs, fmt.Errorf("scoring.points_per_food: must not be negative, got %d", c.Scoring.PointsPerFood))
	}
	if c.Food.RespawnAttempts < 0 {
		errs = append(errs, fmt.Errorf("food.respawn_attempts: must not be negative, got %d", c.Food.RespawnAttempts))
	}

	d := c.Difficulty
	if d.BaseInterval <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.base_interval: must be positive, got %s", d.BaseInterval))
	}
	if d.Enabled {
		if d.IntervalStep < 0 {
			errs = append(errs, fmt.Errorf("difficulty.interval_step: must not be negative, got %s", d.IntervalStep))
		}
		if d.PointsPerLevel <= 0 {
			errs = append(errs, fmt.Errorf("difficulty.points_per_level: must be positive, got %d", d.PointsPerLevel))
		}
		if d.MaxLevel < 0 {
			errs = append(errs, fmt.Errorf("difficulty.max_level: must not be negative, got %d", d.MaxLevel))
		}
		if d.BaseInterval > 0 && d.FastestInterval() <= 0 {
			errs = append(errs, fmt.Errorf("difficulty: interval at level %d would be %s", d.MaxLevel, d.FastestInterval()))
		}
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
