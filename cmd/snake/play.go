package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// loadConfig loads the config and applies the command-line overrides.
// preset replaces --difficulty when not empty.
func loadConfig(preset string) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	if preset == "" {
		preset = flagDifficulty
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, p)

	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	return play(cfg, runtimeConfig())
}

// play runs one game program until the user quits.
func play(cfg config.SnakeConfig, rcfg core.RuntimeConfig) error {
	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"base_interval", cfg.Difficulty.BaseInterval,
		"progression", cfg.Difficulty.Enabled,
		"seed", rcfg.Seed,
	)

	if err := tui.Run(snake.New(cfg), logger, rcfg); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
