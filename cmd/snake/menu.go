package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty preset, then play",
	Long: `Show a menu of difficulty presets with the pacing each one gives on
top of the loaded config, then start the game with the chosen preset.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select preset
  Esc/Q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	// Presets are applied after the choice, so describe them on the
	// unmodified config.
	base, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	rcfg := runtimeConfig()
	preset, ok, err := tui.RunPresetSelector(base, rcfg)
	if err != nil || !ok {
		return err
	}

	cfg, err := loadConfig(string(preset))
	if err != nil {
		return err
	}
	return play(cfg, rcfg)
}
