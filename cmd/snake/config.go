package main

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config as YAML",
	Long: `Print the config the game would run with: the first config file found
(--config, ~/.snake/configs/snake.yaml, ./configs/snake.yaml, or the built-in
defaults) with --difficulty, --width and --height applied.

Examples:
  snake config > ~/.snake/configs/snake.yaml
  snake config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
