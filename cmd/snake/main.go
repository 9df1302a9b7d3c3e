// snake plays the classic snake game in the terminal.
//
// Usage:
//
//	snake                    - Play with the loaded config
//	snake menu               - Pick a difficulty preset, then play
//	snake config             - Print the effective config as YAML
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Preset: easy, normal, hard, fixed
//	--seed <value>       - RNG seed for reproducible food placement
//	--width, --height    - Board size in cells (0 = fit the terminal)
//	--log-file <path>    - Write logs to a file
//	--debug              - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagWidth      int
	flagHeight     int
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Steer the snake to the food. Each food makes it one segment longer
and scores 100 points; every 500 points the game speeds up. Running into a
wall or into yourself ends the game.

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Space/Esc       - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Examples:
  snake
  snake --difficulty hard
  snake --width 30 --height 15 --seed 42
  snake --config ./my-snake.yaml --log-file snake.log --debug
  snake menu
  snake config --difficulty easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width in cells (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height in cells (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
