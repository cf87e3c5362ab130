// snake is a terminal snake game.
//
// Usage:
//
//	snake                  - Play (same as "snake play")
//	snake play             - Play a game
//	snake config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Custom snake config YAML
//	--fps <rate>       - Set frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game.

Steer the snake around a 25x25 board, eat the food to grow and
score, and avoid the walls and your own tail.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration

Examples:
  snake
  snake play --seed 42
  snake play --config ./my-snake.yaml
  snake config`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
