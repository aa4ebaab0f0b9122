// tetris is a falling-block puzzle game for the terminal and the desktop.
//
// Usage:
//
//	tetris                  - Play in the terminal
//	tetris play             - Play in the terminal
//	tetris window           - Play in a desktop window
//	tetris defaults         - Print the default configuration
//	tetris shapes           - Print the piece catalog with its rotations
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible piece order
//	--config <path>     - Custom config YAML
//	--log-file <path>   - Log destination (default: ~/.arcade/tetris.log)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `A falling-block puzzle game. Steer the falling pieces, fill rows to
clear them, and keep the stack below the top.

Available commands:
  play      - Play in the terminal (default)
  window    - Play in a desktop window
  defaults  - Print the default configuration
  shapes    - Print the piece catalog

Examples:
  tetris
  tetris play --seed 42
  tetris window --config ./my-tetris.yaml
  tetris defaults > ~/.arcade/configs/tetris.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/tetris.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(shapesCmd)
}
