package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window. Key bindings are shared with the
terminal; modifier combos such as ctrl+c are ignored. Logs go to stderr
unless --log-file is given.

Examples:
  tetris window
  tetris window --seed 42`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	var out io.Writer = os.Stderr
	if cmd.Flags().Changed("log-file") {
		logFile, err := openLogFile(flagLogFile)
		if err != nil {
			return err
		}
		defer logFile.Close()
		out = logFile
	}

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	player, err := audio.Open(cfg.Audio, logger)
	if err != nil {
		return err
	}

	return window.Run(tetris.New(cfg), window.Options{
		Runtime: core.RuntimeConfig{
			Tick: cfg.Timing.Tick(),
			Seed: seed(),
		},
		Window: cfg.Window,
		Keys:   cfg.Keys,
		Audio:  player,
		Logger: logger,
	})
}
