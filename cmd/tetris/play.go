package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls (default bindings):
  H/Left     - Move left
  L/Right    - Move right
  J/Down     - Soft drop
  K/Up       - Rotate
  P          - Pause
  Space/R    - Restart (after game over)
  Ctrl+S     - Save screenshot (text and PNG)
  Ctrl+Y     - Copy the board to the clipboard
  Q/Esc      - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns stdout, so logs go to a file.
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	player, err := audio.Open(cfg.Audio, logger)
	if err != nil {
		return err
	}

	game := tetris.New(cfg)
	err = tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Tick:    cfg.Timing.Tick(),
			Seed:    seed(),
		},
		Keys:   cfg.Keys,
		Audio:  player,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
