package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded default configuration.
// It mirrors defaults/tetris.yaml and is used when the embedded file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			TickMS:         16,
			FallIntervalMS: 300,
		},
		Spawn: SpawnConfig{
			MirrorChance: 0.5,
		},
		Audio: AudioConfig{
			Backend:    AudioBell,
			AssetsDir:  "assets",
			Music:      "tetris_theme.ogg",
			Volume:     0.8,
			SampleRate: 44100,
		},
		Window: WindowConfig{
			CellSize: 32,
			Title:    "Tetris",
		},
		Keys: KeyConfig{
			Left:    []string{"h", "left"},
			Right:   []string{"l", "right"},
			Down:    []string{"j", "down"},
			Rotate:  []string{"k", "up"},
			Restart: []string{" ", "r"},
			Pause:   []string{"p"},
			Quit:    []string{"q", "esc", "ctrl+c"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
