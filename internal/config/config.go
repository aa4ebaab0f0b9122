// Package config provides YAML-based configuration loading for the game
// and its terminal/window shells.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the game and its shells.
type TetrisConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Audio  AudioConfig  `yaml:"audio"`
	Window WindowConfig `yaml:"window"`
	Keys   KeyConfig    `yaml:"keys"`
}

// TimingConfig defines the fixed simulation step and gravity speed.
type TimingConfig struct {
	TickMS         int `yaml:"tick_ms"`          // Length of one frame
	FallIntervalMS int `yaml:"fall_interval_ms"` // Gravity step
}

// Tick returns the frame length as a duration.
func (t TimingConfig) Tick() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// FallInterval returns the gravity step as a duration.
func (t TimingConfig) FallInterval() time.Duration {
	return time.Duration(t.FallIntervalMS) * time.Millisecond
}

// SpawnConfig defines piece generation parameters.
type SpawnConfig struct {
	MirrorChance float64 `yaml:"mirror_chance"` // Chance to mirror the two asymmetric shapes
}

// AudioBackend selects how sound events are played.
type AudioBackend string

const (
	AudioDevice AudioBackend = "device" // Decode assets and play through the sound card
	AudioBell   AudioBackend = "bell"   // Ring the terminal bell for effects
	AudioOff    AudioBackend = "off"
)

// AudioConfig defines the sound assets and output.
type AudioConfig struct {
	Backend    AudioBackend `yaml:"backend"`
	AssetsDir  string       `yaml:"assets_dir"`  // Holds <name>.wav effects and the music file
	Music      string       `yaml:"music"`       // Looping background track (ogg vorbis)
	Volume     float64      `yaml:"volume"`      // 0.0 - 1.0
	SampleRate int          `yaml:"sample_rate"` // Output sample rate in Hz
}

// WindowConfig defines the graphical window shell.
type WindowConfig struct {
	CellSize int    `yaml:"cell_size"` // Block size in pixels
	Title    string `yaml:"title"`
}

// KeyConfig lists the terminal key names bound to each action.
type KeyConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Down    []string `yaml:"down"`
	Rotate  []string `yaml:"rotate"`
	Restart []string `yaml:"restart"`
	Pause   []string `yaml:"pause"`
	Quit    []string `yaml:"quit"`
}

// Validate reports the first setting that cannot be used.
func (c TetrisConfig) Validate() error {
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS)
	}
	if c.Timing.FallIntervalMS <= 0 {
		return fmt.Errorf("timing.fall_interval_ms must be positive, got %d", c.Timing.FallIntervalMS)
	}
	if c.Spawn.MirrorChance < 0 || c.Spawn.MirrorChance > 1 {
		return fmt.Errorf("spawn.mirror_chance must be within [0, 1], got %v", c.Spawn.MirrorChance)
	}
	switch c.Audio.Backend {
	case AudioDevice, AudioBell, AudioOff:
	default:
		return fmt.Errorf("audio.backend: unknown backend %q", c.Audio.Backend)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	}
	if c.Audio.Backend == AudioDevice && c.Audio.SampleRate <= 0 {
		return errors.New("audio.sample_rate must be positive for the device backend")
	}
	if c.Window.CellSize <= 0 {
		return fmt.Errorf("window.cell_size must be positive, got %d", c.Window.CellSize)
	}
	return nil
}
