// Package audio plays the game's sound events. Backends decode assets and
// drive the sound card, ring the terminal bell, or do nothing.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Player is a sound backend. Calls never block on playback.
type Player interface {
	Play(name string) error
	StartMusic() error
	PauseMusic() error
	ResumeMusic() error
	Close() error
}

// Dispatch forwards a tick's sound events to p in order.
func Dispatch(p Player, events []core.SoundEvent) error {
	var errs []error
	for _, ev := range events {
		var err error
		switch ev.Kind {
		case core.SoundEffect:
			err = p.Play(ev.Name)
		case core.MusicStart:
			err = p.StartMusic()
		case core.MusicPause:
			err = p.PauseMusic()
		case core.MusicResume:
			err = p.ResumeMusic()
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Open creates the backend selected by cfg, wrapped in a logging decorator.
// A device that fails to initialize falls back to the terminal bell.
func Open(cfg config.AudioConfig, logger *log.Logger) (Player, error) {
	var p Player
	switch cfg.Backend {
	case config.AudioDevice:
		d, err := NewDevice(os.DirFS(cfg.AssetsDir), cfg)
		if err != nil {
			logger.Warn("audio device unavailable, using bell", "err", err)
			p = NewBell(os.Stdout, bellCues...)
			break
		}
		p = d
	case config.AudioBell:
		p = NewBell(os.Stdout, bellCues...)
	case config.AudioOff, "":
		p = Nop{}
	default:
		return nil, fmt.Errorf("unknown audio backend %q", cfg.Backend)
	}
	logger.Debug("audio ready", "backend", cfg.Backend)
	return NewLogged(p, logger), nil
}

// bellCues are the effects worth a bell; "fall" would ring on every lock.
var bellCues = []string{"line", "gameover"}

// Nop discards every event.
type Nop struct{}

func (Nop) Play(string) error  { return nil }
func (Nop) StartMusic() error  { return nil }
func (Nop) PauseMusic() error  { return nil }
func (Nop) ResumeMusic() error { return nil }
func (Nop) Close() error       { return nil }

// Bell rings the terminal bell for a fixed set of effects. Music is ignored.
type Bell struct {
	w     io.Writer
	names map[string]bool
}

// NewBell creates a bell that writes BEL to w for the named effects.
func NewBell(w io.Writer, names ...string) *Bell {
	b := &Bell{w: w, names: make(map[string]bool, len(names))}
	for _, n := range names {
		b.names[n] = true
	}
	return b
}

func (b *Bell) Play(name string) error {
	if !b.names[name] {
		return nil
	}
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

func (b *Bell) StartMusic() error  { return nil }
func (b *Bell) PauseMusic() error  { return nil }
func (b *Bell) ResumeMusic() error { return nil }
func (b *Bell) Close() error       { return nil }
