package core

import "time"

// DefaultTick is the fixed simulation step.
const DefaultTick = 16 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Tick    time.Duration // Wall-clock length of one simulation tick
	Seed    int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    DefaultTick,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// TickRate returns the number of ticks per second, rounded down and at
// least one.
func (c RuntimeConfig) TickRate() int {
	tick := c.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	return Max(1, int(time.Second/tick))
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// SoundKind distinguishes one-shot effects from background music control.
type SoundKind int

const (
	SoundEffect SoundKind = iota
	MusicStart
	MusicPause
	MusicResume
)

// SoundEvent is a fire-and-forget audio request emitted by a game.
// Name is only meaningful for SoundEffect.
type SoundEvent struct {
	Kind SoundKind
	Name string
}

// Effect builds a one-shot SoundEvent.
func Effect(name string) SoundEvent {
	return SoundEvent{Kind: SoundEffect, Name: name}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Sounds []SoundEvent
}
