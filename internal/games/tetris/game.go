// Package tetris implements the falling-block game: the grid, pieces and the
// tick-driven state machine that spawns, drops, locks and clears them.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Sound effect names emitted in StepResult.Sounds.
const (
	SoundFall     = "fall"
	SoundLine     = "line"
	SoundGameOver = "gameover"
)

// Game is the tetris state machine. It is driven by Step once per tick and
// never blocks; shells read it through Snapshot and Render.
type Game struct {
	cfg  config.TetrisConfig
	rng  Rand
	tick uint64

	grid     *Grid
	current  *Piece // nil between lock and the next spawn
	next     *Piece
	clearing *lineClear

	step  time.Duration // Wall-clock length of one tick
	fall  time.Duration // Gravity interval
	timer time.Duration // Time accumulated towards the next gravity step

	gameOver bool
	paused   bool

	sounds []core.SoundEvent

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game using the given configuration.
func New(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new session with an empty grid and a fresh next piece.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0

	g.step = cfg.Tick
	if g.step <= 0 {
		g.step = g.cfg.Timing.Tick()
	}
	g.fall = g.cfg.Timing.FallInterval()
	g.timer = 0

	if g.grid == nil {
		g.grid = NewGrid()
	} else {
		g.grid.Reset()
	}
	g.current = nil
	g.next = g.newPiece()
	g.clearing = nil

	g.gameOver = false
	g.paused = false
	g.sounds = []core.SoundEvent{{Kind: core.MusicStart}}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

func (g *Game) newPiece() *Piece {
	return NewPiece(g.grid, g.rng, g.cfg.Spawn.MirrorChance)
}

// Step advances the game by one tick. The phases run in a fixed order:
// spawn check, input, row wipe, gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.handlePause(in) || g.tooSmall {
		return g.result()
	}

	g.spawn()
	g.handleInput(in)
	g.advanceClear()
	g.applyGravity()

	return g.result()
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Sounds: g.sounds}
	g.sounds = nil
	return res
}

func (g *Game) emit(ev core.SoundEvent) {
	g.sounds = append(g.sounds, ev)
}

// handlePause toggles pause on request and reports whether the game is paused.
func (g *Game) handlePause(in core.InputFrame) bool {
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		if g.paused {
			g.emit(core.SoundEvent{Kind: core.MusicPause})
		} else {
			g.emit(core.SoundEvent{Kind: core.MusicResume})
		}
	}
	return g.paused
}

// spawn promotes the next piece when there is no current one, or ends the
// game if the next piece has no room.
func (g *Game) spawn() {
	if g.current != nil || g.gameOver {
		return
	}
	if !g.next.Fits() {
		g.gameOver = true
		g.emit(core.SoundEvent{Kind: core.MusicPause})
		g.emit(core.Effect(SoundGameOver))
		return
	}
	g.current = g.next
	g.next = g.newPiece()
}

// handleInput applies the tick's actions in arrival order.
func (g *Game) handleInput(in core.InputFrame) {
	for _, a := range in.Events() {
		if g.gameOver {
			if a == core.ActionRestart {
				g.restart()
			}
			continue
		}
		if g.current == nil {
			continue
		}
		switch a {
		case core.ActionLeft:
			g.current.Move(-1, 0)
		case core.ActionRight:
			g.current.Move(1, 0)
		case core.ActionDown:
			g.current.Move(0, 1)
		case core.ActionRotate:
			g.current.Rotate()
		}
	}
}

// restart leaves game over with an empty grid. The next piece is kept and
// spawns on the following tick.
func (g *Game) restart() {
	g.grid.Reset()
	g.clearing = nil
	g.gameOver = false
	g.emit(core.SoundEvent{Kind: core.MusicResume})
}

// applyGravity accumulates the tick and drops the current piece one row
// whenever a full fall interval has passed, locking it when blocked.
func (g *Game) applyGravity() {
	g.timer += g.step
	if g.current == nil || g.gameOver || g.timer < g.fall {
		return
	}
	if g.current.Move(0, 1) {
		g.timer = 0
		return
	}
	// A wipe still owns the board; retry the lock on the next tick.
	if g.clearing != nil {
		return
	}
	g.timer = 0
	g.lock()
}

// lock stamps the current piece and starts a wipe for any rows it completed.
func (g *Game) lock() {
	p := g.current
	p.Place()
	g.emit(core.Effect(SoundFall))
	g.current = nil

	rows := g.completedRows(p.y)
	if len(rows) == 0 {
		return
	}
	for _, y := range rows {
		for x := 0; x < Cols; x++ {
			g.grid.Set(x, y, Marker)
		}
	}
	g.grid.markPending(rows)
	g.emit(core.Effect(SoundLine))
	g.clearing = &lineClear{rows: rows}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Grid exposes the playfield for read-only inspection.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Current returns the falling piece, or nil between lock and spawn.
func (g *Game) Current() *Piece {
	return g.current
}

// Next returns the piece that spawns next.
func (g *Game) Next() *Piece {
	return g.next
}
