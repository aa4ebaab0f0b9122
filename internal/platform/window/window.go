// Package window runs the game in a desktop window with ebiten.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/export"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	frameColor   = color.RGBA{0x60, 0x60, 0x70, 0xff}
	overlayColor = color.RGBA{0, 0, 0, 0xc0}
)

// Sim is the simulation driven by the window shell.
type Sim interface {
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Snapshot() tetris.Snapshot
}

// Options configures the window shell.
type Options struct {
	Runtime core.RuntimeConfig
	Window  config.WindowConfig
	Keys    config.KeyConfig
	Audio   audio.Player // nil plays nothing
	Logger  *log.Logger
}

// Game adapts a Sim to ebiten.Game. ebiten calls Update once per tick, so
// the simulation runs on ebiten's update goroutine only.
type Game struct {
	sim      Sim
	layout   export.Layout
	bindings []binding
	frame    core.InputFrame
	state    core.GameState
	audio    audio.Player
	logger   *log.Logger
}

// New creates the window adapter and resets the simulation.
func New(sim Sim, opts Options) *Game {
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	l := export.NewLayout(opts.Window.CellSize)
	cfg := opts.Runtime
	cfg.ScreenW, cfg.ScreenH = l.Width, l.Height
	sim.Reset(cfg)

	return &Game{
		sim:      sim,
		layout:   l,
		bindings: bindingsFor(opts.Keys),
		frame:    core.NewInputFrame(),
		audio:    player,
		logger:   logger,
	}
}

// Update collects newly pressed keys and advances the simulation one tick.
func (g *Game) Update() error {
	for _, b := range g.bindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if b.action == core.ActionQuit {
			return ebiten.Termination
		}
		g.frame.Set(b.action)
	}

	res := g.sim.Step(g.frame)
	g.frame.Clear()

	if err := audio.Dispatch(g.audio, res.Sounds); err != nil {
		g.logger.Warn("sound dispatch failed", "err", err)
	}
	if res.State.GameOver != g.state.GameOver {
		g.logger.Info("game over changed", "game_over", res.State.GameOver)
	}
	g.state = res.State
	return nil
}

// Draw paints the board, the next piece and any overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	snap := g.sim.Snapshot()
	l := g.layout
	cs := float32(l.CellSize)

	bx, by := float32(l.BoardX), float32(l.BoardY)
	vector.StrokeRect(screen, bx-1, by-1, tetris.Cols*cs+2, tetris.Rows*cs+2, 2, frameColor, false)

	cells := snap.Composite()
	for y := 0; y < tetris.Rows; y++ {
		for x := 0; x < tetris.Cols; x++ {
			drawCell(screen, bx+float32(x)*cs, by+float32(y)*cs, cs, cells[y][x])
		}
	}

	px, py := float32(l.PanelX), float32(l.PanelY)
	ebitenutil.DebugPrintAt(screen, "NEXT", l.PanelX, l.PanelY)
	for y := 0; y < tetris.ShapeSize; y++ {
		for x := 0; x < tetris.ShapeSize; x++ {
			if snap.Next.Shape[y][x] {
				drawCell(screen, px+float32(x)*cs, py+cs+float32(y)*cs, cs, snap.Next.Color)
			}
		}
	}

	switch snap.State {
	case tetris.StateGameOver:
		g.drawMessage(screen, "GAME OVER", "Space to restart")
	case tetris.StatePaused:
		g.drawMessage(screen, "PAUSED", "P to resume")
	}
}

func (g *Game) drawMessage(screen *ebiten.Image, title, subtitle string) {
	l := g.layout
	cs := float32(l.CellSize)
	top := float32(l.BoardY) + tetris.Rows*cs/2 - cs
	vector.DrawFilledRect(screen, float32(l.BoardX), top, tetris.Cols*cs, 2*cs, overlayColor, false)

	// The debug font is 6x16 pixels per glyph.
	cx := l.BoardX + tetris.Cols*l.CellSize/2
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, int(top)+2)
	ebitenutil.DebugPrintAt(screen, subtitle, cx-len(subtitle)*3, int(top)+18)
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.layout.Width, g.layout.Height
}

func drawCell(dst *ebiten.Image, x, y, size float32, c tetris.Cell) {
	vector.DrawFilledRect(dst, x+1, y+1, size-2, size-2, tetris.RGBA(c), false)
}

// Run opens the window and blocks until it is closed or the quit key is pressed.
func Run(sim Sim, opts Options) error {
	g := New(sim, opts)

	ebiten.SetWindowSize(g.layout.Width, g.layout.Height)
	ebiten.SetWindowTitle(opts.Window.Title)
	ebiten.SetTPS(opts.Runtime.TickRate())

	g.logger.Info("window opened", "tps", ebiten.TPS(), "cell_size", opts.Window.CellSize)
	err := ebiten.RunGame(g)
	if cerr := g.audio.Close(); cerr != nil {
		g.logger.Warn("audio close failed", "err", cerr)
	}
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
