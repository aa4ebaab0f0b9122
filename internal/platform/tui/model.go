package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/export"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// footerHeight is the number of terminal rows kept for the help line.
const footerHeight = 1

// statusDuration is how long a status message replaces the help line.
const statusDuration = 2 * time.Second

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

// Game is the simulation driven by the terminal shell.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Snapshot() tetris.Snapshot
}

// Options configures the terminal shell.
type Options struct {
	Runtime       core.RuntimeConfig
	Keys          config.KeyConfig
	Audio         audio.Player // nil plays nothing
	Logger        *log.Logger
	ScreenshotDir string // defaults to ~/.arcade/screenshots
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	audio      audio.Player
	logger     *log.Logger
	shotDir    string
	status     string
	statusLeft int // Ticks until the status message expires
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = core.DefaultTick
	}
	cfg.ScreenH = core.Max(0, cfg.ScreenH-footerHeight)

	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMap(opts.Keys),
		help:       h,
		audio:      player,
		logger:     logger,
		shotDir:    shotDir,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "tick", m.config.Tick)

	// Start the tick loop
	return tickCmd(m.config.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyBoard()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the game running and re-centers it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(0, msg.Height-footerHeight)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if err := audio.Dispatch(m.audio, result.Sounds); err != nil {
		m.logger.Warn("sound dispatch failed", "err", err)
	}
	m.logEvents(result)
	m.gameState = result.State

	if m.statusLeft > 0 {
		m.statusLeft--
		if m.statusLeft == 0 {
			m.status = ""
		}
	}

	// Continue ticking
	return m, tickCmd(m.config.Tick)
}

func (m *Model) logEvents(res core.StepResult) {
	for _, s := range res.Sounds {
		if s.Kind == core.SoundEffect && s.Name == tetris.SoundLine {
			m.logger.Debug("rows completed", "rows", m.game.Snapshot().ClearRows)
		}
	}
	switch {
	case res.State.GameOver && !m.gameState.GameOver:
		m.logger.Info("game over", "tick", m.game.Snapshot().Tick)
	case !res.State.GameOver && m.gameState.GameOver:
		m.logger.Info("restart")
	}
	if res.State.Paused != m.gameState.Paused {
		m.logger.Debug("pause", "paused", res.State.Paused)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = int(statusDuration / m.config.Tick)
}

// saveScreenshot writes the current frame as text and the board as PNG.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		m.setStatus("screenshot failed")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s", m.game.ID(), timestamp))

	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		m.setStatus("screenshot failed")
		return
	}
	if err := export.SavePNG(base+".png", m.game.Snapshot(), export.DefaultCellSize); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		m.setStatus("screenshot failed")
		return
	}

	m.logger.Info("screenshot saved", "path", base)
	m.setStatus("saved " + base + ".png")
}

// copyBoard puts the board as text on the system clipboard.
func (m *Model) copyBoard() {
	if err := clipboard.WriteAll(export.Text(m.game.Snapshot())); err != nil {
		m.logger.Warn("clipboard unavailable", "err", err)
		m.setStatus("clipboard unavailable")
		return
	}
	m.setStatus("board copied")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program and releases audio when it exits.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if cerr := model.audio.Close(); cerr != nil {
		model.logger.Warn("audio close failed", "err", cerr)
	}
	return err
}
