package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// soundLog records every dispatched event.
type soundLog struct {
	events []string
}

func (s *soundLog) Play(name string) error { s.events = append(s.events, name); return nil }
func (s *soundLog) StartMusic() error      { s.events = append(s.events, "music:start"); return nil }
func (s *soundLog) PauseMusic() error      { s.events = append(s.events, "music:pause"); return nil }
func (s *soundLog) ResumeMusic() error     { s.events = append(s.events, "music:resume"); return nil }
func (s *soundLog) Close() error           { return nil }

func newTestModel(t *testing.T) (Model, *tetris.Game, *soundLog) {
	t.Helper()
	cfg := config.DefaultTetrisConfig()
	game := tetris.New(cfg)
	sounds := &soundLog{}
	m := NewModel(game, Options{
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Tick: core.DefaultTick, Seed: 42},
		Keys:          cfg.Keys,
		Audio:         sounds,
		Logger:        log.New(io.Discard),
		ScreenshotDir: t.TempDir(),
	})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m, game, sounds
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestTickStepsGameAndDispatchesSounds(t *testing.T) {
	m, game, sounds := newTestModel(t)

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if game.Current() == nil {
		t.Error("first tick should spawn a piece")
	}
	if len(sounds.events) == 0 || sounds.events[0] != "music:start" {
		t.Errorf("sounds = %v, want music start first", sounds.events)
	}
	_ = m
}

func TestKeysQueueUntilTick(t *testing.T) {
	m, game, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg{})
	x0, _ := game.Current().Position()

	m, _ = update(t, m, runeKey('h'))
	m, _ = update(t, m, runeKey('h'))
	if x, _ := game.Current().Position(); x != x0 {
		t.Fatal("keys must not move the piece before the tick")
	}

	m, _ = update(t, m, TickMsg{})
	if x, _ := game.Current().Position(); x != x0-2 {
		t.Errorf("x = %d, want %d", x, x0-2)
	}

	// The frame is cleared after each tick.
	_, _ = update(t, m, TickMsg{})
	if x, _ := game.Current().Position(); x != x0-2 {
		t.Errorf("stale input replayed, x = %d", x)
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m, game, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg{})
	piece := game.Current()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.Current() != piece {
		t.Error("resize should not restart the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-footerHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 40-footerHeight)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !strings.Contains(m.View(), "too small") {
		t.Error("small terminal should show the resize notice")
	}
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "NEXT") {
		t.Error("view missing next panel")
	}
	if !strings.Contains(view, "rotate") {
		t.Error("view missing help footer")
	}
}

func TestScreenshot(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	for _, ext := range []string{"*.txt", "*.png"} {
		matches, err := filepath.Glob(filepath.Join(m.shotDir, ext))
		if err != nil || len(matches) != 1 {
			t.Fatalf("%s files = %v (%v), want one", ext, matches, err)
		}
		if info, err := os.Stat(matches[0]); err != nil || info.Size() == 0 {
			t.Errorf("%s is empty", matches[0])
		}
	}
	if !strings.HasPrefix(m.status, "saved ") {
		t.Errorf("status = %q, want saved message", m.status)
	}
}
