package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// binding maps one window key to a game action.
type binding struct {
	key    ebiten.Key
	action core.Action
}

var namedKeys = map[string]ebiten.Key{
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	" ":     ebiten.KeySpace,
	"space": ebiten.KeySpace,
	"esc":   ebiten.KeyEscape,
	"enter": ebiten.KeyEnter,
	"tab":   ebiten.KeyTab,
}

// keyFor resolves a terminal key name to a window key. Modifier combos
// such as "ctrl+c" have no window equivalent.
func keyFor(name string) (ebiten.Key, bool) {
	if k, ok := namedKeys[name]; ok {
		return k, true
	}
	if len(name) != 1 {
		return 0, false
	}
	switch c := name[0]; {
	case c >= 'a' && c <= 'z':
		return ebiten.KeyA + ebiten.Key(c-'a'), true
	case c >= '0' && c <= '9':
		return ebiten.KeyDigit0 + ebiten.Key(c-'0'), true
	}
	return 0, false
}

// bindingsFor resolves the configured key lists, skipping names that
// have no window key.
func bindingsFor(cfg config.KeyConfig) []binding {
	groups := []struct {
		names  []string
		action core.Action
	}{
		{cfg.Left, core.ActionLeft},
		{cfg.Right, core.ActionRight},
		{cfg.Down, core.ActionDown},
		{cfg.Rotate, core.ActionRotate},
		{cfg.Restart, core.ActionRestart},
		{cfg.Pause, core.ActionPause},
		{cfg.Quit, core.ActionQuit},
	}

	var out []binding
	for _, g := range groups {
		for _, name := range g.names {
			if k, ok := keyFor(name); ok {
				out = append(out, binding{key: k, action: g.action})
			}
		}
	}
	return out
}
