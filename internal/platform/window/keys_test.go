package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestKeyFor(t *testing.T) {
	tests := []struct {
		name   string
		want   ebiten.Key
		wantOK bool
	}{
		{"h", ebiten.KeyH, true},
		{"a", ebiten.KeyA, true},
		{"z", ebiten.KeyZ, true},
		{"7", ebiten.KeyDigit7, true},
		{"left", ebiten.KeyArrowLeft, true},
		{"up", ebiten.KeyArrowUp, true},
		{" ", ebiten.KeySpace, true},
		{"esc", ebiten.KeyEscape, true},
		{"ctrl+c", 0, false},
		{"H", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyFor(tt.name)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("keyFor(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBindingsForDefaults(t *testing.T) {
	bindings := bindingsFor(config.DefaultTetrisConfig().Keys)

	want := map[ebiten.Key]core.Action{
		ebiten.KeyH:          core.ActionLeft,
		ebiten.KeyArrowLeft:  core.ActionLeft,
		ebiten.KeyL:          core.ActionRight,
		ebiten.KeyJ:          core.ActionDown,
		ebiten.KeyK:          core.ActionRotate,
		ebiten.KeyArrowUp:    core.ActionRotate,
		ebiten.KeySpace:      core.ActionRestart,
		ebiten.KeyP:          core.ActionPause,
		ebiten.KeyEscape:     core.ActionQuit,
		ebiten.KeyArrowRight: core.ActionRight,
	}

	got := make(map[ebiten.Key]core.Action, len(bindings))
	for _, b := range bindings {
		got[b.key] = b.action
	}
	for k, a := range want {
		if got[k] != a {
			t.Errorf("key %v = %v, want %v", k, got[k], a)
		}
	}
	if n := len(bindings); n != 13 {
		t.Errorf("got %d bindings, want 13 (ctrl+c skipped)", n)
	}
}
