package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDefaults(t *testing.T) {
	km := NewKeyMap(config.DefaultTetrisConfig().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"h", runeKey('h'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"l", runeKey('l'), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"j", runeKey('j'), core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"k", runeKey('k'), core.ActionRotate},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRestart},
		{"r", runeKey('r'), core.ActionRestart},
		{"p", runeKey('p'), core.ActionPause},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyCustom(t *testing.T) {
	keys := config.DefaultTetrisConfig().Keys
	keys.Left = []string{"a"}
	keys.Rotate = []string{"w"}
	km := NewKeyMap(keys)

	if got := km.MapKey(runeKey('a')); got != core.ActionLeft {
		t.Errorf("a = %v, want left", got)
	}
	if got := km.MapKey(runeKey('h')); got != core.ActionNone {
		t.Errorf("h = %v, want none after rebinding", got)
	}
	if got := km.MapKey(runeKey('w')); got != core.ActionRotate {
		t.Errorf("w = %v, want rotate", got)
	}
}

func TestHelpLabels(t *testing.T) {
	km := NewKeyMap(config.DefaultTetrisConfig().Keys)

	if got, want := km.Restart.Help().Key, "space/r"; got != want {
		t.Errorf("restart help = %q, want %q", got, want)
	}
	if got, want := km.Left.Help().Key, "h/←"; got != want {
		t.Errorf("left help = %q, want %q", got, want)
	}
	if len(km.ShortHelp()) == 0 || len(km.FullHelp()) != 3 {
		t.Error("help groups missing")
	}
}
