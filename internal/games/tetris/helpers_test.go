package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// seqRand replays fixed values; exhausted sequences yield zero.
type seqRand struct {
	ints   []int
	floats []float64
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    core.DefaultTick,
		Seed:    12345,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return newTestGameWith(t, config.DefaultTetrisConfig())
}

func newTestGameWith(t *testing.T, cfg config.TetrisConfig) *Game {
	t.Helper()
	g := New(cfg)
	g.Reset(testRuntime())
	return g
}

// fillRow paints row y with color 0, leaving the listed columns empty.
func fillRow(g *Grid, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < Cols; x++ {
		if !skip[x] {
			g.Set(x, y, 0)
		} else {
			g.Set(x, y, Empty)
		}
	}
}

func shapeOf(blocks ...[2]int) Shape {
	var s Shape
	for _, b := range blocks {
		s[b[1]][b[0]] = true
	}
	return s
}

func countEffect(sounds []core.SoundEvent, name string) int {
	n := 0
	for _, s := range sounds {
		if s.Kind == core.SoundEffect && s.Name == name {
			n++
		}
	}
	return n
}

func hasKind(sounds []core.SoundEvent, kind core.SoundKind) bool {
	for _, s := range sounds {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

func stepN(g *Game, n int) core.StepResult {
	var res core.StepResult
	for i := 0; i < n; i++ {
		res = g.Step(core.NewInputFrame())
	}
	return res
}
