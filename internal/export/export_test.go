package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func newGame() *tetris.Game {
	g := tetris.New(config.DefaultTetrisConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Tick: core.DefaultTick, Seed: 7})
	return g
}

func TestText(t *testing.T) {
	g := newGame()
	g.Grid().Set(0, tetris.Rows-1, 3)
	g.Grid().Set(9, tetris.Rows-1, tetris.Marker)

	lines := strings.Split(strings.TrimSuffix(Text(g.Snapshot()), "\n"), "\n")
	if len(lines) != tetris.Rows+1 {
		t.Fatalf("got %d lines, want %d", len(lines), tetris.Rows+1)
	}
	if got, want := lines[tetris.Rows-1], "|#........=|"; got != want {
		t.Errorf("bottom row = %q, want %q", got, want)
	}
	if got, want := lines[0], "|..........|"; got != want {
		t.Errorf("top row = %q, want %q", got, want)
	}
	if got, want := lines[tetris.Rows], "+----------+"; got != want {
		t.Errorf("floor = %q, want %q", got, want)
	}
}

func TestTextIncludesCurrentPiece(t *testing.T) {
	g := newGame()
	g.Step(core.NewInputFrame())

	text := Text(g.Snapshot())
	if !strings.Contains(strings.SplitN(text, "\n", 2)[0], "#") {
		t.Errorf("spawned piece missing from the top row:\n%s", text)
	}
}

func TestTextGameOver(t *testing.T) {
	g := newGame()
	for x := 0; x < tetris.Cols; x++ {
		g.Grid().Set(x, 0, 1)
	}
	g.Step(core.NewInputFrame())

	if !strings.HasSuffix(Text(g.Snapshot()), "GAME OVER\n") {
		t.Error("game over text missing")
	}
}

func sameColor(a, b color.Color) bool {
	return color.RGBAModel.Convert(a) == color.RGBAModel.Convert(b)
}

func TestImageCells(t *testing.T) {
	g := newGame()
	g.Grid().Set(0, tetris.Rows-1, 3)

	img, err := Image(g.Snapshot(), DefaultCellSize)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}

	l := NewLayout(DefaultCellSize)
	if b := img.Bounds(); b.Dx() != l.Width || b.Dy() != l.Height {
		t.Errorf("bounds = %v, want %dx%d", b, l.Width, l.Height)
	}

	x, y := l.CellCenter(0, tetris.Rows-1)
	if got := img.At(x, y); !sameColor(got, tetris.RGBA(3)) {
		t.Errorf("filled cell = %v, want %v", got, tetris.RGBA(3))
	}
	x, y = l.CellCenter(5, tetris.Rows-1)
	if got := img.At(x, y); !sameColor(got, tetris.Background) {
		t.Errorf("empty cell = %v, want %v", got, tetris.Background)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, newGame().Snapshot(), 8); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got, want := img.Bounds().Dx(), NewLayout(8).Width; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	if err := SavePNG(path, newGame().Snapshot(), 8); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}

func TestCellSizeTooSmall(t *testing.T) {
	if _, err := Image(newGame().Snapshot(), 2); err == nil {
		t.Error("expected error for a 2px cell")
	}
}
