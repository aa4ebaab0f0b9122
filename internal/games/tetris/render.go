package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth  = 2 // Terminal columns per grid cell
	boardW     = Cols*cellWidth + 2
	boardH     = Rows + 2
	panelW     = ShapeSize*cellWidth + 4
	panelH     = ShapeSize + 3
	panelGap   = 2
	layoutW    = boardW + panelGap + panelW
	minScreenW = layoutW
	minScreenH = boardH
)

const (
	blockRune = '█'
	wipeRune  = '▓'
)

// Render draws the board, the next-piece panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := core.Max(0, (g.screenW-layoutW)/2)
	boardY := core.Clamp((g.screenH-boardH)/2, 0, core.Max(0, g.screenH-boardH))
	snap := g.Snapshot()

	g.renderBoard(dst, snap, boardX, boardY)
	g.renderNext(dst, snap, boardX+boardW+panelGap, boardY)

	switch {
	case g.gameOver:
		drawCenteredMessage(dst, boardX, boardY, "GAME OVER", "Space to restart")
	case g.paused:
		drawCenteredMessage(dst, boardX, boardY, "PAUSED", "P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderBoard(dst *core.Screen, snap Snapshot, x0, y0 int) {
	dst.DrawBox(core.NewRect(x0, y0, boardW, boardH), core.ColorGray)

	cells := snap.Composite()
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			sx := x0 + 1 + x*cellWidth
			sy := y0 + 1 + y
			c := cells[y][x]
			switch {
			case c == Marker:
				drawBlock(dst, sx, sy, wipeRune, TermColor(c))
			case !c.IsEmpty():
				drawBlock(dst, sx, sy, blockRune, TermColor(c))
			case x%2 == 0:
				dst.SetWithColor(sx, sy, '·', core.ColorGray)
			}
		}
	}
}

func (g *Game) renderNext(dst *core.Screen, snap Snapshot, x0, y0 int) {
	dst.DrawBox(core.NewRect(x0, y0, panelW, panelH), core.ColorGray)
	dst.DrawText(x0+2, y0, " NEXT ")

	next := snap.Next
	color := TermColor(next.Color)
	for y := 0; y < ShapeSize; y++ {
		for x := 0; x < ShapeSize; x++ {
			if next.Shape[y][x] {
				drawBlock(dst, x0+2+x*cellWidth, y0+2+y, blockRune, color)
			}
		}
	}
}

func drawBlock(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := 0; i < cellWidth; i++ {
		dst.SetWithColor(x+i, y, r, c)
	}
}

// drawCenteredMessage draws a boxed two-line message over the board.
func drawCenteredMessage(dst *core.Screen, boardX, boardY int, title, subtitle string) {
	board := core.NewRect(boardX, boardY, boardW, boardH)
	box := board.CenteredIn(core.Max(len(title), len(subtitle))+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(box.X+(box.W-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(box.W-len(subtitle))/2, box.Y+3, subtitle)
}
