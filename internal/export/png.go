package export

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// DefaultCellSize is the block size in pixels used for screenshots.
const DefaultCellSize = 24

var (
	frameColor = color.RGBA{0x60, 0x60, 0x70, 0xff}
	textColor  = color.White
)

// Layout describes where the board and the next-piece panel land in the image.
type Layout struct {
	CellSize       int
	BoardX, BoardY int
	PanelX, PanelY int
	Width, Height  int
}

// NewLayout computes the image geometry for a cell size.
func NewLayout(cellSize int) Layout {
	pad := cellSize
	l := Layout{
		CellSize: cellSize,
		BoardX:   pad,
		BoardY:   pad,
	}
	l.PanelX = l.BoardX + tetris.Cols*cellSize + pad
	l.PanelY = l.BoardY
	l.Width = l.PanelX + tetris.ShapeSize*cellSize + pad
	l.Height = l.BoardY + tetris.Rows*cellSize + pad
	return l
}

// CellCenter returns the pixel at the middle of board cell (x, y).
func (l Layout) CellCenter(x, y int) (int, int) {
	return l.BoardX + x*l.CellSize + l.CellSize/2, l.BoardY + y*l.CellSize + l.CellSize/2
}

// Image renders a snapshot to an RGBA image.
func Image(s tetris.Snapshot, cellSize int) (image.Image, error) {
	dc, err := draw(s, cellSize)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG encodes a snapshot as PNG to w.
func WritePNG(w io.Writer, s tetris.Snapshot, cellSize int) error {
	dc, err := draw(s, cellSize)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG writes a snapshot as a PNG file.
func SavePNG(path string, s tetris.Snapshot, cellSize int) error {
	dc, err := draw(s, cellSize)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func draw(s tetris.Snapshot, cellSize int) (*gg.Context, error) {
	if cellSize < 4 {
		return nil, fmt.Errorf("cell size %d too small", cellSize)
	}
	l := NewLayout(cellSize)

	dc := gg.NewContext(l.Width, l.Height)
	dc.SetColor(color.Black)
	dc.Clear()

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(cellSize) * 0.7,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	cs := float64(cellSize)

	// Board
	dc.SetColor(frameColor)
	dc.SetLineWidth(2)
	dc.DrawRectangle(float64(l.BoardX)-1, float64(l.BoardY)-1, tetris.Cols*cs+2, tetris.Rows*cs+2)
	dc.Stroke()

	cells := s.Composite()
	for y := 0; y < tetris.Rows; y++ {
		for x := 0; x < tetris.Cols; x++ {
			px := float64(l.BoardX) + float64(x)*cs
			py := float64(l.BoardY) + float64(y)*cs
			drawCell(dc, px, py, cs, cells[y][x])
		}
	}

	// Next piece
	dc.SetColor(textColor)
	dc.DrawStringAnchored("NEXT", float64(l.PanelX)+tetris.ShapeSize*cs/2, float64(l.PanelY)+cs/2, 0.5, 0.5)
	next := s.Next
	for y := 0; y < tetris.ShapeSize; y++ {
		for x := 0; x < tetris.ShapeSize; x++ {
			if next.Shape[y][x] {
				drawCell(dc, float64(l.PanelX)+float64(x)*cs, float64(l.PanelY)+cs+float64(y)*cs, cs, next.Color)
			}
		}
	}

	if s.GameOver {
		dc.SetColor(color.RGBA{0, 0, 0, 0xc0})
		dc.DrawRectangle(float64(l.BoardX), float64(l.BoardY)+tetris.Rows*cs/2-cs, tetris.Cols*cs, 2*cs)
		dc.Fill()
		dc.SetColor(textColor)
		dc.DrawStringAnchored("GAME OVER", float64(l.BoardX)+tetris.Cols*cs/2, float64(l.BoardY)+tetris.Rows*cs/2, 0.5, 0.5)
	}
	return dc, nil
}

// drawCell fills one block, leaving a one pixel gap to its neighbours.
func drawCell(dc *gg.Context, x, y, size float64, c tetris.Cell) {
	dc.SetColor(tetris.RGBA(c))
	dc.DrawRectangle(x+1, y+1, size-2, size-2)
	dc.Fill()
}
