// Package export renders game snapshots outside the live shells: plain text
// for the clipboard and PNG images for screenshots.
package export

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Text draws the board with the falling piece as ASCII art.
//
//	|..........|
//	|....##....|
//	+----------+
func Text(s tetris.Snapshot) string {
	cells := s.Composite()

	var sb strings.Builder
	for y := 0; y < tetris.Rows; y++ {
		sb.WriteByte('|')
		for x := 0; x < tetris.Cols; x++ {
			sb.WriteByte(textRune(cells[y][x]))
		}
		sb.WriteString("|\n")
	}
	sb.WriteByte('+')
	sb.WriteString(strings.Repeat("-", tetris.Cols))
	sb.WriteString("+\n")

	if s.GameOver {
		sb.WriteString("GAME OVER\n")
	}
	return sb.String()
}

func textRune(c tetris.Cell) byte {
	switch {
	case c == tetris.Marker:
		return '='
	case c.IsEmpty():
		return '.'
	default:
		return '#'
	}
}
