package tetris

// Board dimensions.
const (
	Rows = 20
	Cols = 10
)

// Cell is the content of one grid position: Empty, a color index
// 0..NumColors-1, or Marker.
type Cell int8

const (
	// Empty marks a free cell.
	Empty Cell = -1
	// Marker paints completed rows while they are being wiped.
	Marker Cell = NumColors
)

// NumColors is the size of the piece palette.
const NumColors = 7

// IsEmpty reports whether the cell holds no color.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Grid is the fixed-size playfield. Row 0 is the top.
type Grid struct {
	cells [Rows][Cols]Cell

	// pending holds rows that were completed and are being wiped.
	// They stay solid for placement until ShiftRowsDown removes them.
	pending [Rows]bool
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Empty
		}
		g.pending[y] = false
	}
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// IsEmpty reports whether (x, y) is on the grid and holds no color.
func (g *Grid) IsEmpty(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x].IsEmpty()
}

// Free reports whether a piece block may occupy (x, y).
func (g *Grid) Free(x, y int) bool {
	return g.IsEmpty(x, y) && !g.pending[y]
}

// Cell returns the content at (x, y). Out-of-bounds reads are Empty.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y][x]
}

// Set writes a cell. Callers validate coordinates first, so
// out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}

// RowFull reports whether every column of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= Rows {
		return false
	}
	for x := 0; x < Cols; x++ {
		if g.cells[y][x].IsEmpty() {
			return false
		}
	}
	return true
}

// markPending flags rows as being wiped.
func (g *Grid) markPending(rows []int) {
	for _, y := range rows {
		if y >= 0 && y < Rows {
			g.pending[y] = true
		}
	}
}

// ShiftRowsDown removes each cleared row by moving every row above it down
// by one and emptying row 0. Rows must be ascending so each index still
// points at the row it named when the clear started.
func (g *Grid) ShiftRowsDown(rows []int) {
	for _, row := range rows {
		if row < 0 || row >= Rows {
			continue
		}
		for y := row; y > 0; y-- {
			g.cells[y] = g.cells[y-1]
		}
		for x := range g.cells[0] {
			g.cells[0][x] = Empty
		}
		g.pending[row] = false
	}
}

// Cells returns a copy of the grid contents, row-major.
func (g *Grid) Cells() [Rows][Cols]Cell {
	return g.cells
}
