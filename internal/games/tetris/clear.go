package tetris

// lineClear is the in-progress left-to-right wipe of completed rows.
type lineClear struct {
	rows   []int // ascending
	cursor int   // next column to wipe
}

// completedRows scans the four rows starting at top and returns the full
// ones in ascending order.
func (g *Game) completedRows(top int) []int {
	var rows []int
	for y := top; y < top+ShapeSize && y < Rows; y++ {
		if g.grid.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// advanceClear wipes one column per tick. Once every column is gone the
// rows above each cleared row drop down and the wipe ends.
func (g *Game) advanceClear() {
	c := g.clearing
	if c == nil {
		return
	}
	if c.cursor < Cols {
		for _, y := range c.rows {
			g.grid.Set(c.cursor, y, Empty)
		}
		c.cursor++
		return
	}

	g.grid.ShiftRowsDown(c.rows)
	g.dropCurrentWith(c.rows)
	g.clearing = nil
}

// dropCurrentWith moves the falling piece down along with the rows above it,
// once per cleared row below the piece. Cleared rows stay solid until the
// shift, so the piece is always entirely above or below each of them.
func (g *Game) dropCurrentWith(rows []int) {
	if g.current == nil {
		return
	}
	bottom := g.current.bottom()
	for _, y := range rows {
		if y > bottom {
			g.current.y++
		}
	}
}
