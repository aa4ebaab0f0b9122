package tetris

import "testing"

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid()
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if !g.IsEmpty(x, y) {
				t.Fatalf("cell (%d, %d) = %d, want empty", x, y, g.Cell(x, y))
			}
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid()

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 0, 0, true},
		{"bottom-right", Cols - 1, Rows - 1, true},
		{"left of grid", -1, 5, false},
		{"right of grid", Cols, 5, false},
		{"above grid", 3, -1, false},
		{"below grid", 3, Rows, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.x, tc.y); got != tc.want {
				t.Errorf("InBounds(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
			if got := g.IsEmpty(tc.x, tc.y); got != tc.want {
				t.Errorf("IsEmpty(%d, %d) = %v, want %v on empty grid", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestGridSetIgnoresOutOfBounds(t *testing.T) {
	g := NewGrid()
	g.Set(-1, 0, 3)
	g.Set(Cols, 0, 3)
	g.Set(0, Rows, 3)

	if got := g.Cell(-1, 0); got != Empty {
		t.Errorf("Cell(-1, 0) = %d, want Empty", got)
	}
	want := NewGrid().Cells()
	if g.Cells() != want {
		t.Error("out-of-bounds Set changed the grid")
	}
}

func TestRowFull(t *testing.T) {
	g := NewGrid()
	fillRow(g, 19)
	fillRow(g, 18, 4)

	if !g.RowFull(19) {
		t.Error("RowFull(19) = false for a filled row")
	}
	if g.RowFull(18) {
		t.Error("RowFull(18) = true for a row with one gap")
	}
	if g.RowFull(0) {
		t.Error("RowFull(0) = true for an empty row")
	}
	if g.RowFull(Rows) {
		t.Error("RowFull(Rows) = true for an out-of-range row")
	}

	g.Set(4, 18, Marker)
	if !g.RowFull(18) {
		t.Error("marker cells should count as occupied")
	}
}

// patterned fills every row with a distinct recognizable pattern.
func patterned() *Grid {
	g := NewGrid()
	for y := 0; y < Rows; y++ {
		g.Set(y%Cols, y, Cell(y%NumColors))
	}
	return g
}

func TestShiftRowsDownSingleRow(t *testing.T) {
	g := patterned()
	before := g.Cells()
	const cleared = 15

	g.ShiftRowsDown([]int{cleared})
	after := g.Cells()

	for x := 0; x < Cols; x++ {
		if after[0][x] != Empty {
			t.Errorf("row 0 col %d = %d, want empty", x, after[0][x])
		}
	}
	for y := 1; y <= cleared; y++ {
		if after[y] != before[y-1] {
			t.Errorf("row %d = %v, want old row %d %v", y, after[y], y-1, before[y-1])
		}
	}
	for y := cleared + 1; y < Rows; y++ {
		if after[y] != before[y] {
			t.Errorf("row %d below the cleared row changed", y)
		}
	}
}

func TestShiftRowsDownAdjacentRows(t *testing.T) {
	g := patterned()
	before := g.Cells()

	g.ShiftRowsDown([]int{18, 19})
	after := g.Cells()

	for y := 0; y < 2; y++ {
		for x := 0; x < Cols; x++ {
			if after[y][x] != Empty {
				t.Errorf("row %d col %d = %d, want empty", y, x, after[y][x])
			}
		}
	}
	for y := 2; y < Rows; y++ {
		if after[y] != before[y-2] {
			t.Errorf("row %d = %v, want old row %d", y, after[y], y-2)
		}
	}
}

func TestShiftRowsDownSeparatedRows(t *testing.T) {
	g := patterned()
	before := g.Cells()

	g.ShiftRowsDown([]int{10, 15})
	after := g.Cells()

	// Surviving rows above 15, top to bottom, end up packed on rows 2..15.
	var survivors [][Cols]Cell
	for y := 0; y < 15; y++ {
		if y != 10 {
			survivors = append(survivors, before[y])
		}
	}
	for i, row := range survivors {
		if after[i+2] != row {
			t.Errorf("row %d = %v, want %v", i+2, after[i+2], row)
		}
	}
	for y := 16; y < Rows; y++ {
		if after[y] != before[y] {
			t.Errorf("row %d below both cleared rows changed", y)
		}
	}
}

func TestPendingRowsBlockPlacement(t *testing.T) {
	g := NewGrid()
	g.markPending([]int{19})

	if !g.IsEmpty(0, 19) {
		t.Error("IsEmpty should only consider cell content")
	}
	if g.Free(0, 19) {
		t.Error("Free should be false on a pending row")
	}

	g.ShiftRowsDown([]int{19})
	if !g.Free(0, 19) {
		t.Error("Free should be true once the row is shifted out")
	}
}

func TestGridReset(t *testing.T) {
	g := patterned()
	g.markPending([]int{3})
	g.Reset()

	if g.Cells() != NewGrid().Cells() {
		t.Error("Reset should empty every cell")
	}
	if !g.Free(0, 3) {
		t.Error("Reset should drop pending rows")
	}
}
