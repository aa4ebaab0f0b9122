package tetris

// ShapeSize is the side of the square template every piece is drawn in.
const ShapeSize = 4

// Shape is a 4x4 occupancy template, indexed [row][column].
type Shape [ShapeSize][ShapeSize]bool

// Shapes is the catalog of piece templates. The first two are the
// asymmetric shapes that may spawn mirrored.
var Shapes = [...]Shape{
	{ // S/Z
		{true, false, false, false},
		{true, true, false, false},
		{false, true, false, false},
		{false, false, false, false},
	},
	{ // J/L
		{true, false, false, false},
		{true, false, false, false},
		{true, true, false, false},
		{false, false, false, false},
	},
	{ // T
		{true, false, false, false},
		{true, true, false, false},
		{true, false, false, false},
		{false, false, false, false},
	},
	{ // O
		{true, true, false, false},
		{true, true, false, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	{ // I
		{true, false, false, false},
		{true, false, false, false},
		{true, false, false, false},
		{true, false, false, false},
	},
}

// mirroredShapes is the number of catalog entries that have a mirrored variant.
const mirroredShapes = 2

// ShapeNames labels the catalog entries for display.
var ShapeNames = [len(Shapes)]string{"S", "J", "T", "O", "I"}

// Mirror swaps the first two columns of every row. All catalog shapes
// fit in two columns, so this yields the reflected piece.
func Mirror(s Shape) Shape {
	out := s
	for y := range out {
		out[y][0], out[y][1] = s[y][1], s[y][0]
	}
	return out
}

// RotateShape returns s turned 90 degrees clockwise. Rows are first cycled
// downward until the bottom row is empty so the turn pivots on the visible
// blocks instead of the template corner.
func RotateShape(s Shape) Shape {
	if s.Empty() {
		return s
	}

	d := s
	for rowEmpty(d[ShapeSize-1]) {
		last := d[ShapeSize-1]
		copy(d[1:], d[:ShapeSize-1])
		d[0] = last
	}

	var out Shape
	for y := 0; y < ShapeSize; y++ {
		for x := 0; x < ShapeSize; x++ {
			out[y][x] = d[ShapeSize-1-x][y]
		}
	}
	return out
}

// Empty reports whether the shape has no blocks.
func (s Shape) Empty() bool {
	for _, row := range s {
		if !rowEmpty(row) {
			return false
		}
	}
	return true
}

// Blocks returns the number of occupied cells.
func (s Shape) Blocks() int {
	n := 0
	for _, row := range s {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// String renders the shape as four lines of '#' and '.'.
func (s Shape) String() string {
	buf := make([]byte, 0, ShapeSize*(ShapeSize+1))
	for y, row := range s {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for _, filled := range row {
			if filled {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}

func rowEmpty(row [ShapeSize]bool) bool {
	for _, filled := range row {
		if filled {
			return false
		}
	}
	return true
}
