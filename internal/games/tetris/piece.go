package tetris

// Rand is the randomness a piece draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Spawn position: horizontally centered on the top row.
const (
	SpawnX = Cols/2 - 1
	SpawnY = 0
)

// Piece is a falling tetromino positioned on a grid.
type Piece struct {
	grid  *Grid
	kind  int
	shape Shape
	color Cell
	x, y  int
}

// NewPiece draws a random color and shape and places the piece at the
// spawn position. The two asymmetric shapes are mirrored with probability
// mirrorChance. The piece is not checked against the grid.
func NewPiece(grid *Grid, rnd Rand, mirrorChance float64) *Piece {
	color := Cell(rnd.Intn(NumColors))
	kind := rnd.Intn(len(Shapes))
	shape := Shapes[kind]
	if kind < mirroredShapes && rnd.Float64() < mirrorChance {
		shape = Mirror(shape)
	}
	return &Piece{
		grid:  grid,
		kind:  kind,
		shape: shape,
		color: color,
		x:     SpawnX,
		y:     SpawnY,
	}
}

// Kind returns the catalog index the piece was drawn from.
func (p *Piece) Kind() int { return p.kind }

// Shape returns the current occupancy template.
func (p *Piece) Shape() Shape { return p.shape }

// Color returns the palette index of the piece.
func (p *Piece) Color() Cell { return p.color }

// Position returns the grid coordinates of the template's top-left corner.
func (p *Piece) Position() (x, y int) { return p.x, p.y }

// CanPlace reports whether shape fits at (px, py): every block must land
// inside the grid, below the top edge, on a free cell.
func (p *Piece) CanPlace(px, py int, shape Shape) bool {
	for y := 0; y < ShapeSize; y++ {
		for x := 0; x < ShapeSize; x++ {
			if !shape[y][x] {
				continue
			}
			if !p.grid.Free(px+x, py+y) {
				return false
			}
		}
	}
	return true
}

// Fits reports whether the piece fits where it currently is.
func (p *Piece) Fits() bool {
	return p.CanPlace(p.x, p.y, p.shape)
}

// Move shifts the piece by (dx, dy) if the target is free.
// Returns false and leaves the piece untouched otherwise.
func (p *Piece) Move(dx, dy int) bool {
	if !p.CanPlace(p.x+dx, p.y+dy, p.shape) {
		return false
	}
	p.x += dx
	p.y += dy
	return true
}

// Rotate turns the piece clockwise, falling back to one cell left when the
// rotated shape does not fit in place. Returns false if neither fits; the
// piece is then unchanged.
func (p *Piece) Rotate() bool {
	rotated := RotateShape(p.shape)
	switch {
	case p.CanPlace(p.x, p.y, rotated):
		p.shape = rotated
	case p.CanPlace(p.x-1, p.y, rotated):
		p.x--
		p.shape = rotated
	default:
		return false
	}
	return true
}

// Place stamps the piece's blocks into the grid in its color.
// It must be called once, when the piece locks.
func (p *Piece) Place() {
	for y := 0; y < ShapeSize; y++ {
		for x := 0; x < ShapeSize; x++ {
			if p.shape[y][x] {
				p.grid.Set(p.x+x, p.y+y, p.color)
			}
		}
	}
}

// bottom returns the lowest grid row holding a block.
func (p *Piece) bottom() int {
	for y := ShapeSize - 1; y >= 0; y-- {
		if !rowEmpty(p.shape[y]) {
			return p.y + y
		}
	}
	return p.y
}
