package tetris

// GameStateType represents the current phase of the state machine.
type GameStateType string

const (
	StateSpawning     GameStateType = "spawning"
	StateFalling      GameStateType = "falling"
	StateClearingRows GameStateType = "clearing_rows"
	StateGameOver     GameStateType = "game_over"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// PieceView is a read-only copy of a piece.
type PieceView struct {
	Kind  int
	Shape Shape
	Color Cell
	X, Y  int
}

// Snapshot captures everything a shell needs to draw one frame, and is
// used for determinism testing.
type Snapshot struct {
	Tick        uint64
	Rows        int
	Cols        int
	Cells       [Rows][Cols]Cell
	Current     *PieceView // nil between lock and spawn
	Next        PieceView
	ClearRows   []int // rows being wiped, ascending
	ClearCursor int   // next column to wipe, -1 when idle
	GameOver    bool
	Paused      bool
	State       GameStateType
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Rows:        Rows,
		Cols:        Cols,
		Cells:       g.grid.Cells(),
		ClearCursor: -1,
		GameOver:    g.gameOver,
		Paused:      g.paused,
		State:       g.phase(),
	}
	if g.current != nil {
		v := viewOf(g.current)
		s.Current = &v
	}
	if g.next != nil {
		s.Next = viewOf(g.next)
	}
	if g.clearing != nil {
		s.ClearRows = append([]int(nil), g.clearing.rows...)
		s.ClearCursor = g.clearing.cursor
	}
	return s
}

func (g *Game) phase() GameStateType {
	switch {
	case g.tooSmall:
		return StatePausedSmall
	case g.gameOver:
		return StateGameOver
	case g.paused:
		return StatePaused
	case g.clearing != nil:
		return StateClearingRows
	case g.current == nil:
		return StateSpawning
	default:
		return StateFalling
	}
}

func viewOf(p *Piece) PieceView {
	return PieceView{
		Kind:  p.kind,
		Shape: p.shape,
		Color: p.color,
		X:     p.x,
		Y:     p.y,
	}
}

// Blocks calls fn with the grid coordinates of every block of the piece.
func (v PieceView) Blocks(fn func(x, y int)) {
	for y := 0; y < ShapeSize; y++ {
		for x := 0; x < ShapeSize; x++ {
			if v.Shape[y][x] {
				fn(v.X+x, v.Y+y)
			}
		}
	}
}

// Composite returns the grid cells with the current piece drawn on top.
func (s Snapshot) Composite() [Rows][Cols]Cell {
	cells := s.Cells
	if s.Current != nil {
		color := s.Current.Color
		s.Current.Blocks(func(x, y int) {
			if x >= 0 && x < Cols && y >= 0 && y < Rows {
				cells[y][x] = color
			}
		})
	}
	return cells
}
