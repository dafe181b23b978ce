package engine

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Grid stores cells in row-major order. Its dimensions never change.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates an all-dead grid. Non-positive dimensions produce an
// empty grid rather than an error.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Cells exposes the backing slice.
func (g *Grid) Cells() []Cell { return g.cells }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates. The grid must
// not be empty.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}
