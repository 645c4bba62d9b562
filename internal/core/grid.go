package core

// BoolGrid stores a 2D grid of boolean cell states in row-major order.
type BoolGrid struct {
	W, H int
	data []bool
}

// NewBoolGrid allocates a grid with the given dimensions.
func NewBoolGrid(w, h int) *BoolGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BoolGrid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *BoolGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *BoolGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BoolGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear marks every cell dead.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Count returns the number of live cells.
func (g *BoolGrid) Count() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}
