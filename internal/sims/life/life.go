package life

import (
	"time"

	"conway/internal/core"
)

// Life implements Conway's Game of Life on a double-buffered board.
type Life struct {
	edges EdgeMode
	cur   *core.BoolGrid
	nxt   *core.BoolGrid
	rng   *core.RNG
}

// New returns a closed-edge board with the given dimensions, all cells
// dead.
func New(rows, cols int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg)
}

// NewRandom returns a closed-edge board seeded with a fair random soup.
func NewRandom(rows, cols int) (*Life, error) {
	l, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	l.Randomize()
	return l, nil
}

// NewWithConfig builds a board from a full configuration.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	edges := cfg.Edges
	if edges == "" {
		edges = EdgeClosed
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Life{
		edges: edges,
		cur:   core.NewBoolGrid(cfg.Cols, cfg.Rows),
		nxt:   core.NewBoolGrid(cfg.Cols, cfg.Rows),
		rng:   core.NewRNG(seed),
	}, nil
}

// Name returns the automaton identifier.
func (l *Life) Name() string {
	if l.edges == EdgeWrap {
		return "life-torus"
	}
	return "life"
}

// Size returns the grid dimensions, W counting columns and H rows.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Rows returns the number of rows.
func (l *Life) Rows() int { return l.cur.H }

// Cols returns the number of columns.
func (l *Life) Cols() int { return l.cur.W }

// Edges returns the active boundary mode.
func (l *Life) Edges() EdgeMode { return l.edges }

// At reports whether the cell at (x, y) is alive. Out-of-range coordinates
// read as dead.
func (l *Life) At(x, y int) bool {
	if !l.cur.InBounds(x, y) {
		return false
	}
	return l.cur.Cells()[l.cur.Index(x, y)]
}

// Set writes the cell at (x, y). Out-of-range coordinates are ignored.
func (l *Life) Set(x, y int, alive bool) {
	if !l.cur.InBounds(x, y) {
		return
	}
	l.cur.Cells()[l.cur.Index(x, y)] = alive
}

// Toggle flips the cell at (x, y). Out-of-range coordinates are ignored.
func (l *Life) Toggle(x, y int) {
	if !l.cur.InBounds(x, y) {
		return
	}
	idx := l.cur.Index(x, y)
	l.cur.Cells()[idx] = !l.cur.Cells()[idx]
}

// CountNeighbors returns how many of the eight Moore neighbors of (x, y)
// are alive. Closed boards read cells beyond the boundary as dead; wrapped
// boards join opposite edges.
func (l *Life) CountNeighbors(x, y int) int {
	cells := l.cur.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if l.edges == EdgeWrap {
				nx, ny = l.cur.Wrap(nx, ny)
			} else if !l.cur.InBounds(nx, ny) {
				continue
			}
			if cells[l.cur.Index(nx, ny)] {
				n++
			}
		}
	}
	return n
}

// Advance computes the next generation into the back buffer and swaps it
// in. Every cell fate is decided by the generation being replaced.
func (l *Life) Advance() {
	w, h := l.cur.W, l.cur.H
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			alive := cur[idx]
			n := l.CountNeighbors(x, y)
			nxt[idx] = (alive && (n == 2 || n == 3)) || (!alive && n == 3)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

// Randomize replaces the board with a fair coin flip per cell.
func (l *Life) Randomize() {
	cells := l.cur.Cells()
	for i := range cells {
		cells[i] = l.rng.Bool()
	}
}

// Fill replaces the board with cells alive at the given density.
func (l *Life) Fill(density float64) {
	core.FillBool(l.rng.Source(), l.cur.Cells(), density)
}

// Reset clears the board and reseeds the random stream, from the clock
// when seed is zero.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	l.rng = core.NewRNG(seed)
	l.cur.Clear()
	l.nxt.Clear()
}

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Count() }

// Snapshot copies the current generation into dst, growing it if needed,
// and returns the copy. Later board changes never alter the returned
// slice.
func (l *Life) Snapshot(dst []bool) []bool {
	cells := l.cur.Cells()
	if cap(dst) < len(cells) {
		dst = make([]bool, len(cells))
	}
	dst = dst[:len(cells)]
	copy(dst, cells)
	return dst
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Automaton, error) {
		c := FromMap(cfg)
		c.Edges = EdgeClosed
		return NewWithConfig(c)
	})
	core.Register("life-torus", func(cfg map[string]string) (core.Automaton, error) {
		c := FromMap(cfg)
		c.Edges = EdgeWrap
		return NewWithConfig(c)
	})
}
