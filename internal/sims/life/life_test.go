package life

import (
	"slices"
	"testing"
)

// fixtureBoard is a hand-checked 5x5 board used by the neighbor and
// advance tests. fixtureBoard[x][y] gives the state of cell (x, y).
var fixtureBoard = [5][5]bool{
	{false, true, false, true, false},
	{true, true, true, false, true},
	{false, false, true, false, false},
	{true, false, false, true, true},
	{false, true, false, true, false},
}

// fixtureNext is fixtureBoard advanced by one generation on a closed
// board, worked out by hand.
var fixtureNext = [5][5]bool{
	{true, true, false, true, false},
	{true, false, false, false, false},
	{true, false, true, false, true},
	{false, true, false, true, true},
	{false, false, true, true, true},
}

func loadFixture(t *testing.T) *Life {
	t.Helper()
	l, err := New(5, 5)
	if err != nil {
		t.Fatalf("New(5,5) failed: %v", err)
	}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			l.Set(x, y, fixtureBoard[x][y])
		}
	}
	return l
}

func TestCountNeighborsFixture(t *testing.T) {
	l := loadFixture(t)
	cases := []struct {
		x, y, want int
	}{
		{0, 0, 3},
		{0, 4, 2},
		{2, 2, 3},
		{4, 4, 3},
	}
	for _, c := range cases {
		if got := l.CountNeighbors(c.x, c.y); got != c.want {
			t.Fatalf("CountNeighbors(%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestAdvanceFixture(t *testing.T) {
	l := loadFixture(t)
	l.Advance()
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			if got := l.At(x, y); got != fixtureNext[x][y] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, got, fixtureNext[x][y])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l, err := New(5, 5)
	if err != nil {
		t.Fatalf("New(5,5) failed: %v", err)
	}
	l.Set(2, 1, true)
	l.Set(2, 2, true)
	l.Set(2, 3, true)

	l.Advance()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := l.At(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	l.Advance()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := l.At(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	l, err := New(6, 6)
	if err != nil {
		t.Fatalf("New(6,6) failed: %v", err)
	}
	l.StampBlock(2, 2)
	before := l.Snapshot(nil)
	for i := 0; i < 4; i++ {
		l.Advance()
	}
	if !slices.Equal(l.Snapshot(nil), before) {
		t.Fatalf("block changed across generations")
	}
}

func TestGliderTranslates(t *testing.T) {
	l, err := New(8, 8)
	if err != nil {
		t.Fatalf("New(8,8) failed: %v", err)
	}
	l.StampGlider(1, 1)
	for i := 0; i < 4; i++ {
		l.Advance()
	}

	want, err := New(8, 8)
	if err != nil {
		t.Fatalf("New(8,8) failed: %v", err)
	}
	want.StampGlider(2, 2)

	if !slices.Equal(l.Snapshot(nil), want.Snapshot(nil)) {
		t.Fatalf("glider did not translate one cell down-right after four generations")
	}
}

func TestGliderCrashesIntoClosedCorner(t *testing.T) {
	l, err := New(10, 10)
	if err != nil {
		t.Fatalf("New(10,10) failed: %v", err)
	}
	l.StampGlider(5, 5)
	for i := 0; i < 100; i++ {
		l.Advance()
	}

	// The closed corner stops the flight: the glider collapses into a
	// block wedged against it.
	if got := l.Population(); got != 4 {
		t.Fatalf("population after the crash = %d, want 4", got)
	}
	for _, p := range [][2]int{{8, 8}, {9, 8}, {8, 9}, {9, 9}} {
		if !l.At(p[0], p[1]) {
			t.Fatalf("expected corner block cell (%d,%d) alive", p[0], p[1])
		}
	}
	before := l.Snapshot(nil)
	l.Advance()
	if !slices.Equal(l.Snapshot(nil), before) {
		t.Fatalf("crash debris still changing after 100 generations")
	}
}

func TestNewRandomProducesMixedBoard(t *testing.T) {
	l, err := NewRandom(20, 20)
	if err != nil {
		t.Fatalf("NewRandom(20,20) failed: %v", err)
	}
	pop := l.Population()
	if pop == 0 || pop == 20*20 {
		t.Fatalf("random board is uniform: population %d", pop)
	}
}

func TestDeadBoardStaysDead(t *testing.T) {
	l, err := New(5, 5)
	if err != nil {
		t.Fatalf("New(5,5) failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		l.Advance()
		if got := l.Population(); got != 0 {
			t.Fatalf("dead board came alive at generation %d: population %d", i+1, got)
		}
	}
}

func TestToggleAndPopulation(t *testing.T) {
	l, err := New(4, 4)
	if err != nil {
		t.Fatalf("New(4,4) failed: %v", err)
	}
	l.Toggle(1, 2)
	if !l.At(1, 2) {
		t.Fatalf("toggle did not revive cell (1,2)")
	}
	if got := l.Population(); got != 1 {
		t.Fatalf("population = %d, want 1", got)
	}
	l.Toggle(1, 2)
	if l.At(1, 2) {
		t.Fatalf("second toggle did not kill cell (1,2)")
	}
	if got := l.Population(); got != 0 {
		t.Fatalf("population = %d, want 0", got)
	}
}

func TestToggleOutOfRangeIsIgnored(t *testing.T) {
	l, err := New(3, 4)
	if err != nil {
		t.Fatalf("New(3,4) failed: %v", err)
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {99, 99}} {
		l.Toggle(p[0], p[1])
	}
	if got := l.Population(); got != 0 {
		t.Fatalf("out-of-range toggles changed the board: population %d", got)
	}
	if l.At(-1, 0) || l.At(4, 0) || l.At(0, 3) {
		t.Fatalf("out-of-range reads returned alive")
	}
}

func TestBoardShape(t *testing.T) {
	l, err := New(3, 7)
	if err != nil {
		t.Fatalf("New(3,7) failed: %v", err)
	}
	size := l.Size()
	if size.W != 7 || size.H != 3 {
		t.Fatalf("Size = %dx%d, want 7x3", size.W, size.H)
	}
	if l.Rows() != 3 || l.Cols() != 7 {
		t.Fatalf("Rows/Cols = %d/%d, want 3/7", l.Rows(), l.Cols())
	}
	l.Toggle(6, 2)
	if got := l.Population(); got != 1 {
		t.Fatalf("toggle of far corner ignored: population %d", got)
	}
	l.Toggle(2, 6)
	if got := l.Population(); got != 1 {
		t.Fatalf("toggle past the row count changed the board: population %d", got)
	}
}

func TestRandomizeDeterministicSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Seed = 20, 20, 42

	a, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	b, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	a.Randomize()
	b.Randomize()
	if !slices.Equal(a.Snapshot(nil), b.Snapshot(nil)) {
		t.Fatalf("same seed produced different soups")
	}

	pop := a.Population()
	if pop < 120 || pop > 280 {
		t.Fatalf("soup population %d far from a fair coin over 400 cells", pop)
	}
}

func TestResetReseedsStream(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Seed = 10, 10, 7
	l, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	l.Randomize()
	first := l.Snapshot(nil)
	l.Advance()

	l.Reset(7)
	if got := l.Population(); got != 0 {
		t.Fatalf("Reset left %d live cells", got)
	}
	l.Randomize()
	if !slices.Equal(l.Snapshot(nil), first) {
		t.Fatalf("Reset(7) did not rewind the random stream")
	}
}

func TestFillDensityExtremes(t *testing.T) {
	l, err := New(10, 10)
	if err != nil {
		t.Fatalf("New(10,10) failed: %v", err)
	}
	l.Fill(1)
	if got := l.Population(); got != 100 {
		t.Fatalf("Fill(1) population = %d, want 100", got)
	}
	l.Fill(0)
	if got := l.Population(); got != 0 {
		t.Fatalf("Fill(0) population = %d, want 0", got)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	l, err := New(4, 4)
	if err != nil {
		t.Fatalf("New(4,4) failed: %v", err)
	}
	l.StampBlock(1, 1)
	snap := l.Snapshot(nil)
	l.Toggle(0, 0)
	if snap[0] {
		t.Fatalf("snapshot tracked a later board change")
	}

	buf := make([]bool, 0, 16)
	out := l.Snapshot(buf)
	if len(out) != 16 {
		t.Fatalf("snapshot length = %d, want 16", len(out))
	}
	if !out[0] {
		t.Fatalf("reused snapshot missed the toggled cell")
	}
}

func TestClosedEdgesReadDead(t *testing.T) {
	l, err := New(3, 3)
	if err != nil {
		t.Fatalf("New(3,3) failed: %v", err)
	}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			l.Set(x, y, true)
		}
	}
	cases := []struct {
		x, y, want int
	}{
		{1, 1, 8},
		{0, 0, 3},
		{1, 0, 5},
		{2, 2, 3},
	}
	for _, c := range cases {
		if got := l.CountNeighbors(c.x, c.y); got != c.want {
			t.Fatalf("CountNeighbors(%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestWrappedEdgesJoinOpposites(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Edges = 5, 5, EdgeWrap
	l, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	l.Set(0, 0, true)
	cases := []struct {
		x, y, want int
	}{
		{4, 4, 1},
		{4, 0, 1},
		{0, 4, 1},
		{1, 1, 1},
		{2, 2, 0},
	}
	for _, c := range cases {
		if got := l.CountNeighbors(c.x, c.y); got != c.want {
			t.Fatalf("CountNeighbors(%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestBlinkerAcrossWrappedEdge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Edges = 5, 5, EdgeWrap
	l, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	l.Set(3, 2, true)
	l.Set(4, 2, true)
	l.Set(0, 2, true)

	l.Advance()
	for _, p := range [][2]int{{4, 1}, {4, 2}, {4, 3}} {
		if !l.At(p[0], p[1]) {
			t.Fatalf("cell (%d,%d) should be alive after the wrapping advance", p[0], p[1])
		}
	}
	if got := l.Population(); got != 3 {
		t.Fatalf("population after wrapping advance = %d, want 3", got)
	}

	l.Advance()
	for _, p := range [][2]int{{3, 2}, {4, 2}, {0, 2}} {
		if !l.At(p[0], p[1]) {
			t.Fatalf("blinker did not oscillate back across the edge at (%d,%d)", p[0], p[1])
		}
	}
}

func TestNameReflectsEdgeMode(t *testing.T) {
	closed, err := New(3, 3)
	if err != nil {
		t.Fatalf("New(3,3) failed: %v", err)
	}
	if closed.Name() != "life" {
		t.Fatalf("closed board Name = %q, want \"life\"", closed.Name())
	}
	cfg := DefaultConfig()
	cfg.Edges = EdgeWrap
	wrapped, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	if wrapped.Name() != "life-torus" {
		t.Fatalf("wrapped board Name = %q, want \"life-torus\"", wrapped.Name())
	}
}
