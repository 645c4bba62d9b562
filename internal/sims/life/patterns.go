package life

// StampGlider writes a glider with its top-left corner at (x, y). The
// glider drifts down and to the right as the board advances.
func (l *Life) StampGlider(x, y int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	for dy, row := range pattern {
		for dx, alive := range row {
			if alive {
				l.Set(x+dx, y+dy, true)
			}
		}
	}
}

// StampBlinker writes a horizontal period-2 oscillator with its left cell
// at (x, y).
func (l *Life) StampBlinker(x, y int) {
	l.Set(x, y, true)
	l.Set(x+1, y, true)
	l.Set(x+2, y, true)
}

// StampBlock writes a 2x2 still life with its top-left corner at (x, y).
func (l *Life) StampBlock(x, y int) {
	l.Set(x, y, true)
	l.Set(x+1, y, true)
	l.Set(x, y+1, true)
	l.Set(x+1, y+1, true)
}
