package render

import (
	"image/color"
	"testing"
)

func TestFillBoolRGBA(t *testing.T) {
	cells := []bool{true, false, false, true}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	fillBoolRGBA(buf, cells, on, off)

	for i, alive := range cells {
		base := i * 4
		want := off
		if alive {
			want = on
		}
		got := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
		if got != want {
			t.Fatalf("pixel %d = %+v, want %+v", i, got, want)
		}
	}
}
