//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on boolean cell data.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBoolRGBA(gp.buf, cells, on, off)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines overlays cell boundaries onto dst at the given scale.
// Lines are skipped when cells are too small to show them.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image, scale int, clr color.RGBA) {
	if scale <= 1 {
		return
	}
	width := float64(gp.w * scale)
	height := float64(gp.h * scale)
	for x := 0; x <= gp.w; x++ {
		gp.fillRect(dst, float64(x*scale), 0, 1, height, clr)
	}
	for y := 0; y <= gp.h; y++ {
		gp.fillRect(dst, 0, float64(y*scale), width, 1, clr)
	}
}

func (gp *GridPainter) fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(clr.R)/255.0, float64(clr.G)/255.0, float64(clr.B)/255.0, float64(clr.A)/255.0)
	dst.DrawImage(gp.pixel, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
