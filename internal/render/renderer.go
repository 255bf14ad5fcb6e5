//go:build ebiten

package render

import (
	"image/color"

	"bitlife/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from packed frames.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

// Blit uploads the frame into the painter image and draws it scaled onto dst.
// The backing image follows the frame if the grid was resized.
func (gp *GridPainter) Blit(dst *ebiten.Image, f session.Frame, on, off color.Color, scale int) {
	if int(f.Width) != gp.w || int(f.Height) != gp.h {
		gp.resize(int(f.Width), int(f.Height))
	}
	fillFrameRGBA(gp.buf, f, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

func (gp *GridPainter) resize(w, h int) {
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}
