//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minGridScale is the smallest cell size, in pixels, that still leaves room
// for grid lines.
const minGridScale = 4

// Overlay draws grid lines between cells on top of the rendered frame.
type Overlay struct {
	showGrid bool
	color    color.Color
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance with the grid hidden.
func NewOverlay() *Overlay {
	o := &Overlay{color: color.RGBA{R: 204, G: 204, B: 204, A: 255}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the grid on G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw paints one-pixel lines along every cell boundary of a w x h grid.
func (o *Overlay) Draw(screen *ebiten.Image, w, h, scale int) {
	if !o.showGrid || scale < minGridScale {
		return
	}
	width := float64(w * scale)
	height := float64(h * scale)
	for col := 0; col <= w; col++ {
		o.line(screen, float64(col*scale), 0, 1, height)
	}
	for row := 0; row <= h; row++ {
		o.line(screen, 0, float64(row*scale), width, 1)
	}
}

func (o *Overlay) line(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(o.color)
	screen.DrawImage(o.pixel, op)
}
