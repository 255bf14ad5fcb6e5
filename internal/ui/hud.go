//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 4
	hudLineHeight = 14
	hudWidth      = 240
)

// HUD renders a translucent status panel in the top-left corner.
type HUD struct {
	visible bool
	panel   *ebiten.Image
	lines   int
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Draw paints the status over screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h == nil || !h.visible {
		return
	}
	lines := s.Lines()
	if h.panel == nil || h.lines != len(lines) {
		h.panel = ebiten.NewImage(hudWidth, len(lines)*hudLineHeight+2*hudPadding)
		h.lines = len(lines)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	for i, line := range lines {
		text.Draw(h.panel, line, face, hudPadding, hudPadding+(i+1)*hudLineHeight-3, color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudPadding, hudPadding)
	screen.DrawImage(h.panel, op)
}
