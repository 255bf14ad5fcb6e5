//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"bitlife/internal/core"
	"bitlife/internal/render"
	"bitlife/internal/session"
	"bitlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	session *session.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	stepper *core.FixedStep
	fps     *core.FPSMonitor

	onColor  color.Color
	offColor color.Color

	scale    int
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided session.
func New(s *session.Session, cfg *Config) *Game {
	size := s.Size()
	return &Game{
		cfg:      cfg,
		session:  s,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(),
		hud:      ui.NewHUD(),
		stepper:  core.NewFixedStep(cfg.Rate),
		fps:      core.NewFPSMonitor(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := g.cfg.Populate(g.session, seed); err != nil {
		log.Printf("[ca] reset failed: %v", err)
	}
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.SetPaused(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleUnderCursor()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if g.tickOnce {
		g.session.Step()
		g.tickOnce = false
	} else if g.stepper.ShouldStep() {
		g.session.Advance()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.fps.Record(time.Now())
	f := g.session.Frame()
	g.painter.Blit(screen, f, g.onColor, g.offColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, int(f.Width), int(f.Height), g.scale)
	}
	g.hud.Draw(screen, ui.Status{Frame: f, FPS: g.fps.Report(), Rate: g.stepper.Rate()})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W * g.scale, s.H * g.scale
}

func (g *Game) toggleUnderCursor() {
	x, y := ebiten.CursorPosition()
	row, col, ok := render.CellAt(x, y, g.scale, g.session.Frame())
	if !ok {
		return
	}
	if err := g.session.Toggle(row, col); err != nil {
		log.Printf("[ca] toggle (%d,%d): %v", row, col, err)
	}
}
