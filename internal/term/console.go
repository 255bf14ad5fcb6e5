// Package term is an interactive terminal host built on gocui.
package term

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"bitlife/internal/core"
	"bitlife/internal/session"
	pkgcore "bitlife/pkg/core"
	"bitlife/pkg/life"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	fieldView  = "field"
	statusView = "status"
	helpView   = "help"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI renders a session in the terminal and maps keys to commands.
type ConsoleUI struct {
	s        *session.Session
	g        *gocui.Gui
	k        []keyBinding
	interval time.Duration
	newSeed  func() int64

	fpsMu sync.Mutex
	fps   *core.FPSMonitor

	liveFiller string
	deadFiller string
}

// NewConsoleUI creates the terminal UI. The session starts paused and,
// once running, advances every interval.
func NewConsoleUI(s *session.Session, interval time.Duration) (*ConsoleUI, error) {
	t := &ConsoleUI{
		s:          s,
		interval:   interval,
		newSeed:    func() int64 { return time.Now().UnixNano() },
		fps:        core.NewFPSMonitor(),
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}
	s.SetPaused(true)

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	t.g = g
	t.g.Mouse = true
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Randomize", t.cmdRandomize, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, fieldView},
	}
	t.g.SetManagerFunc(t.layout)
	if err := t.initKeyBindings(); err != nil {
		t.g.Close()
		return nil, err
	}
	return t, nil
}

// Start runs the UI until the user quits.
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	done := make(chan struct{})
	defer close(done)
	go t.loop(done)

	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (t *ConsoleUI) initKeyBindings() error {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return fmt.Errorf("term: bind %s: %w", kb.name, err)
		}
	}
	return nil
}

func (t *ConsoleUI) loop(done <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			if t.s.Advance() {
				t.fpsMu.Lock()
				t.fps.Record(now)
				t.fpsMu.Unlock()
				t.refresh()
			}
		}
	}
}

// refresh schedules a redraw; gocui requires Update when called off the main loop.
func (t *ConsoleUI) refresh() {
	t.g.Update(func(g *gocui.Gui) error {
		t.render(g)
		return nil
	})
}

func (t *ConsoleUI) render(g *gocui.Gui) {
	f := t.s.Frame()
	if v, err := g.View(fieldView); err == nil {
		v.Clear()
		maxW, maxH := v.Size()
		_, _ = fmt.Fprint(v, RenderField(f, maxW, maxH, t.liveFiller, t.deadFiller))
	}
	if v, err := g.View(statusView); err == nil {
		t.fpsMu.Lock()
		report := t.fps.Report()
		t.fpsMu.Unlock()
		mode := aurora.Colorize("running", aurora.CyanFg).String()
		if f.Paused {
			mode = aurora.Colorize("waiting", aurora.BlueFg).String()
		}
		v.Clear()
		_, _ = fmt.Fprintln(v, renderProp("Dimension", "%v x %v", f.Width, f.Height))
		_, _ = fmt.Fprintln(v, renderProp("Interval", "%v", t.interval))
		_, _ = fmt.Fprintln(v, renderProp("Generation", "%v", f.Generation))
		_, _ = fmt.Fprintln(v, renderProp("Live Cells", "%v", f.Live))
		_, _ = fmt.Fprintln(v, renderProp("Rate", "%.1f gen/s", report.Avg))
		_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", mode))
	}
}

func renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28

	if v, err := g.SetView(statusView, 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView(fieldView, leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Universe"
		v.Frame = true
	}

	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	t.render(g)
	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	t.s.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.s.SetPaused(false)
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.s.SetPaused(true)
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.s.Clear()
	return nil
}

func (t *ConsoleUI) cmdRandomize(_ *gocui.View) error {
	t.s.Randomize(pkgcore.NewRNG(t.newSeed()))
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	if cx < 0 || cy < 0 {
		return nil
	}
	// Clicks past the grid edge are ignored.
	if err := t.s.Toggle(uint32(cy), uint32(cx)); err != nil && !errors.Is(err, life.ErrOutOfRange) {
		return err
	}
	return nil
}
