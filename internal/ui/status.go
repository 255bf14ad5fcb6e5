package ui

import (
	"fmt"

	"bitlife/internal/core"
	"bitlife/internal/session"
)

// Status is what the HUD shows each frame.
type Status struct {
	Frame session.Frame
	FPS   core.FPSReport
	Rate  int
}

// Lines formats the status for display, one entry per HUD row.
func (s Status) Lines() []string {
	mode := "running"
	if s.Frame.Paused {
		mode = "paused"
	}
	return []string{
		fmt.Sprintf("gen %d  %s", s.Frame.Generation, mode),
		fmt.Sprintf("live %d/%d", s.Frame.Live, s.Frame.Cells()),
		fmt.Sprintf("%dx%d  %d gen/s", s.Frame.Width, s.Frame.Height, s.Rate),
		fmt.Sprintf("fps %.0f (avg %.0f min %.0f max %.0f)", s.FPS.Latest, s.FPS.Avg, s.FPS.Min, s.FPS.Max),
	}
}
