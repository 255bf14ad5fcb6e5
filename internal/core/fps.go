package core

import (
	"math"
	"time"
)

// fpsWindow is how many recent frames feed the aggregate figures.
const fpsWindow = 100

// FPSReport summarizes recent frame rates.
type FPSReport struct {
	Latest float64
	Avg    float64
	Min    float64
	Max    float64
}

// FPSMonitor tracks instantaneous frame rates from frame timestamps.
type FPSMonitor struct {
	frames []float64
	next   int
	last   time.Time
	latest float64
}

// NewFPSMonitor returns an empty monitor.
func NewFPSMonitor() *FPSMonitor {
	return &FPSMonitor{frames: make([]float64, 0, fpsWindow)}
}

// Record registers a frame rendered at now.
func (m *FPSMonitor) Record(now time.Time) {
	if m.last.IsZero() {
		m.last = now
		return
	}
	delta := now.Sub(m.last)
	m.last = now
	if delta <= 0 {
		return
	}
	fps := float64(time.Second) / float64(delta)
	m.latest = fps
	if len(m.frames) < fpsWindow {
		m.frames = append(m.frames, fps)
		return
	}
	m.frames[m.next] = fps
	m.next = (m.next + 1) % fpsWindow
}

// Report returns the latest rate and aggregates over the window.
// All fields are zero until two frames have been recorded.
func (m *FPSMonitor) Report() FPSReport {
	if len(m.frames) == 0 {
		return FPSReport{}
	}
	r := FPSReport{Latest: m.latest, Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, f := range m.frames {
		sum += f
		r.Min = math.Min(r.Min, f)
		r.Max = math.Max(r.Max, f)
	}
	r.Avg = sum / float64(len(m.frames))
	return r
}
