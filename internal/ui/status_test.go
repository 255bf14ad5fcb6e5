package ui

import (
	"strings"
	"testing"

	"bitlife/internal/core"
	"bitlife/internal/session"
)

func TestStatusLines(t *testing.T) {
	s := Status{
		Frame: session.Frame{Width: 64, Height: 32, Generation: 12, Live: 100, Paused: true},
		FPS:   core.FPSReport{Latest: 59.6, Avg: 60, Min: 58, Max: 61},
		Rate:  10,
	}
	lines := s.Lines()
	want := []string{
		"gen 12  paused",
		"live 100/2048",
		"64x32  10 gen/s",
		"fps 60 (avg 60 min 58 max 61)",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	s.Frame.Paused = false
	if !strings.HasSuffix(s.Lines()[0], "running") {
		t.Fatalf("line 0 = %q, want running mode", s.Lines()[0])
	}
}
