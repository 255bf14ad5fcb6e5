// Package session serializes host access to a single Universe and keeps the
// bookkeeping hosts need around it: generation counter and pause state.
package session

import (
	"sync"

	"bitlife/pkg/core"
	"bitlife/pkg/life"
)

// Frame is an immutable snapshot of a universe taken between mutations.
type Frame struct {
	Width      uint32
	Height     uint32
	Generation uint64
	Live       uint
	Paused     bool
	Words      []uint64
}

// Alive reports whether the cell at (row, column) was alive in the frame.
// Coordinates outside the frame report false.
func (f Frame) Alive(row, column uint32) bool {
	if row >= f.Height || column >= f.Width {
		return false
	}
	i := uint64(row)*uint64(f.Width) + uint64(column)
	return f.Words[i/64]&(1<<(i%64)) != 0
}

// Cells returns the number of cells in the frame.
func (f Frame) Cells() int { return int(f.Width) * int(f.Height) }

// Session guards one Universe with a mutex.
type Session struct {
	mu         sync.Mutex
	u          *life.Universe
	generation uint64
	paused     bool
}

// New wraps u. The session takes ownership; callers must not use u directly afterwards.
func New(u *life.Universe) *Session {
	return &Session{u: u}
}

// Advance ticks once unless the session is paused, and reports whether it did.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused {
		return false
	}
	s.tick()
	return true
}

// Step ticks once regardless of the pause state.
func (s *Session) Step() {
	s.mu.Lock()
	s.tick()
	s.mu.Unlock()
}

// Toggle flips a single cell.
func (s *Session) Toggle(row, column uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u.ToggleCell(row, column)
}

// Seed marks every location alive.
func (s *Session) Seed(locs ...life.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u.SetCells(locs...)
}

// Place seeds a named pattern anchored at (row, column).
func (s *Session) Place(pattern string, row, column uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u.Place(pattern, row, column)
}

// Randomize reseeds every cell from src and restarts the generation count.
func (s *Session) Randomize(src core.BoolSource) {
	s.mu.Lock()
	s.u.Randomize(src)
	s.generation = 0
	s.mu.Unlock()
}

// Clear kills every cell and restarts the generation count.
func (s *Session) Clear() {
	s.mu.Lock()
	s.u.Clear()
	s.generation = 0
	s.mu.Unlock()
}

// Resize changes the grid dimensions, clearing it.
func (s *Session) Resize(width, height uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.u.Resize(width, height); err != nil {
		return err
	}
	s.generation = 0
	return nil
}

// SetPaused pauses or resumes Advance.
func (s *Session) SetPaused(paused bool) {
	s.mu.Lock()
	s.paused = paused
	s.mu.Unlock()
}

// TogglePause flips the pause state and returns the new value.
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
	return s.paused
}

// Paused reports whether Advance is currently a no-op.
func (s *Session) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Size returns the current grid dimensions.
func (s *Session) Size() core.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u.Size()
}

// Frame snapshots the current state.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	words := s.u.Cells()
	return Frame{
		Width:      s.u.Width(),
		Height:     s.u.Height(),
		Generation: s.generation,
		Live:       s.u.LiveCount(),
		Paused:     s.paused,
		Words:      append([]uint64(nil), words...),
	}
}

// String renders the current grid as text.
func (s *Session) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u.String()
}

func (s *Session) tick() {
	s.u.Tick()
	s.generation++
}
