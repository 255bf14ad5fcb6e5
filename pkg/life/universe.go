// Package life implements Conway's Game of Life on a bit-packed torus.
//
// A Universe holds width*height cells in row-major order, one bit per cell.
// The left and right edges are adjacent, as are the top and bottom edges.
// A Universe is not safe for concurrent use; hosts that share one across
// goroutines must serialize access themselves.
package life

import (
	"bitlife/pkg/core"

	"github.com/bits-and-blooms/bitset"
)

const (
	// DefaultWidth is the column count used by New and Default.
	DefaultWidth = 64
	// DefaultHeight is the row count used by New and Default.
	DefaultHeight = 64
)

// Location addresses a single cell.
type Location struct {
	Row    uint32
	Column uint32
}

// Universe implements Conway's Game of Life with toroidal wrapping.
type Universe struct {
	width  uint32
	height uint32
	cells  *bitset.BitSet
	next   *bitset.BitSet
}

// New returns a DefaultWidth x DefaultHeight universe with every cell
// decided by one draw from src.
func New(src core.BoolSource) *Universe {
	u, _ := NewSized(DefaultWidth, DefaultHeight, src)
	return u
}

// Default is New with the process-wide random source.
func Default() *Universe {
	return New(core.Entropy())
}

// NewSized returns a randomly seeded universe with the given dimensions.
func NewSized(width, height uint32, src core.BoolSource) (*Universe, error) {
	u, err := NewEmpty(width, height)
	if err != nil {
		return nil, err
	}
	u.Randomize(src)
	return u, nil
}

// NewEmpty returns a universe of the given dimensions with every cell dead.
func NewEmpty(width, height uint32) (*Universe, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	u := &Universe{}
	u.allocate(width, height)
	return u, nil
}

// Width returns the number of columns.
func (u *Universe) Width() uint32 { return u.width }

// Height returns the number of rows.
func (u *Universe) Height() uint32 { return u.height }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size {
	return core.Size{W: int(u.width), H: int(u.height)}
}

// SetWidth changes the column count. All cells are reset to dead.
func (u *Universe) SetWidth(width uint32) error {
	return u.Resize(width, u.height)
}

// SetHeight changes the row count. All cells are reset to dead.
func (u *Universe) SetHeight(height uint32) error {
	return u.Resize(u.width, height)
}

// Resize changes both dimensions at once. All cells are reset to dead.
// A zero dimension is rejected and leaves the universe untouched.
func (u *Universe) Resize(width, height uint32) error {
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	u.allocate(width, height)
	return nil
}

// ToggleCell flips the cell at (row, column).
func (u *Universe) ToggleCell(row, column uint32) error {
	if err := u.checkBounds(row, column); err != nil {
		return err
	}
	u.cells.Flip(u.index(row, column))
	return nil
}

// SetCells marks every listed cell alive. Unlisted cells keep their state.
// If any location is out of range no cell is changed.
func (u *Universe) SetCells(locs ...Location) error {
	for _, loc := range locs {
		if err := u.checkBounds(loc.Row, loc.Column); err != nil {
			return err
		}
	}
	for _, loc := range locs {
		u.cells.Set(u.index(loc.Row, loc.Column))
	}
	return nil
}

// Cell reports whether the cell at (row, column) is alive.
func (u *Universe) Cell(row, column uint32) (bool, error) {
	if err := u.checkBounds(row, column); err != nil {
		return false, err
	}
	return u.cells.Test(u.index(row, column)), nil
}

// Clear kills every cell.
func (u *Universe) Clear() {
	u.cells.ClearAll()
}

// Randomize assigns every cell from one draw of src each, in row-major order.
func (u *Universe) Randomize(src core.BoolSource) {
	n := u.cells.Len()
	for i := uint(0); i < n; i++ {
		u.cells.SetTo(i, src.Bool())
	}
}

// Tick advances the universe by one generation.
func (u *Universe) Tick() {
	next := u.next
	for row := uint32(0); row < u.height; row++ {
		for col := uint32(0); col < u.width; col++ {
			idx := u.index(row, col)
			alive := u.cells.Test(idx)
			next.SetTo(idx, nextState(alive, u.liveNeighborCount(row, col)))
		}
	}
	u.cells, u.next = next, u.cells
}

// Cells exposes the packed cell words. Cell i is bit i%64 of word i/64.
// The slice aliases internal state: callers must not modify it, and it is
// invalidated by the next Tick or resize.
func (u *Universe) Cells() []uint64 {
	return u.cells.Bytes()
}

// Bits returns a copy of the packed cell set.
func (u *Universe) Bits() *bitset.BitSet {
	return u.cells.Clone()
}

// LiveCount returns the number of live cells.
func (u *Universe) LiveCount() uint {
	return u.cells.Count()
}

// Live returns the locations of all live cells in row-major order.
func (u *Universe) Live() []Location {
	locs := make([]Location, 0, u.cells.Count())
	for i, ok := u.cells.NextSet(0); ok; i, ok = u.cells.NextSet(i + 1) {
		locs = append(locs, Location{
			Row:    uint32(i / uint(u.width)),
			Column: uint32(i % uint(u.width)),
		})
	}
	return locs
}

// Equal reports whether both universes have the same dimensions and cells.
func (u *Universe) Equal(other *Universe) bool {
	if other == nil {
		return false
	}
	return u.width == other.width && u.height == other.height && u.cells.Equal(other.cells)
}

func (u *Universe) allocate(width, height uint32) {
	n := uint(width) * uint(height)
	u.width = width
	u.height = height
	u.cells = bitset.New(n)
	u.next = bitset.New(n)
}

func (u *Universe) index(row, column uint32) uint {
	return uint(row)*uint(u.width) + uint(column)
}

func (u *Universe) liveNeighborCount(row, column uint32) uint8 {
	h, w := uint(u.height), uint(u.width)
	var count uint8
	for _, dr := range [3]uint{h - 1, 0, 1} {
		for _, dc := range [3]uint{w - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (uint(row) + dr) % h
			c := (uint(column) + dc) % w
			if u.cells.Test(r*w + c) {
				count++
			}
		}
	}
	return count
}

// nextState applies B3/S23.
func nextState(alive bool, neighbors uint8) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}
