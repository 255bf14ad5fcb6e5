package life

import (
	"fmt"
	"sort"
)

// Pattern is a named seeding template. Cells are offsets from the
// pattern's top-left corner.
type Pattern struct {
	Name  string
	Descr string
	Cells []Location
}

var patterns = map[string]Pattern{
	"glider": {
		Name:  "glider",
		Descr: "travels one cell diagonally every four generations",
		Cells: []Location{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	},
	"block": {
		Name:  "block",
		Descr: "2x2 still life",
		Cells: []Location{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	"blinker": {
		Name:  "blinker",
		Descr: "period 2 oscillator",
		Cells: []Location{{0, 0}, {0, 1}, {0, 2}},
	},
	"beacon": {
		Name:  "beacon",
		Descr: "period 2 oscillator made of two blocks",
		Cells: []Location{{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}},
	},
	"r-pentomino": {
		Name:  "r-pentomino",
		Descr: "methuselah that stabilizes after 1103 generations",
		Cells: []Location{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}},
	},
}

// LookupPattern returns the named pattern.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the built-in patterns in alphabetical order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the bounding box of the pattern.
func (p Pattern) Size() (rows, columns uint32) {
	for _, c := range p.Cells {
		if c.Row+1 > rows {
			rows = c.Row + 1
		}
		if c.Column+1 > columns {
			columns = c.Column + 1
		}
	}
	return rows, columns
}

// At translates the pattern so its top-left corner sits at (row, column)
// on a width x height torus. Cells past the far edges wrap around.
func (p Pattern) At(row, column, width, height uint32) []Location {
	locs := make([]Location, len(p.Cells))
	for i, c := range p.Cells {
		locs[i] = Location{
			Row:    uint32((uint64(row) + uint64(c.Row)) % uint64(height)),
			Column: uint32((uint64(column) + uint64(c.Column)) % uint64(width)),
		}
	}
	return locs
}

// Place seeds the named pattern with its top-left corner at (row, column).
// The anchor must be inside the grid; the rest of the pattern wraps.
func (u *Universe) Place(name string, row, column uint32) error {
	p, ok := LookupPattern(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	if err := u.checkBounds(row, column); err != nil {
		return err
	}
	return u.SetCells(p.At(row, column, u.width, u.height)...)
}
