package life

import "strings"

const (
	aliveGlyph = '◼'
	deadGlyph  = '◻'
)

// String renders the grid as text, one line per row.
func (u *Universe) String() string {
	var b strings.Builder
	b.Grow(int(u.height) * (int(u.width)*3 + 1))
	for row := uint32(0); row < u.height; row++ {
		for col := uint32(0); col < u.width; col++ {
			if u.cells.Test(u.index(row, col)) {
				b.WriteRune(aliveGlyph)
			} else {
				b.WriteRune(deadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
