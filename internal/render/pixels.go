package render

import (
	"image/color"

	"bitlife/internal/session"
)

// fillFrameRGBA expands the packed cells of f into RGBA pixels in buf,
// one pixel per cell in row-major order.
func fillFrameRGBA(buf []byte, f session.Frame, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	n := f.Cells()
	for i := 0; i < n; i++ {
		base := i * 4
		if f.Words[i>>6]&(1<<(uint(i)&63)) != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a point in scaled screen space to a grid cell. Points past
// the grid are clamped to the last row or column.
func CellAt(x, y, scale int, f session.Frame) (row, column uint32, ok bool) {
	if scale <= 0 || x < 0 || y < 0 || f.Width == 0 || f.Height == 0 {
		return 0, 0, false
	}
	row = uint32(min(y/scale, int(f.Height)-1))
	column = uint32(min(x/scale, int(f.Width)-1))
	return row, column, true
}
