package term

import (
	"strings"

	"bitlife/internal/session"

	"github.com/logrusorgru/aurora"
)

var cropNotice = aurora.Red("The grid is larger than the viewing area").BgBlack().String()

// RenderField draws the frame as text, one character per cell, cropped to
// maxW x maxH. When cropping is needed the last visible row is replaced
// by a notice.
func RenderField(f session.Frame, maxW, maxH int, live, dead string) string {
	if maxW <= 0 || maxH <= 0 {
		return ""
	}
	crop := int(f.Width) > maxW || int(f.Height) > maxH
	rows := min(int(f.Height), maxH)
	cols := min(int(f.Width), maxW)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		if crop && row == rows-1 {
			b.WriteString(cropNotice)
			break
		}
		for col := 0; col < cols; col++ {
			if f.Alive(uint32(row), uint32(col)) {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}
