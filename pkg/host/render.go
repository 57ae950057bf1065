package host

import (
	"strings"

	"gochip8/pkg/grid"
)

const (
	// ANSIHome moves the cursor to the top left corner.
	ANSIHome = "\x1b[H"
	// ANSIClear clears the screen and homes the cursor.
	ANSIClear = "\x1b[2J\x1b[H"
	// ANSIHideCursor and ANSIShowCursor toggle cursor visibility.
	ANSIHideCursor = "\x1b[?25l"
	ANSIShowCursor = "\x1b[?25h"
)

// RenderHalfBlocks draws the display as 16 lines of 64 characters, packing
// two display rows into each character cell. Lines end in "\r\n" so the
// output is correct in raw terminal mode.
func RenderHalfBlocks(display [grid.Cells]uint8) string {
	var sb strings.Builder
	sb.Grow(grid.Height / 2 * (grid.Width*3 + 2))

	for y := 0; y < grid.Height; y += 2 {
		for x := 0; x < grid.Width; x++ {
			top := display[grid.Index(x, y)] != 0
			bottom := display[grid.Index(x, y+1)] != 0
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
