// Package grid holds the geometry of the monochrome display.
package grid

const (
	Width  = 64
	Height = 32
	Cells  = Width * Height
)

// GetGridCoords converts a row-major cell index into (x, y) for a grid of cols columns.
func GetGridCoords(index, cols int) (x, y int) {
	return index % cols, index / cols
}

// Index returns the row-major cell index of (x, y) on the display.
func Index(x, y int) int {
	return x + y*Width
}

// Wrap folds (x, y) back onto the display.
func Wrap(x, y int) (int, int) {
	return mod(x, Width), mod(y, Height)
}

// InBounds reports whether (x, y) lies on the display.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
