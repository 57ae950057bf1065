package cpu

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"gochip8/pkg/grid"

	"golang.org/x/image/draw"
)

// Palette holds the colours of unlit and lit cells.
type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
}

// DefaultPalette draws green pixels on black.
var DefaultPalette = Palette{
	Background: color.RGBA{A: 0xFF},
	Foreground: color.RGBA{R: 0x00, G: 0xE4, B: 0x30, A: 0xFF},
}

// encodePNG is replaced in tests to simulate a failing encoder.
var encodePNG = png.Encode

// FramebufferImage returns the display as a 64x32 *image.RGBA.
func (c *CPU) FramebufferImage(p Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for i, cell := range c.display {
		col := p.Background
		if cell != 0 {
			col = p.Foreground
		}
		x, y := grid.GetGridCoords(i, grid.Width)
		img.SetRGBA(x, y, col)
	}
	return img
}

// FramebufferRGBA renders the display into a 64x32 RGBA8888 byte slice
// (length 64*32*4).
func (c *CPU) FramebufferRGBA(p Palette) []byte {
	return c.FramebufferImage(p).Pix
}

// SaveScreenshot writes the display as a PNG, upscaled by scale with
// nearest-neighbour sampling.
func (c *CPU) SaveScreenshot(filename string, scale int, p Palette) error {
	if scale < 1 {
		return fmt.Errorf("invalid screenshot scale %d", scale)
	}

	src := c.FramebufferImage(p)
	dst := image.NewRGBA(image.Rect(0, 0, grid.Width*scale, grid.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := encodePNG(f, dst); err != nil {
		_ = f.Close()
		_ = os.Remove(filename)
		return fmt.Errorf("encoding screenshot: %w", err)
	}
	return f.Close()
}
