package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/go-render/whitted-raytracer/pkg/core"
)

// Framebuffer is a fixed-size pixel grid. The render loop writes each
// pixel exactly once and never reads one back during a render.
type Framebuffer struct {
	width, height int
	pixels        []core.Color
}

// NewFramebuffer creates a framebuffer with every pixel black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Set stores the color of pixel (x, y).
func (f *Framebuffer) Set(x, y int, c core.Color) {
	f.pixels[y*f.width+x] = c
}

// At returns the color of pixel (x, y).
func (f *Framebuffer) At(x, y int) core.Color {
	return f.pixels[y*f.width+x]
}

// Image converts the framebuffer to an 8-bit RGBA image.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			img.SetRGBA(x, y, f.At(x, y).RGBA8())
		}
	}
	return img
}

// WritePPM writes the framebuffer as a binary P6 PPM: the text header
// followed by three bytes per pixel in row-major order.
func (f *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", f.width, f.height); err != nil {
		return err
	}
	for _, c := range f.pixels {
		rgba := c.RGBA8()
		if _, err := bw.Write([]byte{rgba.R, rgba.G, rgba.B}); err != nil {
			return err
		}
	}
	return bw.Flush()
}
