package envmap

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/golang/geo/r3"
	"github.com/nfnt/resize"

	"github.com/go-render/whitted-raytracer/pkg/core"
)

// maxWidth caps environment texture width; wider images are downscaled
// on load so lookups stay cache-friendly.
const maxWidth = 2048

// Image is an equirectangular environment texture sampled by direction.
type Image struct {
	width, height int
	pixels        []core.Color
}

// Open loads an environment texture from an image file.
func Open(path string) (*Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open environment map: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image into an environment texture,
// downscaling anything wider than maxWidth while keeping its aspect.
func FromImage(img image.Image) *Image {
	if img.Bounds().Dx() > maxWidth {
		img = resize.Resize(maxWidth, 0, img, resize.Bilinear)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Color, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}
	return &Image{width: width, height: height, pixels: pixels}
}

// Width returns the texture width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the texture height in pixels.
func (m *Image) Height() int { return m.height }

// Sample looks up the texel in the given direction using the standard
// equirectangular mapping: longitude maps to u, polar angle to v, with
// the top row of the image at the zenith.
func (m *Image) Sample(dir r3.Vector) core.Color {
	unit := dir.Normalize()

	u := 0.5 + math.Atan2(unit.Z, unit.X)/(2*math.Pi)
	v := math.Acos(clamp(unit.Y, -1, 1)) / math.Pi

	x := int(u * float64(m.width))
	if x < 0 {
		x = 0
	} else if x >= m.width {
		x = m.width - 1
	}
	y := int(v * float64(m.height))
	if y < 0 {
		y = 0
	} else if y >= m.height {
		y = m.height - 1
	}

	return m.pixels[y*m.width+x]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
