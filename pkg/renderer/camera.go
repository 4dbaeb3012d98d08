package renderer

import (
	"math"

	"github.com/go-render/whitted-raytracer/pkg/core"
)

// Camera generates primary rays for a pinhole camera fixed at the origin
// looking down -Z.
type Camera struct {
	width, height int
	scale         float64
	aspectRatio   float64
}

// NewCamera creates a camera from a vertical field of view in radians and
// the output dimensions in pixels.
func NewCamera(fov float64, width, height int) *Camera {
	return &Camera{
		width:       width,
		height:      height,
		scale:       math.Tan(fov / 2),
		aspectRatio: float64(width) / float64(height),
	}
}

// Ray builds the primary ray through the center of pixel (x, y).
// Pixel (0, 0) is the top-left corner; y grows downward on screen.
func (c *Camera) Ray(x, y int) core.Ray {
	dx := (2*(float64(x)+0.5)/float64(c.width) - 1) * c.scale * c.aspectRatio
	dy := -(2*(float64(y)+0.5)/float64(c.height) - 1) * c.scale
	return core.NewRay(core.V(0, 0, 0), core.V(dx, dy, -1).Normalize())
}
