// Package envmap provides background environments sampled by ray
// direction: a vertical color gradient and an equirectangular image.
package envmap

import (
	"github.com/golang/geo/r3"

	"github.com/go-render/whitted-raytracer/pkg/core"
)

// Gradient is a vertical color gradient keyed on ray elevation. Rays
// pointing straight down sample Bottom, rays pointing straight up Top.
type Gradient struct {
	Top    core.Color
	Bottom core.Color
}

// NewGradient creates a gradient environment.
func NewGradient(top, bottom core.Color) *Gradient {
	return &Gradient{Top: top, Bottom: bottom}
}

// Sample maps the direction's Y from [-1, 1] to [0, 1] and interpolates
// between the bottom and top colors.
func (g *Gradient) Sample(dir r3.Vector) core.Color {
	t := 0.5 * (dir.Normalize().Y + 1.0)
	return g.Bottom.Lerp(g.Top, t)
}
