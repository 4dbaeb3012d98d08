package core

import (
	"image/color"
	"math"
)

// Color is a linear RGB triple. Components may exceed [0, 1] during
// shading; only ToneMapped and RGBA8 clamp.
type Color struct {
	R, G, B float64
}

var (
	// Black is the zero color.
	Black = Color{0, 0, 0}
	// White is full intensity in every channel.
	White = Color{1, 1, 1}
)

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Mul returns the component-wise product of two colors
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Lerp linearly interpolates from c to other by t
func (c Color) Lerp(other Color, t float64) Color {
	return c.Scale(1 - t).Add(other.Scale(t))
}

// MaxComponent returns the largest channel value
func (c Color) MaxComponent() float64 {
	return math.Max(c.R, math.Max(c.G, c.B))
}

// ToneMapped rescales the color so its largest channel is at most 1,
// preserving the channel ratios, then clamps each channel to [0, 1].
func (c Color) ToneMapped() Color {
	if m := c.MaxComponent(); m > 1 {
		c = c.Scale(1 / m)
	}
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// RGBA8 converts the color to 8-bit RGBA with rounding, clamping each
// channel to the displayable range.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
