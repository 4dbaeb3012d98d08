package core

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Light is a point light with uniform intensity and no distance falloff.
type Light struct {
	Position  r3.Vector
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position r3.Vector, intensity float64) Light {
	return Light{Position: position, Intensity: intensity}
}

// Validate reports the first invalid light parameter.
func (l Light) Validate() error {
	if l.Intensity < 0 || !isFinite(l.Intensity) {
		return fmt.Errorf("intensity must be a non-negative finite number, got %v", l.Intensity)
	}
	if !isFiniteVec(l.Position) {
		return fmt.Errorf("position must be finite, got %v", l.Position)
	}
	return nil
}
