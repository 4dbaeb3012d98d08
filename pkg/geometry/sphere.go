package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/go-render/whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   r3.Vector
	Radius   float64
	Material *core.Material
}

// NewSphere creates a new sphere
func NewSphere(center r3.Vector, radius float64, material *core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere using the geometric
// solution: project the center onto the ray, then step half the chord
// back and forth from the projection.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Sub(ray.Origin)

	// Distance along the ray to the closest approach to the center
	tca := oc.Dot(ray.Direction)

	// Squared distance from the center to the ray
	d2 := oc.Dot(oc) - tca*tca
	radius2 := s.Radius * s.Radius
	if d2 > radius2 {
		return nil, false
	}

	// Half-chord length; the ray enters at t0 and leaves at t1
	thc := math.Sqrt(radius2 - d2)
	t := tca - thc
	if t < tMin {
		// Origin is inside or just behind the surface; take the exit point
		t = tca + thc
	}
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	return &core.HitRecord{
		Point:    point,
		Normal:   point.Sub(s.Center).Normalize(),
		T:        t,
		Material: s.Material,
	}, true
}

// Validate reports the first invalid sphere parameter.
func (s *Sphere) Validate() error {
	if s.Radius <= 0 || !isFinite(s.Radius) {
		return fmt.Errorf("radius must be a positive finite number, got %v", s.Radius)
	}
	if !isFiniteVec(s.Center) {
		return fmt.Errorf("center must be finite, got %v", s.Center)
	}
	if s.Material == nil {
		return fmt.Errorf("material must not be nil")
	}
	return s.Material.Validate()
}
