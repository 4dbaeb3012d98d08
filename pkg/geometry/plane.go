package geometry

import (
	"fmt"
	"math"

	"github.com/go-render/whitted-raytracer/pkg/core"
)

// CheckerPlane represents a bounded horizontal plane at y = Height with a
// checkerboard of two materials, alternating per 2x2 world-unit cell.
type CheckerPlane struct {
	Height     float64
	XMin, XMax float64
	ZMin, ZMax float64
	Even, Odd  *core.Material
}

// NewCheckerPlane creates a new checkerboard plane
func NewCheckerPlane(height, xMin, xMax, zMin, zMax float64, even, odd *core.Material) *CheckerPlane {
	return &CheckerPlane{
		Height: height,
		XMin:   xMin,
		XMax:   xMax,
		ZMin:   zMin,
		ZMax:   zMax,
		Even:   even,
		Odd:    odd,
	}
}

// Hit tests if a ray intersects with the plane inside its extent
func (p *CheckerPlane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Rays running parallel to the plane never intersect it
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil, false
	}

	t := (p.Height - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	if point.X < p.XMin || point.X > p.XMax || point.Z < p.ZMin || point.Z > p.ZMax {
		return nil, false
	}

	// Cell parity; the +1000 keeps the truncation uniform for negative x
	material := p.Even
	if (int(0.5*point.X+1000)+int(0.5*point.Z))&1 == 1 {
		material = p.Odd
	}

	return &core.HitRecord{
		Point:    point,
		Normal:   core.V(0, 1, 0),
		T:        t,
		Material: material,
	}, true
}

// Validate reports the first invalid plane parameter.
func (p *CheckerPlane) Validate() error {
	if !isFinite(p.Height) {
		return fmt.Errorf("height must be finite, got %v", p.Height)
	}
	if !isFinite(p.XMin) || !isFinite(p.XMax) || p.XMin >= p.XMax {
		return fmt.Errorf("x extent must be a finite non-empty range, got [%v, %v]", p.XMin, p.XMax)
	}
	if !isFinite(p.ZMin) || !isFinite(p.ZMax) || p.ZMin >= p.ZMax {
		return fmt.Errorf("z extent must be a finite non-empty range, got [%v, %v]", p.ZMin, p.ZMax)
	}
	if p.Even == nil || p.Odd == nil {
		return fmt.Errorf("both checker materials must be set")
	}
	if err := p.Even.Validate(); err != nil {
		return err
	}
	return p.Odd.Validate()
}
