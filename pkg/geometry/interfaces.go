package geometry

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/go-render/whitted-raytracer/pkg/core"
)

// Shape interface for objects that can be hit by rays. Hit expects a unit
// ray direction and reports intersections with tMin <= t <= tMax only.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)
	Validate() error
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isFiniteVec(v r3.Vector) bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}
