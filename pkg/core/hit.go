package core

import "github.com/golang/geo/r3"

// HitRecord captures a ray-surface intersection. Normal is the geometric
// outward normal, unit length; shading and refraction resolve which side
// the ray is on from sign tests. T is the distance along the unit ray
// direction from the ray origin.
type HitRecord struct {
	Point    r3.Vector
	Normal   r3.Vector
	T        float64
	Material *Material
}
