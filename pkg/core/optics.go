package core

import (
	"math"

	"github.com/golang/geo/r3"
)

// Reflect mirrors v about the normal n. Both must be unit length.
func Reflect(v, n r3.Vector) r3.Vector {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract bends the unit direction v through a surface with outward unit
// normal n separating air from a medium with the given refractive index,
// following Snell's law. When v points out of the medium the normal is
// flipped and the indices swapped, so callers never orient n themselves.
// The boolean is false on total internal reflection. An index of 1 returns
// v unchanged.
func Refract(v, n r3.Vector, refractiveIndex float64) (r3.Vector, bool) {
	cosi := -math.Max(-1, math.Min(1, v.Dot(n)))
	etai, etat := 1.0, refractiveIndex
	if cosi < 0 {
		// Exiting the medium.
		cosi = -cosi
		etai, etat = etat, etai
		n = n.Mul(-1)
	}
	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return r3.Vector{}, false
	}
	return v.Mul(eta).Add(n.Mul(eta*cosi - math.Sqrt(k))), true
}
