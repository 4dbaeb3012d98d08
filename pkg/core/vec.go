package core

import (
	"math"

	"github.com/golang/geo/r3"
)

// V is shorthand for building an r3.Vector.
func V(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isFiniteVec(v r3.Vector) bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}
