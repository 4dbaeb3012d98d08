package scene

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/go-render/whitted-raytracer/pkg/core"
	"github.com/go-render/whitted-raytracer/pkg/geometry"
)

// ErrInvalidParameter is wrapped by every scene construction failure, so
// callers can test for the class with errors.Is.
var ErrInvalidParameter = errors.New("invalid scene parameter")

// Scene contains all the elements needed for rendering. It is built once
// and read-only afterwards; rendering may share it across goroutines.
type Scene struct {
	Shapes      []geometry.Shape
	Lights      []core.Light
	Background  core.Color
	Environment core.Environment
}

// New validates every shape and light and assembles them into a scene.
// Construction is all-or-nothing: the first invalid parameter aborts it.
func New(shapes []geometry.Shape, lights []core.Light, opts ...Option) (*Scene, error) {
	for i, shape := range shapes {
		if shape == nil {
			return nil, fmt.Errorf("%w: shape %d is nil", ErrInvalidParameter, i)
		}
		if err := shape.Validate(); err != nil {
			return nil, fmt.Errorf("%w: shape %d: %v", ErrInvalidParameter, i, err)
		}
	}
	for i, light := range lights {
		if err := light.Validate(); err != nil {
			return nil, fmt.Errorf("%w: light %d: %v", ErrInvalidParameter, i, err)
		}
	}

	s := &Scene{Shapes: shapes, Lights: lights}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Intersect finds the nearest hit along the ray within the render cutoff.
// Shapes are scanned in scene order; a later shape must come strictly
// closer than an earlier hit to replace it.
func (s *Scene) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := core.MaxDistance

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, core.Epsilon, closestSoFar); isHit {
			if closest == nil || hit.T < closest.T {
				closest = hit
				closestSoFar = hit.T
			}
		}
	}

	return closest, closest != nil
}

// BackgroundAt returns the background color seen along a direction,
// sampling the environment when one is set.
func (s *Scene) BackgroundAt(dir r3.Vector) core.Color {
	if s.Environment != nil {
		return s.Environment.Sample(dir)
	}
	return s.Background
}
