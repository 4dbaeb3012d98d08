package scene

import (
	"github.com/go-render/whitted-raytracer/pkg/core"
	"github.com/go-render/whitted-raytracer/pkg/geometry"
)

// DefaultBackground is the sky color used by the built-in scenes.
var DefaultBackground = core.NewColor(0.2, 0.7, 0.8)

// NewDefaultScene creates the canonical demo scene: four spheres over a
// checkerboard floor, lit by three point lights.
func NewDefaultScene(opts ...Option) (*Scene, error) {
	ivory := core.NewMaterial(core.NewColor(0.4, 0.4, 0.3), [4]float64{0.6, 0.3, 0.1, 0.0}, 50, 1.0)
	glass := core.NewMaterial(core.NewColor(0.6, 0.7, 0.8), [4]float64{0.0, 0.5, 0.1, 0.8}, 125, 1.5)
	redRubber := core.NewMaterial(core.NewColor(0.3, 0.1, 0.1), [4]float64{0.9, 0.1, 0.0, 0.0}, 10, 1.0)
	mirror := core.NewMaterial(core.NewColor(1.0, 1.0, 1.0), [4]float64{0.0, 10.0, 0.8, 0.0}, 1425, 1.0)

	floorEven := core.NewMaterial(core.NewColor(0.3, 0.2, 0.1), [4]float64{1, 0, 0, 0}, 0, 1.0)
	floorOdd := core.NewMaterial(core.NewColor(0.3, 0.3, 0.3), [4]float64{1, 0, 0, 0}, 0, 1.0)

	shapes := []geometry.Shape{
		geometry.NewSphere(core.V(-3, 0, -16), 2, ivory),
		geometry.NewSphere(core.V(-1, -1.5, -12), 2, glass),
		geometry.NewSphere(core.V(1.5, -0.5, -18), 3, redRubber),
		geometry.NewSphere(core.V(7, 5, -18), 4, mirror),
		geometry.NewCheckerPlane(-4, -10, 10, -30, -10, floorEven, floorOdd),
	}

	lights := []core.Light{
		core.NewLight(core.V(-20, 20, 20), 1.5),
		core.NewLight(core.V(30, 50, -25), 1.8),
		core.NewLight(core.V(30, 20, 30), 1.7),
	}

	return New(shapes, lights, append([]Option{WithBackground(DefaultBackground)}, opts...)...)
}

// NewMinimalScene creates a single diffuse red sphere under one light,
// useful for quick renders and end-to-end tests.
func NewMinimalScene(opts ...Option) (*Scene, error) {
	red := core.NewMaterial(core.NewColor(0.9, 0.1, 0.1), [4]float64{0.9, 0.1, 0, 0}, 10, 1.0)

	shapes := []geometry.Shape{
		geometry.NewSphere(core.V(0, 0, -10), 2, red),
	}
	lights := []core.Light{
		core.NewLight(core.V(0, 10, 0), 1.5),
	}

	return New(shapes, lights, append([]Option{WithBackground(DefaultBackground)}, opts...)...)
}
