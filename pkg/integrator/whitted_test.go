package integrator

import (
	"math"
	"testing"

	"github.com/go-render/whitted-raytracer/pkg/core"
	"github.com/go-render/whitted-raytracer/pkg/geometry"
	"github.com/go-render/whitted-raytracer/pkg/scene"
)

func colorsClose(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance
}

func mustScene(t *testing.T, shapes []geometry.Shape, lights []core.Light, opts ...scene.Option) *scene.Scene {
	t.Helper()
	s, err := scene.New(shapes, lights, opts...)
	if err != nil {
		t.Fatalf("Unexpected scene construction error: %v", err)
	}
	return s
}

func TestWhitted_RayColor_MissReturnsBackground(t *testing.T) {
	background := core.NewColor(0.2, 0.7, 0.8)
	s := mustScene(t,
		[]geometry.Shape{geometry.NewSphere(core.V(0, 0, -10), 2,
			core.NewMaterial(core.NewColor(0.9, 0.1, 0.1), [4]float64{0.9, 0.1, 0, 0}, 10, 1.0))},
		[]core.Light{core.NewLight(core.V(0, 10, 0), 1.5)},
		scene.WithBackground(background))
	w := NewWhitted(s, 0)

	// Straight up, far away from the sphere.
	got := w.RayColor(core.NewRay(core.V(0, 0, 0), core.V(0, 1, 0)), 0)
	if got != background {
		t.Errorf("Expected background %v, got %v", background, got)
	}
}

func TestWhitted_RayColor_EmptySceneIsBackground(t *testing.T) {
	background := core.NewColor(0.2, 0.7, 0.8)
	s := mustScene(t, nil, nil, scene.WithBackground(background))
	w := NewWhitted(s, 0)

	directions := []struct{ x, y, z float64 }{
		{0, 0, -1}, {0.3, -0.2, -1}, {0, 1, 0},
	}
	for _, d := range directions {
		ray := core.NewRay(core.V(0, 0, 0), core.V(d.x, d.y, d.z).Normalize())
		if got := w.RayColor(ray, 0); got != background {
			t.Errorf("Expected background %v along %v, got %v", background, ray.Direction, got)
		}
	}
}

func TestWhitted_RayColor_DepthCapReturnsBackground(t *testing.T) {
	background := core.NewColor(0.2, 0.7, 0.8)
	s := mustScene(t,
		[]geometry.Shape{geometry.NewSphere(core.V(0, 0, -10), 2,
			core.NewMaterial(core.NewColor(0.9, 0.1, 0.1), [4]float64{0.9, 0.1, 0, 0}, 10, 1.0))},
		[]core.Light{core.NewLight(core.V(0, 10, 0), 1.5)},
		scene.WithBackground(background))
	w := NewWhitted(s, 4)

	// The ray would hit the sphere, but the depth cap fires first.
	ray := core.NewRay(core.V(0, 0, 0), core.V(0, 0, -1))
	if got := w.RayColor(ray, 5); got != background {
		t.Errorf("Expected background at exceeded depth, got %v", got)
	}
}

func TestWhitted_RayColor_HeadOnRedSphere(t *testing.T) {
	s, err := scene.NewMinimalScene()
	if err != nil {
		t.Fatalf("Unexpected scene construction error: %v", err)
	}
	w := NewWhitted(s, 0)

	got := w.RayColor(core.NewRay(core.V(0, 0, 0), core.V(0, 0, -1)), 0)

	if got.R <= got.G || got.R <= got.B {
		t.Errorf("Expected red-dominant color, got %v", got)
	}
	if got.R < 0.5 {
		t.Errorf("Expected a strongly lit red channel, got %v", got)
	}
	// Reflection and refraction weights are zero, so green and blue carry
	// only the weak diffuse and specular remainder.
	if got.G > 0.2 || got.B > 0.2 {
		t.Errorf("Expected near-zero secondary channels, got %v", got)
	}
}

func TestWhitted_RayColor_ShadowZeroesContribution(t *testing.T) {
	red := core.NewMaterial(core.NewColor(0.9, 0.1, 0.1), [4]float64{0.9, 0.1, 0, 0}, 10, 1.0)
	target := geometry.NewSphere(core.V(0, 0, -10), 2, red)
	light := core.NewLight(core.V(0, 0, 10), 1.5)
	ray := core.NewRay(core.V(0, -5, 0), core.V(0, 0.5, -1).Normalize())

	lit := mustScene(t, []geometry.Shape{target}, []core.Light{light})
	litColor := NewWhitted(lit, 0).RayColor(ray, 0)
	if litColor == core.Black {
		t.Fatal("Expected the unoccluded light to illuminate the sphere")
	}

	// The occluder sits between the hit point and the light.
	occluder := geometry.NewSphere(core.V(0, 0, 0), 1, red)
	shadowed := mustScene(t, []geometry.Shape{target, occluder}, []core.Light{light})
	shadowColor := NewWhitted(shadowed, 0).RayColor(ray, 0)

	if shadowColor != core.Black {
		t.Errorf("Expected exactly black for the fully shadowed point, got %v", shadowColor)
	}
}

func TestWhitted_RayColor_SecondLightUnaffectedByShadow(t *testing.T) {
	red := core.NewMaterial(core.NewColor(0.9, 0.1, 0.1), [4]float64{0.9, 0.1, 0, 0}, 10, 1.0)
	target := geometry.NewSphere(core.V(0, 0, -10), 2, red)
	occluder := geometry.NewSphere(core.V(0, 0, 0), 1, red)
	blocked := core.NewLight(core.V(0, 0, 10), 1.5)
	clear := core.NewLight(core.V(0, -30, 10), 1.5)
	ray := core.NewRay(core.V(0, -5, 0), core.V(0, 0.5, -1).Normalize())

	// Only the clear light, no occluder.
	clearOnly := mustScene(t, []geometry.Shape{target}, []core.Light{clear})
	clearColor := NewWhitted(clearOnly, 0).RayColor(ray, 0)
	if clearColor == core.Black {
		t.Fatal("Expected the clear light to illuminate the hit point")
	}

	// Both lights with the occluder blocking one of them.
	both := mustScene(t, []geometry.Shape{target, occluder}, []core.Light{blocked, clear})
	bothColor := NewWhitted(both, 0).RayColor(ray, 0)

	if !colorsClose(clearColor, bothColor, 1e-9) {
		t.Errorf("Expected the clear light's contribution %v to be unaffected, got %v", clearColor, bothColor)
	}
}

func TestWhitted_RayColor_RefractiveIndexOnePassesThrough(t *testing.T) {
	background := core.NewColor(0.2, 0.7, 0.8)
	// Optically neutral sphere that only transmits.
	neutral := core.NewMaterial(core.NewColor(1, 1, 1), [4]float64{0, 0, 0, 1}, 0, 1.0)
	s := mustScene(t,
		[]geometry.Shape{geometry.NewSphere(core.V(0, 0, -10), 2, neutral)},
		[]core.Light{core.NewLight(core.V(0, 10, 0), 1.5)},
		scene.WithBackground(background))
	w := NewWhitted(s, 0)

	got := w.RayColor(core.NewRay(core.V(0, 0, 0), core.V(0, 0, -1)), 0)
	if !colorsClose(got, background, 1e-12) {
		t.Errorf("Expected the undeviated ray to return background %v, got %v", background, got)
	}
}

func TestWhitted_RayColor_MirrorReflectsBackground(t *testing.T) {
	background := core.NewColor(0.2, 0.7, 0.8)
	mirror := core.NewMaterial(core.NewColor(1, 1, 1), [4]float64{0, 0, 0.8, 0}, 1425, 1.0)
	s := mustScene(t,
		[]geometry.Shape{geometry.NewSphere(core.V(0, 0, -10), 2, mirror)},
		nil,
		scene.WithBackground(background))
	w := NewWhitted(s, 0)

	// Head-on, the reflected ray goes straight back and misses everything.
	got := w.RayColor(core.NewRay(core.V(0, 0, 0), core.V(0, 0, -1)), 0)
	expected := background.Scale(0.8)
	if !colorsClose(got, expected, 1e-12) {
		t.Errorf("Expected mirrored background %v, got %v", expected, got)
	}
}

func TestWhitted_RayColor_MirrorSeesOtherSphere(t *testing.T) {
	mirror := core.NewMaterial(core.NewColor(1, 1, 1), [4]float64{0, 0, 1, 0}, 1425, 1.0)
	red := core.NewMaterial(core.NewColor(0.9, 0.1, 0.1), [4]float64{0.9, 0.1, 0, 0}, 10, 1.0)
	s := mustScene(t,
		[]geometry.Shape{
			geometry.NewSphere(core.V(0, 0, -10), 2, mirror),
			geometry.NewSphere(core.V(0, 0, 20), 2, red),
		},
		[]core.Light{core.NewLight(core.V(0, 10, 5), 2.0)},
		scene.WithBackground(core.NewColor(0, 0, 0)))
	w := NewWhitted(s, 0)

	// The reflected ray runs back along +Z into the red sphere.
	got := w.RayColor(core.NewRay(core.V(0, 0, 0), core.V(0, 0, -1)), 0)
	if got.R <= got.G || got.R <= got.B || got.R < 0.1 {
		t.Errorf("Expected the mirror to show the red sphere, got %v", got)
	}
}

func TestWhitted_RayColor_TotalInternalReflection(t *testing.T) {
	// A glass floor hit from below past the critical angle. Refraction and
	// reflection weights are swapped between the two variants; under total
	// internal reflection both must produce the same color.
	background := core.NewColor(0.2, 0.7, 0.8)
	light := core.NewLight(core.V(0, 10, 0), 1.5)
	ray := core.NewRay(core.V(0, -5, 0), core.V(1, 0.1, 0).Normalize())

	trace := func(albedo [4]float64) core.Color {
		glass := core.NewMaterial(core.NewColor(0.6, 0.7, 0.8), albedo, 125, 1.5)
		floor := geometry.NewCheckerPlane(-2, -100, 100, -100, 100, glass, glass)
		s := mustScene(t, []geometry.Shape{floor}, []core.Light{light}, scene.WithBackground(background))
		return NewWhitted(s, 0).RayColor(ray, 0)
	}

	reflectHeavy := trace([4]float64{0.4, 0.1, 0.8, 0.0})
	refractHeavy := trace([4]float64{0.4, 0.1, 0.0, 0.8})

	if !colorsClose(reflectHeavy, refractHeavy, 1e-12) {
		t.Errorf("Expected identical colors under total internal reflection, got %v and %v",
			reflectHeavy, refractHeavy)
	}
	if colorsClose(reflectHeavy, background, 1e-3) {
		t.Error("Expected the glass floor to shade the ray, not fall through to background")
	}
}

func TestWhitted_RayColor_TerminatesBetweenMirrors(t *testing.T) {
	mirror := core.NewMaterial(core.NewColor(1, 1, 1), [4]float64{0, 0, 1, 0}, 1425, 1.0)
	s := mustScene(t,
		[]geometry.Shape{
			geometry.NewSphere(core.V(0, 0, -10), 2, mirror),
			geometry.NewSphere(core.V(0, 0, 10), 2, mirror),
		},
		nil,
		scene.WithBackground(core.NewColor(0.2, 0.7, 0.8)))
	w := NewWhitted(s, 0)

	got := w.RayColor(core.NewRay(core.V(0, 0, 0), core.V(0, 0, -1)), 0)

	for _, channel := range []float64{got.R, got.G, got.B} {
		if math.IsNaN(channel) || math.IsInf(channel, 0) {
			t.Fatalf("Expected a finite color between facing mirrors, got %v", got)
		}
	}
}
