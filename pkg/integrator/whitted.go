package integrator

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/go-render/whitted-raytracer/pkg/core"
	"github.com/go-render/whitted-raytracer/pkg/scene"
)

// DefaultMaxDepth bounds the specular recursion. Four bounces matches the
// classic Whitted setup and keeps mutually reflective scenes finite.
const DefaultMaxDepth = 4

// Whitted implements recursive Whitted-style ray tracing: direct lighting
// with shadows plus single-branch reflection and refraction recursion.
type Whitted struct {
	scene    *scene.Scene
	maxDepth int
}

// NewWhitted creates a new Whitted integrator. A non-positive maxDepth
// selects DefaultMaxDepth.
func NewWhitted(s *scene.Scene, maxDepth int) *Whitted {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Whitted{scene: s, maxDepth: maxDepth}
}

// RayColor computes the color seen along a ray. Primary rays are traced
// at depth 0; each reflection and refraction recurses one level deeper
// until the depth cap returns the background.
func (w *Whitted) RayColor(ray core.Ray, depth int) core.Color {
	if depth > w.maxDepth {
		return w.scene.BackgroundAt(ray.Direction)
	}

	hit, isHit := w.scene.Intersect(ray)
	if !isHit {
		return w.scene.BackgroundAt(ray.Direction)
	}

	reflectDir := core.Reflect(ray.Direction, hit.Normal).Normalize()
	reflectRay := core.NewRay(offsetOrigin(hit.Point, hit.Normal, reflectDir), reflectDir)
	reflectColor := w.RayColor(reflectRay, depth+1)

	var refractColor core.Color
	if refractDir, ok := core.Refract(ray.Direction, hit.Normal, hit.Material.RefractiveIndex); ok {
		refractDir = refractDir.Normalize()
		refractRay := core.NewRay(offsetOrigin(hit.Point, hit.Normal, refractDir), refractDir)
		refractColor = w.RayColor(refractRay, depth+1)
	} else {
		// Total internal reflection: everything the transmitted ray would
		// have carried goes out along the mirror direction instead.
		refractColor = reflectColor
	}

	diffuse, specular := w.directLighting(ray, hit)

	albedo := hit.Material.Albedo
	return hit.Material.Diffuse.Scale(diffuse * albedo[core.AlbedoDiffuse]).
		Add(core.White.Scale(specular * albedo[core.AlbedoSpecular])).
		Add(reflectColor.Scale(albedo[core.AlbedoReflect])).
		Add(refractColor.Scale(albedo[core.AlbedoRefract]))
}

// directLighting accumulates the Phong diffuse and specular intensities
// over all lights that are not shadowed at the hit point.
func (w *Whitted) directLighting(ray core.Ray, hit *core.HitRecord) (diffuse, specular float64) {
	for _, light := range w.scene.Lights {
		toLight := light.Position.Sub(hit.Point)
		lightDist := toLight.Norm()
		lightDir := toLight.Normalize()

		// A hit between the point and the light leaves this light dark;
		// other lights still contribute.
		shadowRay := core.NewRay(offsetOrigin(hit.Point, hit.Normal, lightDir), lightDir)
		if shadowHit, blocked := w.scene.Intersect(shadowRay); blocked && shadowHit.T < lightDist {
			continue
		}

		diffuse += light.Intensity * math.Max(0, lightDir.Dot(hit.Normal))
		specular += light.Intensity * math.Pow(
			math.Max(0, core.Reflect(lightDir, hit.Normal).Dot(ray.Direction)),
			hit.Material.SpecularExponent)
	}
	return diffuse, specular
}

// offsetOrigin nudges a secondary ray origin off the surface on the side
// its direction leaves through, preventing immediate self-intersection.
func offsetOrigin(point, normal, dir r3.Vector) r3.Vector {
	if dir.Dot(normal) < 0 {
		return point.Sub(normal.Mul(core.Epsilon))
	}
	return point.Add(normal.Mul(core.Epsilon))
}
