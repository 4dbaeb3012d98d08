package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-render/whitted-raytracer/pkg/core"
	"github.com/go-render/whitted-raytracer/pkg/geometry"
)

// sceneFile is the on-disk JSON scene format. Materials are declared once
// under a name and referenced by spheres and the floor.
type sceneFile struct {
	Background *[3]float64             `json:"background"`
	Materials  map[string]materialFile `json:"materials"`
	Spheres    []sphereFile            `json:"spheres"`
	Lights     []lightFile             `json:"lights"`
	Floor      *floorFile              `json:"floor"`
}

type materialFile struct {
	Diffuse          [3]float64 `json:"diffuse"`
	Albedo           [4]float64 `json:"albedo"`
	SpecularExponent float64    `json:"specularExponent"`
	RefractiveIndex  *float64   `json:"refractiveIndex"` // defaults to 1.0
}

type sphereFile struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

type lightFile struct {
	Position  [3]float64 `json:"position"`
	Intensity float64    `json:"intensity"`
}

type floorFile struct {
	Height float64 `json:"height"`
	XMin   float64 `json:"xmin"`
	XMax   float64 `json:"xmax"`
	ZMin   float64 `json:"zmin"`
	ZMax   float64 `json:"zmax"`
	Even   string  `json:"even"`
	Odd    string  `json:"odd"`
}

// Load parses a JSON scene description and builds the scene through New,
// so every loaded parameter passes the same validation as programmatic
// construction. Options are applied after the file's background, letting
// callers override it.
func Load(data []byte, opts ...Option) (*Scene, error) {
	var file sceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %v", err)
	}

	materials := make(map[string]*core.Material, len(file.Materials))
	for name, m := range file.Materials {
		ior := 1.0
		if m.RefractiveIndex != nil {
			ior = *m.RefractiveIndex
		}
		materials[name] = core.NewMaterial(
			core.NewColor(m.Diffuse[0], m.Diffuse[1], m.Diffuse[2]),
			m.Albedo,
			m.SpecularExponent,
			ior,
		)
	}

	lookup := func(name string) (*core.Material, error) {
		material, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown material %q", ErrInvalidParameter, name)
		}
		return material, nil
	}

	shapes := make([]geometry.Shape, 0, len(file.Spheres)+1)
	for _, sph := range file.Spheres {
		material, err := lookup(sph.Material)
		if err != nil {
			return nil, err
		}
		center := core.V(sph.Center[0], sph.Center[1], sph.Center[2])
		shapes = append(shapes, geometry.NewSphere(center, sph.Radius, material))
	}

	if f := file.Floor; f != nil {
		even, err := lookup(f.Even)
		if err != nil {
			return nil, err
		}
		odd, err := lookup(f.Odd)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, geometry.NewCheckerPlane(f.Height, f.XMin, f.XMax, f.ZMin, f.ZMax, even, odd))
	}

	lights := make([]core.Light, 0, len(file.Lights))
	for _, l := range file.Lights {
		position := core.V(l.Position[0], l.Position[1], l.Position[2])
		lights = append(lights, core.NewLight(position, l.Intensity))
	}

	var allOpts []Option
	if file.Background != nil {
		bg := core.NewColor(file.Background[0], file.Background[1], file.Background[2])
		allOpts = append(allOpts, WithBackground(bg))
	}
	allOpts = append(allOpts, opts...)

	return New(shapes, lights, allOpts...)
}

// LoadFile reads and parses a JSON scene file from disk.
func LoadFile(path string, opts ...Option) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %v", err)
	}
	return Load(data, opts...)
}
