package core

import "fmt"

// Albedo weight indices for the four shading terms.
const (
	AlbedoDiffuse = iota
	AlbedoSpecular
	AlbedoReflect
	AlbedoRefract
)

// Material describes how a surface responds to light. The four albedo
// weights blend the diffuse, specular, reflected and refracted terms; they
// need not sum to one, and a weight of zero disables its term. Materials
// are immutable after construction and shared between shapes by pointer.
type Material struct {
	Diffuse          Color
	Albedo           [4]float64
	SpecularExponent float64
	RefractiveIndex  float64
}

// NewMaterial creates a new material
func NewMaterial(diffuse Color, albedo [4]float64, specularExponent, refractiveIndex float64) *Material {
	return &Material{
		Diffuse:          diffuse,
		Albedo:           albedo,
		SpecularExponent: specularExponent,
		RefractiveIndex:  refractiveIndex,
	}
}

// Validate reports the first invalid material parameter.
func (m *Material) Validate() error {
	for i, a := range m.Albedo {
		if a < 0 || !isFinite(a) {
			return fmt.Errorf("albedo[%d] must be a non-negative finite number, got %v", i, a)
		}
	}
	if m.SpecularExponent < 0 || !isFinite(m.SpecularExponent) {
		return fmt.Errorf("specular exponent must be a non-negative finite number, got %v", m.SpecularExponent)
	}
	if m.RefractiveIndex <= 0 || !isFinite(m.RefractiveIndex) {
		return fmt.Errorf("refractive index must be a positive finite number, got %v", m.RefractiveIndex)
	}
	return nil
}
