package material

import (
	"github.com/mglsk/go-sphere-tracer/pkg/core"
)

// Emissive represents a diffuse light-emitting material
type Emissive struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements the Material interface for emissive materials.
// Emissive materials absorb all incoming rays; they only emit.
func (e *Emissive) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emitted light for this material, independent of the
// incoming ray.
func (e *Emissive) Emit(rayIn core.Ray) core.Vec3 {
	return e.Emission
}
