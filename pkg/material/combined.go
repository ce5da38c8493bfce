package material

import (
	"github.com/mglsk/go-sphere-tracer/pkg/core"
)

// Combined composes the scattering behavior of one material with the
// emission behavior of another, so a single surface can both reflect
// light (e.g., as a metal) and emit its own. Both references are
// shared: many shapes may point at the same underlying materials.
type Combined struct {
	Scatterer Material
	Emitter   Material
}

// NewCombined creates a material that scatters like scatterer and
// emits like emitter.
func NewCombined(scatterer, emitter Material) *Combined {
	return &Combined{Scatterer: scatterer, Emitter: emitter}
}

// Scatter delegates to the scatterer reference
func (c *Combined) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return c.Scatterer.Scatter(rayIn, hit, sampler)
}

// Emit delegates to the emitter reference. A non-emissive emitter
// contributes nothing.
func (c *Combined) Emit(rayIn core.Ray) core.Vec3 {
	if emitter, ok := c.Emitter.(Emitter); ok {
		return emitter.Emit(rayIn)
	}
	return core.Vec3{}
}
