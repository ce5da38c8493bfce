package material

import (
	"github.com/mglsk/go-sphere-tracer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter returns the continuation of a light path at a hit point.
	// The boolean is false when the material absorbs the ray.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emit(rayIn core.Ray) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation applied to the path throughput
}

// HitRecord contains information about a ray-object intersection.
// The normal is the geometric normal (point - center) / radius for
// spheres; its sign follows the sign of the radius, so it is not
// flipped to face the incoming ray. Materials that care about which
// side was hit (Dielectric) inspect the dot product themselves.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit surface normal at intersection
	Material Material  // Material of the hit object
}
