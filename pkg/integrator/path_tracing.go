package integrator

import (
	"math"

	"github.com/mglsk/go-sphere-tracer/pkg/core"
	"github.com/mglsk/go-sphere-tracer/pkg/geometry"
	"github.com/mglsk/go-sphere-tracer/pkg/material"
)

// Epsilon excludes self-intersection at the origin of a scattered ray
const Epsilon = 0.001

// DefaultMaxDepth is the default bounce cap for a light path
const DefaultMaxDepth = 50

// PathTracer computes radiance along camera rays by following each
// path until it is absorbed, escapes to the background, or reaches the
// bounce cap.
type PathTracer struct {
	MaxDepth   int
	Background Background
}

// NewPathTracer creates a path tracer with the given bounce cap and
// background. A non-positive maxDepth falls back to the default.
func NewPathTracer(maxDepth int, background Background) *PathTracer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracer{MaxDepth: maxDepth, Background: background}
}

// RayColor returns the color for a single camera ray.
//
// The transport loop is iterative rather than recursive: it carries the
// path throughput (the running attenuation product) and the emission
// accumulated at earlier bounces, and performs at most MaxDepth+1
// intersection tests per call.
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	emitted := core.Vec3{}

	for bounce := 0; ; bounce++ {
		hit, isHit := world.Hit(ray, Epsilon, math.MaxFloat64)
		if !isHit {
			background := pt.Background.Color(ray)
			return emitted.Add(throughput.MultiplyVec(background))
		}

		// Beyond the depth cap the hit is treated as fully absorbed
		if bounce >= pt.MaxDepth {
			return emitted
		}

		emission := emittedLight(ray, hit)

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return emitted.Add(throughput.MultiplyVec(emission))
		}

		emitted = emitted.Add(throughput.MultiplyVec(emission))
		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}

// emittedLight returns the emitted light from a material if it is
// emissive
func emittedLight(ray core.Ray, hit *material.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emit(ray)
	}
	return core.Vec3{}
}
