package material

import (
	"math"

	"github.com/mglsk/go-sphere-tracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract. The medium is assumed non-absorptive, so the
// attenuation is always white.
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Whether the ray is entering or exiting the surface is read from the
// sign of direction·normal, since hit normals follow the signed sphere
// radius rather than facing the incoming ray. The reflect/refract
// choice is stochastic with the Schlick reflectance as probability;
// total internal reflection forces the reflect branch.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64

	if rayIn.Direction.Dot(hit.Normal) > 0 {
		// Exiting the material (from glass to air)
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		c := rayIn.Direction.Dot(hit.Normal) / rayIn.Direction.Length()
		cosine = math.Sqrt(1.0 - d.RefractiveIndex*d.RefractiveIndex*(1.0-c*c))
	} else {
		// Entering the material (from air to glass)
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -rayIn.Direction.Dot(hit.Normal) / rayIn.Direction.Length()
	}

	refracted, canRefract := Refract(rayIn.Direction, outwardNormal, niOverNt)

	reflectProb := 1.0
	if canRefract {
		reflectProb = Reflectance(cosine, d.RefractiveIndex)
	}

	var direction core.Vec3
	if sampler.Get1D() < reflectProb {
		direction = Reflect(rayIn.Direction, hit.Normal)
	} else {
		direction = refracted
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// Refract attempts Snell's-law refraction of v through a surface with
// the given outward normal. The boolean is false under total internal
// reflection (non-positive discriminant).
func Refract(v, normal core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(normal)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := uv.Subtract(normal.Multiply(dt)).Multiply(niOverNt).
		Subtract(normal.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's
// approximation: r0 + (1-r0)*(1-cosine)^5 with r0 = ((1-n)/(1+n))²
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
