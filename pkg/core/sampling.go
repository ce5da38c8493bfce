package core

import "math/rand"

// Sampler provides random values for rendering algorithms.
// Can be swapped out for deterministic testing.
type Sampler interface {
	Get1D() float64
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// RandomInUnitSphere generates a uniform random point inside the unit
// sphere by rejection sampling: draw from the [-1,1]³ cube until the
// point falls inside the sphere (about 2.03 draws on average).
//
// This is the only interior-sphere sampling method used in this
// codebase. Materials share it so their noise characteristics stay
// comparable.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := Vec3{
			X: 2*sampler.Get1D() - 1,
			Y: 2*sampler.Get1D() - 1,
			Z: 2*sampler.Get1D() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk generates a uniform random point in the unit disk on
// the z=0 plane, by the same rejection technique restricted to 2D.
// Used for thin-lens aperture sampling.
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := Vec3{
			X: 2*sampler.Get1D() - 1,
			Y: 2*sampler.Get1D() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
