package geometry

import (
	"math"

	"github.com/mglsk/go-sphere-tracer/pkg/core"
	"github.com/mglsk/go-sphere-tracer/pkg/material"
)

// Sphere represents a sphere shape. The radius is signed: a negative
// radius keeps the same surface but flips the normal to point inward,
// which is how a hollow shell (e.g., a glass bubble) is built by
// pairing a positive-radius sphere with a negative-radius one at the
// same center. A zero radius degenerates the intersection arithmetic
// and is not guarded against.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects the sphere within (tMin, tMax).
// Solves a·t² + 2b·t + c = 0 with b = oc·d, preferring the smaller
// root.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - a*c
	if discriminant <= 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-b + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	return &material.HitRecord{
		T:     root,
		Point: point,
		// Dividing by the signed radius flips the normal inward for
		// negative-radius shells
		Normal:   point.Subtract(s.Center).Divide(s.Radius),
		Material: s.Material,
	}, true
}
