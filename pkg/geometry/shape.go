package geometry

import (
	"github.com/mglsk/go-sphere-tracer/pkg/core"
	"github.com/mglsk/go-sphere-tracer/pkg/material"
)

// Shape interface for objects that can be hit by rays. The closed set
// of implementations is Sphere and List.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
