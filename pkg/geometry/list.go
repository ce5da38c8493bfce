package geometry

import (
	"github.com/mglsk/go-sphere-tracer/pkg/core"
	"github.com/mglsk/go-sphere-tracer/pkg/material"
)

// List is an ordered collection of shapes that is itself a Shape, so
// scenes compose recursively. Intersection is a linear scan over the
// children; there is no acceleration structure.
type List struct {
	Shapes []Shape
}

// NewList creates a list from the given shapes
func NewList(shapes ...Shape) *List {
	return &List{Shapes: shapes}
}

// Add appends shapes to the list
func (l *List) Add(shapes ...Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Hit scans the children in order and returns the closest hit across
// the whole subtree. tMax narrows to the current closest parameter
// after each improvement, so later children cannot override with
// farther intersections.
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
