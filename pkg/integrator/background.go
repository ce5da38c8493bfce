package integrator

import (
	"github.com/mglsk/go-sphere-tracer/pkg/core"
)

// Background supplies the radiance for rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// GradientBackground is a vertical sky gradient between a bottom and a
// top color, driven by the y component of the ray direction.
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewSkyGradient returns the classic white-to-blue sky gradient
func NewSkyGradient() GradientBackground {
	return GradientBackground{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color interpolates between the bottom and top colors
func (g GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}

// SolidBackground is a constant background, typically black for scenes
// lit only by emissive surfaces.
type SolidBackground struct {
	Emission core.Vec3
}

// Color returns the constant background color
func (s SolidBackground) Color(ray core.Ray) core.Vec3 {
	return s.Emission
}
