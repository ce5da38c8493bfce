package renderer

import (
	"math"

	"github.com/mglsk/go-sphere-tracer/pkg/core"
)

// CameraConfig contains camera configuration parameters. Values are
// validated by the caller, not re-checked here.
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look from)
	LookAt        core.Vec3 // Point the camera is aimed at
	Up            core.Vec3 // Up reference vector
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Focal plane distance; 0 = distance to LookAt
}

// MergeCameraConfig merges override values into a base config. Only
// non-zero override fields replace the base.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if !override.Center.Equals(core.Vec3{}) {
		merged.Center = override.Center
	}
	if !override.LookAt.Equals(core.Vec3{}) {
		merged.LookAt = override.LookAt
	}
	if !override.Up.Equals(core.Vec3{}) {
		merged.Up = override.Up
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		merged.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		merged.FocusDistance = override.FocusDistance
	}
	return merged
}

// Camera generates primary rays with a thin-lens model. With a zero
// aperture it collapses to a pinhole camera.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from a config. The viewport corner and
// span vectors are scaled by the focus distance so the image plane sits
// at the focal plane, which is what makes aperture blur geometrically
// correct.
func NewCamera(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	// Orthonormal camera basis
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDistance),
		vertical:        v.Multiply(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for fractional pixel coordinates (s, t) in
// [0,1]. With a positive aperture the ray origin is offset to a random
// point on the lens disk and aimed so the focal plane stays sharp.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
		origin = origin.Add(offset)
	}

	return core.NewRay(origin, target.Subtract(origin))
}
