package scene

import (
	"github.com/mglsk/go-sphere-tracer/pkg/core"
	"github.com/mglsk/go-sphere-tracer/pkg/integrator"
	"github.com/mglsk/go-sphere-tracer/pkg/material"
	"github.com/mglsk/go-sphere-tracer/pkg/renderer"
)

// NewDefaultScene creates the classic four-sphere scene: a blue diffuse
// sphere in the center, a large yellow ground sphere, a gold metal
// sphere, and a hollow glass bubble built from a glass sphere paired
// with a negative-radius inner shell sharing the same material.
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(3, 3, 2),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   3.0 / 2.0,
		Aperture:      0.0, // Pinhole; focus distance auto-calculated
		FocusDistance: 0.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, integrator.NewSkyGradient())

	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianYellow := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)
	glass := material.NewDielectric(1.5)

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100.0, lambertianYellow)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, metalGold)

	// Hollow glass bubble: the inner sphere's negative radius flips its
	// normal inward
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	s.AddSphere(core.NewVec3(-1, 0, -1), -0.40, glass)

	return s
}
