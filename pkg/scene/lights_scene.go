package scene

import (
	"github.com/mglsk/go-sphere-tracer/pkg/core"
	"github.com/mglsk/go-sphere-tracer/pkg/integrator"
	"github.com/mglsk/go-sphere-tracer/pkg/material"
	"github.com/mglsk/go-sphere-tracer/pkg/renderer"
)

// NewLightsScene creates a scene lit entirely by emissive surfaces
// against a black background: a white sphere light above a diffuse
// floor, and a glowing metal sphere whose material combines metallic
// scattering with its own red emission.
func NewLightsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0, 2, 6),
		LookAt:        core.NewVec3(0, 1, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.0,
		FocusDistance: 0.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, integrator.SolidBackground{})

	floor := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	light := material.NewEmissive(core.NewVec3(4, 4, 4))
	glowingMetal := material.NewCombined(
		material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2),
		material.NewEmissive(core.NewVec3(0.6, 0.1, 0.1)),
	)

	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, floor)
	s.AddSphere(core.NewVec3(0, 4, 0), 1.5, light)
	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glowingMetal)
	s.AddSphere(core.NewVec3(-2.2, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.2, 0.4, 0.7)))
	s.AddSphere(core.NewVec3(2.2, 1, 0), 1.0, material.NewDielectric(1.5))

	return s
}
