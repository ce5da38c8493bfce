package scene

import (
	"github.com/mglsk/go-sphere-tracer/pkg/core"
	"github.com/mglsk/go-sphere-tracer/pkg/geometry"
	"github.com/mglsk/go-sphere-tracer/pkg/integrator"
	"github.com/mglsk/go-sphere-tracer/pkg/material"
	"github.com/mglsk/go-sphere-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering: the camera,
// the world geometry, and a background. Scenes are assembled before
// rendering starts and never mutated afterwards, so they are shared
// read-only across all render workers.
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.List
	Background     integrator.Background
	SamplingConfig renderer.SamplingConfig
}

// NewScene creates an empty scene with the given camera config and
// background
func NewScene(cameraConfig renderer.CameraConfig, background integrator.Background) *Scene {
	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          geometry.NewList(),
		Background:     background,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetBackground implements renderer.Scene
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}

// AddSphere adds a sphere to the scene's world list
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.World.Add(geometry.NewSphere(center, radius, mat))
}
