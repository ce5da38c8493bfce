package geometry

import (
	"math"
	"testing"

	"github.com/mglsk/go-sphere-tracer/pkg/core"
	"github.com/mglsk/go-sphere-tracer/pkg/material"
)

func testMaterial() material.Material {
	return material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
}

func TestSphere_Hit_AxisRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.MaxFloat64)
	if !isHit {
		t.Fatal("Expected hit, got miss")
	}

	if math.Abs(hit.T-4.0) > 1e-12 {
		t.Errorf("Expected t=4, got t=%v", hit.T)
	}
	if !hit.Point.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected hit point (0,0,1), got %v", hit.Point)
	}
	if !hit.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected outward normal (0,0,1), got %v", hit.Normal)
	}
	if hit.Material == nil {
		t.Error("Hit record should carry the sphere's material")
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"parallel beyond radius", core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1)},
		{"pointing away", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)},
		{"tangent", core.NewVec3(1, 0, 5), core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			if hit, isHit := sphere.Hit(ray, 0.001, math.MaxFloat64); isHit {
				t.Errorf("Expected miss, got hit at t=%v", hit.T)
			}
		})
	}
}

func TestSphere_Hit_RangeWindow(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{"both roots in range", 0.001, 100, true, 4.0},
		{"only far root in range", 5.0, 100, true, 6.0},
		{"both roots below range", 7.0, 100, false, 0},
		{"both roots above range", 0.001, 3.0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-12 {
				t.Errorf("Expected t=%v, got t=%v", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_RayFromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.MaxFloat64)
	if !isHit {
		t.Fatal("Expected hit from inside the sphere")
	}
	if math.Abs(hit.T-1.0) > 1e-12 {
		t.Errorf("Expected t=1, got t=%v", hit.T)
	}
	// Geometric normal still points outward; it is not flipped toward
	// the ray
	if !hit.Normal.Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}
}

func TestSphere_Hit_NegativeRadiusFlipsNormal(t *testing.T) {
	outer := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	inner := NewSphere(core.NewVec3(0, 0, 0), -1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	outerHit, ok := outer.Hit(ray, 0.001, math.MaxFloat64)
	if !ok {
		t.Fatal("Expected hit on positive-radius sphere")
	}
	innerHit, ok := inner.Hit(ray, 0.001, math.MaxFloat64)
	if !ok {
		t.Fatal("Expected hit on negative-radius sphere")
	}

	// Same surface, same parameter, opposite normal
	if innerHit.T != outerHit.T {
		t.Errorf("Expected same t, got %v and %v", outerHit.T, innerHit.T)
	}
	if !innerHit.Point.Equals(outerHit.Point) {
		t.Errorf("Expected same hit point, got %v and %v", outerHit.Point, innerHit.Point)
	}
	if !innerHit.Normal.Equals(outerHit.Normal.Negate()) {
		t.Errorf("Expected flipped normal, got %v and %v", outerHit.Normal, innerHit.Normal)
	}
}
