package material

import (
	"testing"

	"github.com/mglsk/go-sphere-tracer/pkg/core"
)

func TestEmissive_AbsorbsAndEmits(t *testing.T) {
	emission := core.NewVec3(4, 3, 2)
	emissive := NewEmissive(emission)
	sampler := seededSampler(42)

	rayIn := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit := HitRecord{Point: core.NewVec3(0, 0, 1), Normal: core.NewVec3(0, 0, 1)}

	if _, didScatter := emissive.Scatter(rayIn, hit, sampler); didScatter {
		t.Error("Emissive materials should never scatter")
	}

	// Emission is independent of the incoming ray
	otherRay := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(-1, -1, -1))
	if !emissive.Emit(rayIn).Equals(emission) || !emissive.Emit(otherRay).Equals(emission) {
		t.Errorf("Expected constant emission %v", emission)
	}
}

func TestCombined_DelegatesScatterAndEmit(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)
	glow := NewEmissive(core.NewVec3(0.5, 0.1, 0.1))
	combined := NewCombined(metal, glow)

	rayIn := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit := HitRecord{Point: core.NewVec3(0, 0, 1), Normal: core.NewVec3(0, 0, 1)}

	// Scattering matches the scatterer exactly (fuzz 0 is deterministic)
	fromCombined, okCombined := combined.Scatter(rayIn, hit, seededSampler(42))
	fromMetal, okMetal := metal.Scatter(rayIn, hit, seededSampler(42))
	if okCombined != okMetal {
		t.Fatalf("Combined scatter decision %t should match scatterer %t", okCombined, okMetal)
	}
	if !fromCombined.Attenuation.Equals(fromMetal.Attenuation) ||
		!fromCombined.Scattered.Direction.Equals(fromMetal.Scattered.Direction) {
		t.Error("Combined should delegate scattering to its scatterer reference")
	}

	if !combined.Emit(rayIn).Equals(glow.Emission) {
		t.Errorf("Combined should delegate emission, expected %v, got %v", glow.Emission, combined.Emit(rayIn))
	}
}

func TestCombined_NonEmissiveEmitter(t *testing.T) {
	// Pairing with a non-emitting material yields zero emission
	combined := NewCombined(
		NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
		NewLambertian(core.NewVec3(0.9, 0.9, 0.9)),
	)

	rayIn := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if !combined.Emit(rayIn).Equals(core.Vec3{}) {
		t.Error("Combined with a non-emissive emitter should emit nothing")
	}
}

func TestCombined_SharedReferences(t *testing.T) {
	// Many combined materials may share the same underlying materials
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.1)
	glow := NewEmissive(core.NewVec3(1, 1, 1))

	a := NewCombined(metal, glow)
	b := NewCombined(metal, glow)

	if a.Scatterer != b.Scatterer || a.Emitter != b.Emitter {
		t.Error("Combined materials should share references, not copies")
	}
}
