package core

import "math/rand"

// Logger is the minimal logging seam the scheduler and CLI depend on;
// concrete implementations (the stdlib log-backed default, or a test
// no-op) live outside this package to keep core free of logging
// dependencies.
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord describes a ray-primitive intersection. The stored normal
// always faces the incoming ray (see SetFaceNormal).
type HitRecord struct {
	Point     Vec3
	Normal    Vec3
	T         float64
	U, V      float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal against the incoming ray direction and
// records whether the hit was on the geometric front face.
func (h *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is any primitive or aggregate (including BVH nodes) that can be
// intersected and bounded.
type Shape interface {
	Hit(r Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() Aabb
}

// ScatterResult is what a material's Scatter returns: the outgoing ray,
// its attenuation (already divided by the sampling PDF) and the PDF value
// used, plus the lobe tag the integrator routes the contribution into.
type ScatterResult struct {
	Scattered   Ray
	Attenuation Color
	PDF         float64
	Lobe        Lobe
}

// IsSpecular reports a delta-distribution scatter (no meaningful PDF to
// divide by — e.g. a mirror reflection or a pure refraction event).
func (s ScatterResult) IsSpecular() bool { return s.PDF <= 0 }

// Lobe tags which aux buffer a contribution belongs in.
type Lobe int

const (
	LobeNone Lobe = iota
	LobeDiffuse
	LobeSpecular
)

// Material is a tagged-variant surface response: Principled or Emissive,
// dispatched via this single interface rather than an open hierarchy.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, lights []Light, rnd *rand.Rand) (ScatterResult, bool)
	Emit(hit HitRecord) Color
}

// LightSample is the result of sampling a point on a light from a shading
// point: the direction toward it, the distance, and the solid-angle PDF
// of having chosen that direction.
type LightSample struct {
	Direction Vec3
	Distance  float64
	Emission  Color
	PDF       float64
}

// Light is any emissive primitive the light sampler can select and query.
type Light interface {
	Shape
	Area() float64
	Centroid() Vec3
	// SamplePoint draws a uniformly distributed point on the light's
	// surface given two independent U(0,1) samples.
	SamplePoint(s, t float64) Vec3
	Normal() Vec3
	Emission() Color
}
