// Package lighting implements the light-importance PDF object described in
// spec §4.4: value()/generate() over the scene's shared area-light set,
// grounded on original_source/src/pdf.rs's LightPdf (whose generate()
// logic is also inlined, duplicated, inside material.rs's scatter — this
// package canonicalizes that duplicated algorithm into one shared helper).
package lighting

import (
	"math"
	"math/rand"

	"github.com/krrud/pathtracer-go/internal/core"
)

// Generate chooses a light with probability proportional to
// area/distance^2 (distance to the light's centroid, a cheap proxy for
// solid angle), samples a point uniformly on it, and returns the
// normalized direction from point toward that sample. ok is false when
// there are no lights.
func Generate(lights []core.Light, point core.Vec3, rnd *rand.Rand) (core.Vec3, bool) {
	if len(lights) == 0 {
		return core.Vec3{}, false
	}

	weights := make([]float64, len(lights))
	sumWeight := 0.0
	for i, l := range lights {
		d2 := l.Centroid().Subtract(point).LengthSquared()
		if d2 < 1e-9 {
			d2 = 1e-9
		}
		w := l.Area() / d2
		weights[i] = w
		sumWeight += w
	}
	if sumWeight <= 0 {
		return core.Vec3{}, false
	}

	target := rnd.Float64() * sumWeight
	chosen := lights[len(lights)-1]
	running := 0.0
	for i, w := range weights {
		running += w
		if target <= running {
			chosen = lights[i]
			break
		}
	}

	s, t := rnd.Float64(), rnd.Float64()
	samplePoint := chosen.SamplePoint(s, t)
	return samplePoint.Subtract(point).Normalize(), true
}

// Value returns the solid-angle density of having generated direction from
// point via Generate: cast a ray in that direction against the light set,
// and on a hit return d^2 / (cosTheta * area); on a miss, 0.
func Value(lights []core.Light, point, direction core.Vec3) float64 {
	if len(lights) == 0 {
		return 0
	}
	dir := direction.Normalize()
	ray := core.NewRay(point, dir, 0)

	var bestT = math.Inf(1)
	var bestLight core.Light
	for _, l := range lights {
		if hit, ok := l.Hit(ray, 1e-4, bestT); ok {
			bestT = hit.T
			bestLight = l
		}
	}
	if bestLight == nil {
		return 0
	}

	hit, ok := bestLight.Hit(ray, 1e-4, bestT+1e-6)
	if !ok {
		return 0
	}
	distance := hit.T
	cosTheta := math.Abs(bestLight.Normal().Dot(dir))
	if cosTheta < 1e-6 {
		return 0
	}
	return (distance * distance) / (cosTheta * bestLight.Area())
}
