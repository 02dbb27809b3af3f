package material

import (
	"math/rand"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/krrud/pathtracer-go/internal/lighting"
)

// lightSampleDirection and lightPDFValue bridge to internal/lighting so
// the BSDF's light-importance-sampling branches (spec §4.3) and the light
// PDF object (spec §4.4) share one implementation rather than duplicating
// the area/distance^2 selection logic, unlike original_source/material.rs
// and pdf.rs which each reimplement it.
func lightSampleDirection(lights []core.Light, point core.Vec3, rnd *rand.Rand) (core.Vec3, bool) {
	return lighting.Generate(lights, point, rnd)
}

func lightPDFValue(lights []core.Light, point, direction core.Vec3) float64 {
	return lighting.Value(lights, point, direction)
}
