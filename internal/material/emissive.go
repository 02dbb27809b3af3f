package material

import (
	"math/rand"

	"github.com/krrud/pathtracer-go/internal/core"
)

// Emissive is a pure light-emitting surface: color * intensity^2, the
// deliberate quadratic scaling confirmed in
// original_source/src/material.rs's Light::emit and required by spec §4.3/§9.
type Emissive struct {
	Color     core.Vec3
	Intensity float64
}

func (e *Emissive) Scatter(rayIn core.Ray, hit core.HitRecord, lights []core.Light, rnd *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (e *Emissive) Emit(hit core.HitRecord) core.Color {
	if !hit.FrontFace {
		return core.Black()
	}
	return core.ColorFromRGB(e.Color.Scale(e.Intensity*e.Intensity), 1)
}
