package geometry

import (
	"math"
	"math/rand"

	"github.com/krrud/pathtracer-go/internal/core"
)

// DirectionalLight is a supplemented feature (SPEC_FULL.md Supplemented
// Features): spec §6 lists directional lights as scene input but the
// distillation does not describe their radiance contribution in detail.
// Grounded on original_source/src/lights.rs's DirectionalLight.
type DirectionalLight struct {
	Direction core.Vec3 // points from the scene toward the light
	Color     core.Vec3
	Intensity float64
	Softness  float64
}

func NewDirectionalLight(direction, color core.Vec3, intensity, softness float64) *DirectionalLight {
	return &DirectionalLight{Direction: direction.Normalize(), Color: color, Intensity: intensity, Softness: softness}
}

// Irradiance returns this light's contribution at a shading point with the
// given normal and view direction (pointing from the shading point toward
// the viewer), gated by lobe: LobeDiffuse returns the Lambertian term,
// LobeSpecular a narrow glossy term, LobeNone both summed.
func (d *DirectionalLight) Irradiance(normal, viewDir core.Vec3, roughness float64, lobe core.Lobe) core.Color {
	cosTheta := normal.Dot(d.Direction)
	if cosTheta <= 0 {
		return core.Black()
	}
	radiance := d.Color.Scale(d.Intensity)

	diffuse := radiance.Scale(cosTheta)
	var specular core.Vec3
	reflectDir := d.Direction.Negate().Reflect(normal)
	cosAlpha := math.Max(0, viewDir.Dot(reflectDir))
	if cosAlpha > 0 && roughness < 1 {
		specular = radiance.Scale(5 * math.Pow(cosAlpha, math.Max(roughness, 1e-3)))
	}

	switch lobe {
	case core.LobeDiffuse:
		return core.ColorFromRGB(diffuse, 1)
	case core.LobeSpecular:
		return core.ColorFromRGB(specular, 1)
	default:
		return core.ColorFromRGB(diffuse.Add(specular), 1)
	}
}

// Shadowed casts a soft shadow ray from point against world, jittering the
// light direction by Softness/10 of a random unit vector, per
// original_source's DirectionalLight::shadow.
func (d *DirectionalLight) Shadowed(point core.Vec3, world core.Shape, rnd *rand.Rand) bool {
	jitter := core.RandomUnitVector(rnd).Scale(d.Softness / 10)
	dir := d.Direction.Add(jitter).Normalize()
	r := core.NewRay(point, dir, 0)
	_, hit := world.Hit(r, 1e-4, math.Inf(1))
	return hit
}
