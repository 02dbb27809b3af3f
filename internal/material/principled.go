// Package material implements the Principled/Emissive tagged-variant
// material model of spec §3/§4.3, grounded on
// original_source/src/material.rs's Principle::scatter — the spec §9
// redesign flag mandates this single-type model over the teacher's
// separate Lambertian/Metal/Dielectric/Emissive structs
// (pkg/material/lambertian.go, dielectric.go, metal.go), which served as
// Scatter/EvaluateBRDF/PDF signature reference and are not part of this
// repository.
package material

import (
	"math"
	"math/rand"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/krrud/pathtracer-go/internal/lighting"
	"github.com/krrud/pathtracer-go/internal/texture"
)

// Principled is the single non-emissive surface model: a stochastic
// mixture of diffuse, specular (dielectric or metallic microfacet) and
// refraction lobes. The diffuse and specular colors may be overridden per
// sample by a texture lookup at the hit UV, and bump/normal textures
// perturb the shading normal; the weights, roughness, IOR, metallic,
// refraction and emission have no texture override.
type Principled struct {
	Diffuse        core.Vec3
	DiffuseWeight  float64
	Specular       core.Vec3
	SpecularWeight float64
	Roughness      float64
	IOR            float64
	Metallic       float64
	Refraction     float64
	Emission       core.Vec3

	DiffuseTexture  texture.Texture
	SpecularTexture texture.Texture
	BumpTexture     texture.Texture
	BumpStrength    float64
	NormalTexture   texture.Texture
	NormalStrength  float64
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// evaluated holds the per-sample resolved parameters after texture
// overrides and clamping.
type evaluated struct {
	diffuse        core.Vec3
	diffuseWeight  float64
	specular       core.Vec3
	specularWeight float64
	roughness      float64
	ior            float64
	metallic       float64
	refraction     float64
	normal         core.Vec3
}

func (p *Principled) evaluate(hit core.HitRecord, rnd *rand.Rand) evaluated {
	e := evaluated{
		diffuse:        p.Diffuse,
		diffuseWeight:  clamp01(p.DiffuseWeight),
		specular:       p.Specular,
		specularWeight: clamp01(p.SpecularWeight),
		roughness:      math.Max(p.Roughness, 1e-3),
		ior:            p.IOR,
		metallic:       p.Metallic,
		refraction:     p.Refraction,
		normal:         hit.Normal,
	}
	if p.DiffuseTexture != nil {
		c := p.DiffuseTexture.Sample(hit.U, hit.V)
		e.diffuse = c.RGB()
	}
	if p.SpecularTexture != nil {
		c := p.SpecularTexture.Sample(hit.U, hit.V)
		e.specular = c.RGB()
	}

	// Bump/normal perturbation, applied before any lobe sampling.
	tangent, bitangent := tangentFrame(e.normal)
	if p.BumpTexture != nil {
		du, dv := p.BumpTexture.Gradient(hit.U, hit.V)
		perturb := tangent.Scale(du * p.BumpStrength).Add(bitangent.Scale(dv * p.BumpStrength))
		e.normal = e.normal.Add(perturb).Normalize()
	}
	if p.NormalTexture != nil {
		c := p.NormalTexture.Sample(hit.U, hit.V)
		mapped := core.Vec3{X: c.R*2 - 1, Y: c.G*2 - 1, Z: c.B*2 - 1}
		world := tangent.Scale(mapped.X).Add(bitangent.Scale(mapped.Y)).Add(e.normal.Scale(mapped.Z))
		e.normal = e.normal.Add(world.Scale(p.NormalStrength)).Normalize()
	}

	// Numerical safeguard: jitter a near-axis-aligned normal to avoid
	// grazing singularities in the GGX/Fresnel math.
	maxAxis := math.Max(math.Abs(e.normal.X), math.Max(math.Abs(e.normal.Y), math.Abs(e.normal.Z)))
	if 1-maxAxis < 0.02 {
		e.normal = e.normal.Add(core.RandomUnitVector(rnd).Scale(e.roughness)).Normalize()
	}
	return e
}

func tangentFrame(n core.Vec3) (tangent, bitangent core.Vec3) {
	onb := core.NewOnb(n)
	return onb.U, onb.V
}

// Emit returns Principled's constant emission color with alpha 1; no
// texture lookup is applied to emission.
func (p *Principled) Emit(hit core.HitRecord) core.Color {
	return core.ColorFromRGB(p.Emission, 1)
}

// Scatter implements spec §4.3's lobe-selection algorithm.
func (p *Principled) Scatter(rayIn core.Ray, hit core.HitRecord, lights []core.Light, rnd *rand.Rand) (core.ScatterResult, bool) {
	e := p.evaluate(hit, rnd)
	normal := e.normal
	viewDir := rayIn.Direction.Normalize().Negate() // points away from the surface, toward the ray origin

	roll := rnd.Float64()
	metal := e.metallic > roll
	refract := e.refraction > 2*roll

	diffuseWeightClamped := clamp01(e.diffuseWeight - e.metallic - e.refraction)
	specularProb := e.specularWeight / math.Max(e.specularWeight+diffuseWeightClamped, 1e-8)

	if refract {
		return p.scatterRefraction(rayIn, hit, normal, e, rnd)
	}

	branchRoll := rnd.Float64()
	if specularProb > branchRoll {
		return p.scatterSpecular(rayIn, hit, normal, viewDir, e, metal, specularProb, lights, rnd)
	}
	return p.scatterDiffuse(rayIn, hit, normal, e, specularProb, lights, rnd)
}

func (p *Principled) scatterRefraction(rayIn core.Ray, hit core.HitRecord, normal core.Vec3, e evaluated, rnd *rand.Rand) (core.ScatterResult, bool) {
	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDir.Negate().Dot(normal), 1)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	etaRatio := e.ior
	if hit.FrontFace {
		etaRatio = 1 / e.ior
	}

	f0 := math.Pow((e.ior-1)/(e.ior+1), 2)
	reflectance := core.SchlickReflectance(cosTheta, f0)
	cannotRefract := etaRatio*sinTheta > 1

	var direction core.Vec3
	if cannotRefract || reflectance > rnd.Float64() {
		direction = unitDir.Reflect(normal)
	} else {
		direction = unitDir.Refract(normal, etaRatio)
	}
	direction = direction.Add(core.RandomUnitVector(rnd).Scale(e.roughness)).Normalize()

	if direction.HasNaN() {
		return core.ScatterResult{}, false
	}

	scattered := core.NewRay(hit.Point, direction, rayIn.Time)
	attenuation := core.ColorFromRGB(core.Vec3{X: 1, Y: 1, Z: 1}.Scale(2), 1)
	return core.ScatterResult{Scattered: scattered, Attenuation: attenuation, PDF: 0, Lobe: core.LobeSpecular}, true
}

func (p *Principled) scatterSpecular(rayIn core.Ray, hit core.HitRecord, normal, viewDir core.Vec3, e evaluated, metal bool, specularProb float64, lights []core.Light, rnd *rand.Rand) (core.ScatterResult, bool) {
	alpha := e.roughness * e.roughness

	var lightDir core.Vec3
	haveLight := false
	useLightSampling := rnd.Float64() < 0.5 && len(lights) > 0
	if useLightSampling {
		if d, ok := lightSampleDirection(lights, hit.Point, rnd); ok {
			lightDir = d
			haveLight = true
		}
	}
	if !haveLight {
		h := ggxSample(normal, alpha, rnd)
		lightDir = viewDir.Negate().Reflect(h).Normalize()
	}

	l := lightDir
	nDotL := normal.Dot(l)
	nDotV := normal.Dot(viewDir)
	if nDotL <= 0 || nDotV <= 0 {
		return core.ScatterResult{}, false
	}
	h := viewDir.Add(l).Normalize()
	nDotH := math.Max(normal.Dot(h), 0)
	lDotH := math.Max(l.Dot(h), 1e-6)

	var f0 core.Vec3
	if metal {
		f0 = e.specular
	} else {
		dielectricF0 := math.Pow((e.ior-1)/(e.ior+1), 2)
		f0 = core.Vec3{X: dielectricF0, Y: dielectricF0, Z: dielectricF0}
	}
	fr := schlickFresnel(lDotH, f0)
	g := schlickMasking(nDotV, nDotL, alpha)
	d := ggxDistribution(nDotH, alpha)

	denom := math.Max(4*nDotV*nDotL, 0.015)
	spec := core.Vec3{X: fr.X * g * d / denom, Y: fr.Y * g * d / denom, Z: fr.Z * g * d / denom}

	pBrdf := d * nDotH / (4 * lDotH)
	pLight := lightPDFValue(lights, hit.Point, l)
	w := math.Max(lighting.Weight(pLight, pBrdf), 1e-8)

	base := e.specular
	if metal {
		base = e.diffuse
	}
	atten := base.MultiplyVec(spec).Scale(nDotL / (w * math.Max(specularProb, 1e-8)))
	if atten.HasNaN() {
		return core.ScatterResult{}, false
	}

	scattered := core.NewRay(hit.Point, l, rayIn.Time)
	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: core.ColorFromRGB(atten, 1),
		PDF:         w,
		Lobe:        core.LobeSpecular,
	}, true
}

func (p *Principled) scatterDiffuse(rayIn core.Ray, hit core.HitRecord, normal core.Vec3, e evaluated, specularProb float64, lights []core.Light, rnd *rand.Rand) (core.ScatterResult, bool) {
	var direction core.Vec3
	useLightSampling := rnd.Float64() < 0.5 && len(lights) > 0
	if useLightSampling {
		if d, ok := lightSampleDirection(lights, hit.Point, rnd); ok {
			direction = d
		} else {
			direction = core.SampleCosineHemisphere(normal, rnd)
		}
	} else {
		direction = core.SampleCosineHemisphere(normal, rnd)
	}

	cosTheta := normal.Dot(direction)
	if cosTheta <= 0 {
		return core.ScatterResult{}, false
	}

	pCos := core.CosinePdf(normal, direction)
	pLight := lightPDFValue(lights, hit.Point, direction)
	w := math.Max(lighting.Weight(pCos, pLight), 1e-8)

	atten := e.diffuse.Scale(e.diffuseWeight * (cosTheta / math.Pi) / (w * math.Max(1-specularProb, 1e-8)))
	if atten.HasNaN() {
		return core.ScatterResult{}, false
	}

	scattered := core.NewRay(hit.Point, direction, rayIn.Time)
	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: core.ColorFromRGB(atten, 1),
		PDF:         w,
		Lobe:        core.LobeDiffuse,
	}, true
}
