package material

import (
	"math"
	"math/rand"

	"github.com/krrud/pathtracer-go/internal/core"
)

// ggxDistribution is the GGX/Trowbridge-Reitz normal distribution term D,
// grounded on original_source/src/material.rs's ggx_distribution.
func ggxDistribution(nDotH, alpha float64) float64 {
	a2 := alpha * alpha
	denom := nDotH*nDotH*(a2-1) + 1
	denom = math.Pi * denom * denom
	if denom < 1e-12 {
		denom = 1e-12
	}
	return a2 / denom
}

// schlickMasking is the Schlick-approximated Smith geometry term, with
// k = alpha^2/2 per spec §4.3.
func schlickMasking(nDotV, nDotL, alpha float64) float64 {
	k := alpha * alpha / 2
	g1 := func(nDotX float64) float64 {
		denom := nDotX*(1-k) + k
		if denom < 1e-8 {
			denom = 1e-8
		}
		return nDotX / denom
	}
	return g1(nDotV) * g1(nDotL)
}

// schlickFresnel returns the Schlick-approximated Fresnel reflectance for
// the given cosine and normal-incidence reflectance f0.
func schlickFresnel(cosine float64, f0 core.Vec3) core.Vec3 {
	x := 1 - cosine
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	pow5 := x * x * x * x * x
	return core.Vec3{
		X: f0.X + (1-f0.X)*pow5,
		Y: f0.Y + (1-f0.Y)*pow5,
		Z: f0.Z + (1-f0.Z)*pow5,
	}
}

// ggxSample draws a half-vector from the GGX distribution in the local
// shading frame (normal = +Z) and returns it in world space.
func ggxSample(normal core.Vec3, alpha float64, rnd *rand.Rand) core.Vec3 {
	onb := core.NewOnb(normal)
	r1, r2 := rnd.Float64(), rnd.Float64()
	theta := math.Atan2(alpha*math.Sqrt(r1), math.Sqrt(1-r1))
	phi := 2 * math.Pi * r2
	x := math.Sin(theta) * math.Cos(phi)
	y := math.Sin(theta) * math.Sin(phi)
	z := math.Cos(theta)
	return onb.Local(core.Vec3{X: x, Y: y, Z: z}).Normalize()
}
