package lighting

import (
	"math/rand"
	"testing"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/krrud/pathtracer-go/internal/geometry"
	"github.com/stretchr/testify/assert"
)

func TestQuadLightPDFRecoversSolidAngle(t *testing.T) {
	light := geometry.NewQuadLight(
		core.Vec3{X: -1, Y: 2, Z: -1},
		core.Vec3{X: 2}, core.Vec3{Z: 2},
		core.Vec3{X: 1, Y: 1, Z: 1}, 4, nil,
	)
	lights := []core.Light{light}
	point := core.Vec3{Y: 0}

	// Monte Carlo estimate of the solid angle the light subtends from
	// point, by averaging 1/pdf over directions sampled toward it.
	rnd := rand.New(rand.NewSource(9))
	const n = 100000
	sum := 0.0
	hits := 0
	for i := 0; i < n; i++ {
		dir, ok := Generate(lights, point, rnd)
		if !ok {
			continue
		}
		pdf := Value(lights, point, dir)
		if pdf > 0 {
			sum += 1 / pdf
			hits++
		}
	}
	estimate := sum / float64(n)

	// Reference solid angle via direct numerical estimate: sample the
	// light surface uniformly, convert to solid-angle contribution.
	rnd2 := rand.New(rand.NewSource(11))
	refSum := 0.0
	for i := 0; i < n; i++ {
		s, tt := rnd2.Float64(), rnd2.Float64()
		p := light.SamplePoint(s, tt)
		toLight := p.Subtract(point)
		d2 := toLight.LengthSquared()
		cosTheta := light.Normal().Dot(toLight.Negate().Normalize())
		if cosTheta <= 0 {
			continue
		}
		refSum += (cosTheta * light.Area()) / d2
	}
	refSolidAngle := refSum / float64(n)

	assert.Greater(t, hits, 0)
	assert.InDelta(t, refSolidAngle, estimate, refSolidAngle*0.1)
}
