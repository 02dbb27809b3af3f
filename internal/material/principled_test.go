package material

import (
	"math/rand"
	"testing"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestEmissiveIntensityIsSquared(t *testing.T) {
	e := &Emissive{Color: core.Vec3{X: 1, Y: 1, Z: 1}, Intensity: 3}
	hit := core.HitRecord{FrontFace: true}
	c := e.Emit(hit)
	assert.InDelta(t, 9, c.R, 1e-9)
}

func TestEmissiveBackFaceIsDark(t *testing.T) {
	e := &Emissive{Color: core.Vec3{X: 1, Y: 1, Z: 1}, Intensity: 3}
	hit := core.HitRecord{FrontFace: false}
	c := e.Emit(hit)
	assert.Equal(t, 0.0, c.Sum())
}

func TestPrincipledDiffuseScatterStaysInHemisphere(t *testing.T) {
	p := &Principled{Diffuse: core.Vec3{X: 0.8, Y: 0.8, Z: 0.8}, DiffuseWeight: 1}
	rnd := rand.New(rand.NewSource(3))
	hit := core.HitRecord{Point: core.Vec3{}, Normal: core.Vec3{Y: 1}, FrontFace: true}
	rayIn := core.NewRay(core.Vec3{Y: 1}, core.Vec3{Y: -1}, 0)

	for i := 0; i < 200; i++ {
		result, ok := p.Scatter(rayIn, hit, nil, rnd)
		if !ok {
			continue
		}
		assert.GreaterOrEqual(t, hit.Normal.Dot(result.Scattered.Direction.Normalize()), -1e-9)
		assert.False(t, result.Attenuation.HasNaN())
	}
}

func TestPrincipledMirrorReflectionIsDelta(t *testing.T) {
	p := &Principled{Specular: core.Vec3{X: 1, Y: 1, Z: 1}, SpecularWeight: 1, Metallic: 1, Roughness: 0.001, IOR: 1.5}
	rnd := rand.New(rand.NewSource(4))
	hit := core.HitRecord{Point: core.Vec3{}, Normal: core.Vec3{Y: 1}, FrontFace: true}
	rayIn := core.NewRay(core.Vec3{Y: 1}, core.Vec3{Y: -1}, 0)

	found := false
	for i := 0; i < 500 && !found; i++ {
		result, ok := p.Scatter(rayIn, hit, nil, rnd)
		if ok && result.Lobe == core.LobeSpecular {
			found = true
			// A near-zero-roughness mirror sends a normal-incidence ray
			// straight back along the normal.
			assert.InDelta(t, 1.0, result.Scattered.Direction.Normalize().Y, 1e-3)
		}
	}
	assert.True(t, found)
}
