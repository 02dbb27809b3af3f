package geometry

import (
	"math"
	"testing"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereUVRoundTrip(t *testing.T) {
	// u=0 at atan2(-z,x) = -pi -> point on -X axis with z=0.
	u, v := sphereUV(core.Vec3{X: -1, Y: 0, Z: 0})
	assert.InDelta(t, 0, u, 1e-9)
	assert.GreaterOrEqual(t, u, 0.0)
	assert.LessOrEqual(t, u, 1.0)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)

	// u=1/2 at x=1, z=0.
	u2, _ := sphereUV(core.Vec3{X: 1, Y: 0, Z: 0})
	assert.InDelta(t, 0.5, u2, 1e-9)
}

func TestSphereHitBasic(t *testing.T) {
	s := NewSphere(core.Vec3{Z: -1}, 0.5, nil)
	r := core.NewRay(core.Vec3{}, core.Vec3{Z: -1}, 0)
	hit, ok := s.Hit(r, 1e-4, math.Inf(1))
	require.True(t, ok)
	assert.InDelta(t, 0.5, hit.T, 1e-9)
	assert.True(t, hit.FrontFace)
}

func TestSphereMiss(t *testing.T) {
	s := NewSphere(core.Vec3{Z: -1}, 0.5, nil)
	r := core.NewRay(core.Vec3{}, core.Vec3{X: 1}, 0)
	_, ok := s.Hit(r, 1e-4, math.Inf(1))
	assert.False(t, ok)
}
