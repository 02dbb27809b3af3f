package geometry

import (
	"math"
	"testing"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangleParallelRayNeverHits(t *testing.T) {
	tri := NewTriangle(core.Vec3{}, core.Vec3{X: 1}, core.Vec3{Y: 1}, nil)
	// Ray direction lying in the triangle's plane (Z=0 plane).
	r := core.NewRay(core.Vec3{X: -1, Y: 0.2, Z: 0}, core.Vec3{X: 1, Y: 0, Z: 0}, 0)
	_, ok := tri.Hit(r, 1e-4, math.Inf(1))
	assert.False(t, ok)
}

func TestTriangleInteriorHitBarycentricSumToOne(t *testing.T) {
	v0, v1, v2 := core.Vec3{}, core.Vec3{X: 1}, core.Vec3{Y: 1}
	tri := NewTriangle(v0, v1, v2, nil)
	r := core.NewRay(core.Vec3{X: 0.2, Y: 0.2, Z: -1}, core.Vec3{X: 0, Y: 0, Z: 1}, 0)
	hit, ok := tri.Hit(r, 1e-4, math.Inf(1))
	require.True(t, ok)

	// Recover barycentric weights from the hit point and confirm they sum
	// to 1 within tolerance. u and v come from projecting onto the edges;
	// w is computed independently as the sub-triangle area ratio opposite
	// v0, so the sum only reaches 1 when the hit point lies on the
	// triangle itself.
	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)
	p := hit.Point.Subtract(v0)
	// Solve the 2x2 normal equations of p = u*e1 + v*e2 by Cramer's rule.
	d00 := e1.Dot(e1)
	d01 := e1.Dot(e2)
	d11 := e2.Dot(e2)
	d20 := p.Dot(e1)
	d21 := p.Dot(e2)
	denom := d00*d11 - d01*d01
	u := (d11*d20 - d01*d21) / denom
	v := (d00*d21 - d01*d20) / denom
	w := v1.Subtract(hit.Point).Cross(v2.Subtract(hit.Point)).Length() / e1.Cross(e2).Length()
	assert.InDelta(t, 1.0, u+v+w, 1e-6)
}

func TestTriangleMeshExpandsFlatList(t *testing.T) {
	mesh := TriangleMesh{
		Positions: []core.Vec3{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}},
		Indices:   [][3]int{{0, 1, 2}, {1, 3, 2}},
		Smooth:    false,
	}
	shapes := mesh.Triangles()
	assert.Len(t, shapes, 2)
}
