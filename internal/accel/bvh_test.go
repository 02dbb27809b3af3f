package accel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/krrud/pathtracer-go/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSpheres(n int, rnd *rand.Rand) []core.Shape {
	shapes := make([]core.Shape, n)
	for i := range shapes {
		center := core.Vec3{
			X: rnd.Float64()*20 - 10,
			Y: rnd.Float64()*20 - 10,
			Z: rnd.Float64()*20 - 10,
		}
		shapes[i] = geometry.NewSphere(center, 0.3+rnd.Float64()*0.5, nil)
	}
	return shapes
}

func bruteForceHit(shapes []core.Shape, r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var best *core.HitRecord
	closest := tMax
	for _, s := range shapes {
		if hit, ok := s.Hit(r, tMin, closest); ok {
			best = hit
			closest = hit.T
		}
	}
	return best, best != nil
}

func TestBVHMatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	shapes := randomSpheres(200, rnd)
	// Copy the slice before Build mutates ordering, so brute force sees
	// the same set of primitives.
	original := append([]core.Shape(nil), shapes...)

	bvh := Build(shapes, rnd)

	for i := 0; i < 500; i++ {
		origin := core.Vec3{X: rnd.Float64()*40 - 20, Y: rnd.Float64()*40 - 20, Z: rnd.Float64()*40 - 20}
		dir := core.Vec3{X: rnd.Float64()*2 - 1, Y: rnd.Float64()*2 - 1, Z: rnd.Float64()*2 - 1}
		r := core.NewRay(origin, dir, 0)

		bvhHit, bvhOk := bvh.Hit(r, 1e-4, math.Inf(1))
		bruteHit, bruteOk := bruteForceHit(original, r, 1e-4, math.Inf(1))

		require.Equal(t, bruteOk, bvhOk)
		if bruteOk {
			assert.InDelta(t, bruteHit.T, bvhHit.T, 1e-6)
		}
	}
}

func TestBVHNodeCoverage(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	shapes := randomSpheres(64, rnd)
	bvh := Build(shapes, rnd)

	var check func(n core.Shape)
	check = func(n core.Shape) {
		node, ok := n.(*Node)
		if !ok {
			return
		}
		assert.True(t, node.box.Contains(node.Left.BoundingBox(), 1e-9))
		assert.True(t, node.box.Contains(node.Right.BoundingBox(), 1e-9))
		if node.Left != node.Right {
			check(node.Left)
			check(node.Right)
		}
	}
	check(bvh.root)
}
