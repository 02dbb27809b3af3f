package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAabbSlabConsistency(t *testing.T) {
	box := NewAabb(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	r := NewRay(Vec3{0, 0, -5}, Vec3{0, 0, 1}, 0)

	tEnter, tExit, ok := box.Hit(r, 0, math.Inf(1))
	require.True(t, ok)
	assert.InDelta(t, 4, tEnter, 1e-9)
	assert.InDelta(t, 6, tExit, 1e-9)

	// A ray that misses entirely.
	miss := NewRay(Vec3{5, 5, -5}, Vec3{0, 0, 1}, 0)
	_, _, ok = box.Hit(miss, 0, math.Inf(1))
	assert.False(t, ok)
}

func TestAabbInvalidAlwaysMisses(t *testing.T) {
	invalid := NewAabb(Vec3{1, 1, 1}, Vec3{-1, -1, -1})
	r := NewRay(Vec3{0, 0, -5}, Vec3{0, 0, 1}, 0)
	_, _, ok := invalid.Hit(r, 0, math.Inf(1))
	assert.False(t, ok)
}

func TestAabbUnionContains(t *testing.T) {
	a := NewAabb(Vec3{0, 0, 0}, Vec3{1, 1, 1})
	b := NewAabb(Vec3{2, 2, 2}, Vec3{3, 3, 3})
	u := Union(a, b)
	assert.True(t, u.Contains(a, 1e-9))
	assert.True(t, u.Contains(b, 1e-9))
}
