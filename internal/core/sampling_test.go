package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSamplingMeanConvergesToTwoThirds(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	normal := Vec3{0, 0, 1}
	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		d := SampleCosineHemisphere(normal, rnd)
		sum += normal.Dot(d)
	}
	mean := sum / n
	// std dev of cos(theta) under this distribution is small enough that
	// 3 sigma over 20000 samples is comfortably under 0.02.
	assert.InDelta(t, 2.0/3.0, mean, 0.02)
}

func TestRandomAxisCoversAllThree(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		seen[RandomAxis(rnd)] = true
	}
	assert.Len(t, seen, 3)
}
