package scheduler

import (
	"testing"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/krrud/pathtracer-go/internal/integrator"
	"github.com/stretchr/testify/assert"
)

func TestAccumulationIdempotence(t *testing.T) {
	f := NewFrameBuffers(1, 1)
	l := integrator.Lobes{RGBA: core.Color{R: 0.5, G: 0.25, B: 0.1, A: 1}}

	for i := 0; i < 10; i++ {
		f.Accumulate([]PixelSample{{X: 0, Y: 0, Lobes: l}})
	}

	assert.InDelta(t, 0.5, f.Beauty[0].R, 1e-9)
	assert.InDelta(t, 0.25, f.Beauty[0].G, 1e-9)
	assert.InDelta(t, 0.1, f.Beauty[0].B, 1e-9)
}

func TestAccumulationRunningAverage(t *testing.T) {
	f := NewFrameBuffers(1, 1)
	f.Accumulate([]PixelSample{{X: 0, Y: 0, Lobes: integrator.Lobes{RGBA: core.Color{R: 1}}}})
	f.Accumulate([]PixelSample{{X: 0, Y: 0, Lobes: integrator.Lobes{RGBA: core.Color{R: 0}}}})
	assert.InDelta(t, 0.5, f.Beauty[0].R, 1e-9)
	assert.Equal(t, 2, f.SampleCount)
}

func TestTileGridCoversWholeImage(t *testing.T) {
	tiles := NewTileGrid(130, 70, 64)
	covered := map[[2]int]bool{}
	for _, tile := range tiles {
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				covered[[2]int{x, y}] = true
			}
		}
	}
	assert.Len(t, covered, 130*70)
}
