package scheduler

import (
	"context"
	"testing"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/krrud/pathtracer-go/internal/geometry"
	"github.com/krrud/pathtracer-go/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blankWorld struct{}

func (blankWorld) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) { return nil, false }
func (blankWorld) BoundingBox() core.Aabb                                    { return core.Aabb{} }

func newTestScene() *scene.Scene {
	cam := geometry.NewCamera(geometry.CameraConfig{
		Center: core.Vec3{Z: 2}, LookAt: core.Vec3{}, Up: core.Vec3{Y: 1},
		Width: 16, AspectRatio: 1, VFov: 60,
	})
	return &scene.Scene{World: blankWorld{}, Camera: cam}
}

func TestDeterministicReproduction(t *testing.T) {
	sc := newTestScene()

	run := func() *FrameBuffers {
		buf := NewFrameBuffers(sc.Camera.Width, sc.Camera.Height)
		tiles := NewTileGrid(sc.Camera.Width, sc.Camera.Height, 8)
		for s := 0; s < 3; s++ {
			require.NoError(t, RenderSample(context.Background(), sc, buf, tiles, s, 3, nil))
		}
		return buf
	}

	a := run()
	b := run()
	assert.Equal(t, a.Beauty, b.Beauty)
	assert.Equal(t, a.SampleCount, b.SampleCount)
}

func TestEmptyWorldProducesAllZeroImage(t *testing.T) {
	sc := newTestScene()
	buf := NewFrameBuffers(sc.Camera.Width, sc.Camera.Height)
	tiles := NewTileGrid(sc.Camera.Width, sc.Camera.Height, 8)
	require.NoError(t, RenderSample(context.Background(), sc, buf, tiles, 0, 3, nil))

	for _, c := range buf.Beauty {
		assert.Equal(t, core.Black(), c)
	}
}
