package scheduler

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/krrud/pathtracer-go/internal/integrator"
	"github.com/krrud/pathtracer-go/internal/scene"
)

// SubsamplesPerPixel is the default K of spec §4.6 step 1.
const SubsamplesPerPixel = 2

// RenderTile renders one sample index for every pixel of a tile, each
// pixel's value being the average of K jittered subsamples, and returns
// the per-pixel results without touching any shared buffer.
func RenderTile(sc *scene.Scene, tile Tile, maxDepth int, rnd *rand.Rand) []PixelSample {
	width, height := sc.Camera.Width, sc.Camera.Height
	samples := make([]PixelSample, 0, tile.Bounds.Dx()*tile.Bounds.Dy())

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			var acc integrator.Lobes
			for k := 0; k < SubsamplesPerPixel; k++ {
				u := (float64(x) + rnd.Float64()) / float64(maxInt(width-1, 1))
				v := 1 - (float64(y)+rnd.Float64())/float64(maxInt(height-1, 1))
				r := sc.Camera.GetRay(u, v, rnd)
				acc = acc.Add(integrator.Radiance(r, sc, maxDepth, maxDepth, rnd))
			}
			// DivideScalar averages alpha as well; Lobes.Scale would leave
			// alpha at the K-subsample sum.
			acc = integrator.Lobes{
				RGBA:     acc.RGBA.DivideScalar(SubsamplesPerPixel),
				Diffuse:  acc.Diffuse.DivideScalar(SubsamplesPerPixel),
				Specular: acc.Specular.DivideScalar(SubsamplesPerPixel),
				Emission: acc.Emission.DivideScalar(SubsamplesPerPixel),
			}
			samples = append(samples, PixelSample{X: x, Y: y, Lobes: acc})
		}
	}
	return samples
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// RenderSample runs one complete sample pass (sample index `pass`) across
// every tile concurrently via an errgroup-managed worker pool, then folds
// every tile's results into buffers from this single calling goroutine —
// the only writer, per spec §5.
func RenderSample(ctx context.Context, sc *scene.Scene, buffers *FrameBuffers, tiles []Tile, pass, maxDepth int, logger core.Logger) error {
	results := make([][]PixelSample, len(tiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, tile := range tiles {
		i, tile := i, tile
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			rnd := Seed(tile.ID, pass)
			results[i] = RenderTile(sc, tile, maxDepth, rnd)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var all []PixelSample
	for _, r := range results {
		all = append(all, r...)
	}
	buffers.Accumulate(all)
	if logger != nil {
		logger.Printf("sample %d/%d complete", pass+1, sc.Settings.SamplesPerPixel)
	}
	return nil
}

// RenderProgressive runs the full spp loop, calling onSample after every
// completed sample so a caller can refresh a preview or check for
// cancellation cooperatively at the pass boundary (spec §5).
func RenderProgressive(ctx context.Context, sc *scene.Scene, buffers *FrameBuffers, tileSize, maxDepth, spp int, logger core.Logger, onSample func(sampleIndex int) error) error {
	tiles := NewTileGrid(sc.Camera.Width, sc.Camera.Height, tileSize)
	for s := 0; s < spp; s++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := RenderSample(ctx, sc, buffers, tiles, s, maxDepth, logger); err != nil {
			return err
		}
		if onSample != nil {
			if err := onSample(s); err != nil {
				return err
			}
		}
	}
	return nil
}
