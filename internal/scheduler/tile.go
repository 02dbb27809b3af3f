// Package scheduler implements the progressive, chunk-parallel tile
// scheduler and accumulation buffers of spec §4.6/§5, grounded on
// pkg/renderer/progressive.go's Tile/NewTileGrid/pass-orchestration shape
// and original_source/src/render.rs's render_chunk/get_pixel_chunks
// per-pixel subsample averaging. Unlike the teacher's worker_pool.go,
// which writes directly into a shared PixelStats array from each worker,
// workers here return a per-tile sample list and only the scheduler's
// single accumulation step folds it into the buffers — spec §5 requires
// workers never write the buffers directly.
package scheduler

import (
	"image"
	"math/rand"
)

const DefaultTileSize = 64

// Tile is one rectangular unit of scheduling work.
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid partitions a width x height image into tileSize x tileSize
// tiles (the last row/column may be smaller), ceiling-divided.
func NewTileGrid(width, height, tileSize int) []Tile {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	var tiles []Tile
	id := 0
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			x2 := x + tileSize
			if x2 > width {
				x2 = width
			}
			y2 := y + tileSize
			if y2 > height {
				y2 = height
			}
			tiles = append(tiles, Tile{ID: id, Bounds: image.Rect(x, y, x2, y2)})
			id++
		}
	}
	return tiles
}

// Seed derives a deterministic RNG for this tile at a given pass, so two
// runs with identical (tile, pass) seeding reproduce byte-identical
// accumulation buffers (spec §8 property 9, §5's determinism note).
func Seed(tileID, pass int) *rand.Rand {
	return rand.New(rand.NewSource(int64(tileID)*1_000_003 + int64(pass) + 42))
}
