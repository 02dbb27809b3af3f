package scheduler

import (
	"math"

	"github.com/krrud/pathtracer-go/internal/core"
	"github.com/krrud/pathtracer-go/internal/integrator"
)

// FrameBuffers holds the three floating-point RGBA accumulation images
// spec §3 names: beauty, diffuse, specular, plus the sample count used by
// the running-average fold. Exactly one goroutine (the scheduler's
// accumulation step) ever writes to these slices.
type FrameBuffers struct {
	Width, Height int
	Beauty        []core.Color
	Diffuse       []core.Color
	Specular      []core.Color
	SampleCount   int
}

func NewFrameBuffers(width, height int) *FrameBuffers {
	n := width * height
	return &FrameBuffers{
		Width: width, Height: height,
		Beauty:   make([]core.Color, n),
		Diffuse:  make([]core.Color, n),
		Specular: make([]core.Color, n),
	}
}

// PixelSample is one worker-produced, already K-subsample-averaged Lobes
// value for a single pixel, handed back to the scheduler for folding.
type PixelSample struct {
	X, Y  int
	Lobes integrator.Lobes
}

// fold applies the running-average rule: given previous value P after s
// samples and new value L, the new value is (L + P*s)/(s+1).
func fold(prev, next core.Color, s int) core.Color {
	n := float64(s)
	sum := next.Add(prev.Scale(n))
	sum.A = next.A + prev.A*n // Color.Scale leaves alpha unscaled
	return sum.DivideScalar(n + 1)
}

// Accumulate folds one pass's worth of samples into the buffers and
// advances the sample count by one. It is called exactly once per pass,
// from a single goroutine, satisfying spec §5's ordering guarantee.
func (f *FrameBuffers) Accumulate(samples []PixelSample) {
	s := f.SampleCount
	for _, ps := range samples {
		idx := ps.Y*f.Width + ps.X
		f.Beauty[idx] = fold(f.Beauty[idx], ps.Lobes.RGBA, s)
		f.Diffuse[idx] = fold(f.Diffuse[idx], ps.Lobes.Diffuse, s)
		f.Specular[idx] = fold(f.Specular[idx], ps.Lobes.Specular, s)
	}
	f.SampleCount++
}

// PreviewByte gamma-approximates a linear channel value into an 8-bit
// preview byte via ch' = sqrt(ch) * 255.999, per spec §4.6 step 3.
func PreviewByte(channel float64) uint8 {
	if channel < 0 {
		channel = 0
	}
	v := math.Sqrt(channel) * 255.999
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
