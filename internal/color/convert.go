// Package color implements sRGB<->linear conversion and the
// gamma-approximated 8-bit preview encode, grounded on
// original_source/src/texture.rs's use of the `palette` crate's
// Srgb/LinSrgb conversion, reimplemented here with
// github.com/lucasb-eyer/go-colorful per SPEC_FULL.md's DOMAIN STACK.
package color

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/krrud/pathtracer-go/internal/core"
)

// SRGBToLinear converts an 8-bit-per-channel sRGB color (as decoded from
// a PNG/JPEG texture) to linear-light core.Color.
func SRGBToLinear(r, g, b, a uint8) core.Color {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	lr, lg, lb := c.LinearRgb()
	return core.Color{R: lr, G: lg, B: lb, A: float64(a) / 255}
}

// LinearToGammaPreview approximates linear-to-sRGB with the renderer's
// cheap sqrt gamma (ch' = sqrt(ch) * 255.999, spec §4.6 step 3) rather
// than go-colorful's exact sRGB transfer function — the exact function is
// used only in tests to bound how far the approximation drifts.
func LinearToGammaPreview(c core.Color) color.NRGBA {
	clamp := func(v float64) uint8 {
		if v < 0 {
			v = 0
		}
		g := math.Sqrt(v) * 255.999
		if g > 255 {
			g = 255
		}
		return uint8(g)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: 255}
}

// ExactSRGB converts linear RGB to sRGB using go-colorful's precise
// transfer function, used by tests validating the gamma approximation.
func ExactSRGB(c core.Color) (r, g, b float64) {
	cf := colorful.LinearRgb(c.R, c.G, c.B)
	return cf.R, cf.G, cf.B
}

