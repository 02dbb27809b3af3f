// Package texture defines the sampleable 2-D float RGB image interface
// consumed by material evaluation. Decoding concrete image formats (PNG,
// JPEG, Radiance HDR) is an external-collaborator concern implemented in
// internal/loaders, per spec §1/§6.
package texture

import "github.com/krrud/pathtracer-go/internal/core"

// Texture provides linear-RGB sampling and a finite-difference gradient
// for bump mapping, per spec §6's external interface contract.
type Texture interface {
	Sample(u, v float64) core.Color
	Gradient(u, v float64) (du, dv float64)
}

// Constant is a Texture that always returns the same color and a zero
// gradient. A material parameter with no texture override leaves its
// texture field nil rather than using Constant.
type Constant struct {
	Value core.Color
}

func (c Constant) Sample(u, v float64) core.Color { return c.Value }
func (c Constant) Gradient(u, v float64) (float64, float64) { return 0, 0 }

// Image is a 2-D grid of linear-RGB pixels sampled with wrapping
// (repeat) addressing and nearest-neighbor lookup, matching the
// teacher's pkg/loaders/image.go normalization-to-[0,1] convention.
type Image struct {
	Width, Height int
	Pixels        []core.Color // row-major, length Width*Height
}

func (img *Image) at(x, y int) core.Color {
	x = ((x % img.Width) + img.Width) % img.Width
	y = ((y % img.Height) + img.Height) % img.Height
	return img.Pixels[y*img.Width+x]
}

func (img *Image) Sample(u, v float64) core.Color {
	if img.Width == 0 || img.Height == 0 {
		return core.Black()
	}
	x := int(u * float64(img.Width))
	y := int((1 - v) * float64(img.Height))
	return img.at(x, y)
}

// Gradient approximates (dh/du, dh/dv) via central differences on
// luminance, a one-texel step in each direction.
func (img *Image) Gradient(u, v float64) (float64, float64) {
	if img.Width == 0 || img.Height == 0 {
		return 0, 0
	}
	du := 1.0 / float64(img.Width)
	dv := 1.0 / float64(img.Height)
	hu1 := img.Sample(u+du, v).RGB().Luminance()
	hu0 := img.Sample(u-du, v).RGB().Luminance()
	hv1 := img.Sample(u, v+dv).RGB().Luminance()
	hv0 := img.Sample(u, v-dv).RGB().Luminance()
	return (hu1 - hu0) / (2 * du), (hv1 - hv0) / (2 * dv)
}
