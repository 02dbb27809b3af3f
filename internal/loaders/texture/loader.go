// Package texture (loaders) decodes PNG/JPEG and Radiance HDR (.hdr)
// images into internal/texture.Image, converting sRGB sources to linear
// light at load time per spec §6's texture sampling interface contract.
// Grounded on pkg/loaders/image.go's decode-then-normalize shape and
// original_source/src/texture.rs's TextureMap (image crate + palette
// Srgb->LinSrgb conversion).
package texture

import (
	"bufio"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	internalcolor "github.com/krrud/pathtracer-go/internal/color"
	"github.com/krrud/pathtracer-go/internal/core"
	internaltexture "github.com/krrud/pathtracer-go/internal/texture"
)

// MaxTextureDimension bounds decoded LDR texture size; source images
// larger than this on either axis are resampled down (Catmull-Rom) before linearization,
// keeping per-sample BSDF texture lookups cheap for high-resolution source art.
const MaxTextureDimension = 4096

// LoadLDR decodes a PNG or JPEG stream, downsamples it if it exceeds
// MaxTextureDimension, and converts it to a linear-light
// internal/texture.Image.
func LoadLDR(r io.Reader) (*internaltexture.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding ldr texture")
	}
	img = downscaleToFit(img, MaxTextureDimension)

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r16, g16, b16, a16 := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			c := internalcolor.SRGBToLinear(uint8(r16>>8), uint8(g16>>8), uint8(b16>>8), uint8(a16>>8))
			pixels[y*w+x] = c
		}
	}
	return &internaltexture.Image{Width: w, Height: h, Pixels: pixels}, nil
}

// downscaleToFit resamples img down with golang.org/x/image/draw's
// Catmull-Rom kernel if either dimension exceeds maxDim, preserving
// aspect ratio.
func downscaleToFit(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}
	scale := float64(maxDim) / float64(w)
	if hScale := float64(maxDim) / float64(h); hScale < scale {
		scale = hScale
	}
	dstW := int(float64(w) * scale)
	dstH := int(float64(h) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// LoadHDR decodes a Radiance RGBE (.hdr) stream into a linear-light
// internal/texture.Image. HDR pixels are already linear, so no sRGB
// conversion is applied.
func LoadHDR(r io.Reader) (*internaltexture.Image, error) {
	br := bufio.NewReader(r)

	// Header: lines until a blank line, then a resolution line like
	// "-Y 512 +X 1024", then raw/RLE scanlines of RGBE quads.
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, errors.Wrap(err, "reading hdr header")
		}
		if strings.TrimSpace(line) == "" {
			break
		}
	}
	resLine, err := br.ReadString('\n')
	if err != nil {
		return nil, errors.Wrap(err, "reading hdr resolution line")
	}
	width, height, err := parseHDRResolution(resLine)
	if err != nil {
		return nil, err
	}

	pixels := make([]core.Color, width*height)
	for y := 0; y < height; y++ {
		row, err := readHDRScanline(br, width)
		if err != nil {
			return nil, errors.Wrapf(err, "reading hdr scanline %d", y)
		}
		copy(pixels[y*width:(y+1)*width], row)
	}
	return &internaltexture.Image{Width: width, Height: height, Pixels: pixels}, nil
}

func parseHDRResolution(line string) (width, height int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return 0, 0, errors.Errorf("malformed hdr resolution line %q", line)
	}
	h, err1 := strconv.Atoi(fields[1])
	w, err2 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("malformed hdr resolution line %q", line)
	}
	return w, h, nil
}

// readHDRScanline reads one uncompressed-or-RLE RGBE scanline and
// converts it to linear-light colors.
func readHDRScanline(br *bufio.Reader, width int) ([]core.Color, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, err
	}

	isRLE := width >= 8 && width < 0x8000 && buf[0] == 2 && buf[1] == 2 && (int(buf[2])<<8|int(buf[3])) == width
	channels := make([][]byte, 4)
	if isRLE {
		for c := 0; c < 4; c++ {
			channels[c] = make([]byte, width)
			if err := readRLEChannel(br, channels[c]); err != nil {
				return nil, err
			}
		}
	} else {
		// Flat/raw scanline: buf holds the first pixel already.
		raw := make([]byte, width*4)
		copy(raw[0:4], buf)
		if _, err := io.ReadFull(br, raw[4:]); err != nil {
			return nil, err
		}
		for c := 0; c < 4; c++ {
			channels[c] = make([]byte, width)
			for x := 0; x < width; x++ {
				channels[c][x] = raw[x*4+c]
			}
		}
	}

	out := make([]core.Color, width)
	for x := 0; x < width; x++ {
		out[x] = rgbeToColor(channels[0][x], channels[1][x], channels[2][x], channels[3][x])
	}
	return out, nil
}

func readRLEChannel(br *bufio.Reader, dst []byte) error {
	x := 0
	for x < len(dst) {
		count, err := br.ReadByte()
		if err != nil {
			return err
		}
		if count > 128 {
			// run of (count-128) repeats of the next byte
			n := int(count) - 128
			v, err := br.ReadByte()
			if err != nil {
				return err
			}
			for i := 0; i < n && x < len(dst); i++ {
				dst[x] = v
				x++
			}
		} else {
			n := int(count)
			for i := 0; i < n && x < len(dst); i++ {
				v, err := br.ReadByte()
				if err != nil {
					return err
				}
				dst[x] = v
				x++
			}
		}
	}
	return nil
}

func rgbeToColor(r, g, b, e byte) core.Color {
	if e == 0 {
		return core.Black()
	}
	scale := math.Ldexp(1, int(e)-(128+8))
	return core.Color{R: float64(r) * scale, G: float64(g) * scale, B: float64(b) * scale, A: 1}
}
