// Package previewsink implements the opaque per-pass preview callback
// spec §6 names as an external collaborator ("a caller-supplied sink
// receives preview frames; what it does with them—write to disk, stream
// over a socket—is outside this module's concern"). Grounded on
// web/server/server.go's TileUpdate/base64-PNG streaming idea, scaled
// down from a full SSE HTTP server to the plain callback contract the
// spec actually asks for.
package previewsink

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	internalcolor "github.com/krrud/pathtracer-go/internal/color"
	"github.com/krrud/pathtracer-go/internal/scheduler"
)

// Sink receives one preview frame per completed progressive pass.
type Sink interface {
	OnFrame(pass int, buffers *scheduler.FrameBuffers) error
}

// ToImage gamma-encodes a FrameBuffers' beauty channel into an 8-bit
// image.NRGBA preview, per spec §4.6 step 3.
func ToImage(buffers *scheduler.FrameBuffers) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buffers.Width, buffers.Height))
	for y := 0; y < buffers.Height; y++ {
		for x := 0; x < buffers.Width; x++ {
			c := buffers.Beauty[y*buffers.Width+x]
			img.SetNRGBA(x, y, internalcolor.LinearToGammaPreview(c))
		}
	}
	return img
}

// DrawHUD burns a small "pass N, S samples" label into the top-left
// corner of a preview frame with golang.org/x/image/font's basic face,
// matching the teacher's web preview overlay intent (status text
// layered onto the streamed tile image) without reproducing the HTTP
// server it lived in.
func DrawHUD(img *image.NRGBA, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(4), Y: fixed.I(14)},
	}
	d.DrawString(text)
}

// FileSink writes each pass's preview to Path as a PNG, overwriting the
// previous pass — the simplest possible "watch it converge" sink.
type FileSink struct {
	Path string
}

func (s *FileSink) OnFrame(pass int, buffers *scheduler.FrameBuffers) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return errors.Wrapf(err, "creating preview file %q", s.Path)
	}
	defer f.Close()
	img := ToImage(buffers)
	DrawHUD(img, fmt.Sprintf("pass %d, %d spp", pass+1, buffers.SampleCount))
	if err := png.Encode(f, img); err != nil {
		return errors.Wrap(err, "encoding preview png")
	}
	return nil
}

// CallbackSink adapts an in-memory callback (e.g. a UI frame channel or an
// HTTP SSE handler) to the Sink interface, encoding each pass's buffers to
// a PNG byte slice before invoking Fn. Grounded on
// web/server/server.go's TileUpdate.ImageData base64-PNG-per-tile idea,
// generalized here to a whole-frame preview rather than per-tile deltas.
type CallbackSink struct {
	Fn func(pass int, png []byte) error
}

func (s *CallbackSink) OnFrame(pass int, buffers *scheduler.FrameBuffers) error {
	img := ToImage(buffers)
	DrawHUD(img, fmt.Sprintf("pass %d, %d spp", pass+1, buffers.SampleCount))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errors.Wrap(err, "encoding preview png")
	}
	return s.Fn(pass, buf.Bytes())
}

// MultiSink fans one frame out to several sinks, stopping at the first
// error.
type MultiSink struct {
	Sinks []Sink
}

func (s *MultiSink) OnFrame(pass int, buffers *scheduler.FrameBuffers) error {
	for _, sink := range s.Sinks {
		if err := sink.OnFrame(pass, buffers); err != nil {
			return err
		}
	}
	return nil
}
