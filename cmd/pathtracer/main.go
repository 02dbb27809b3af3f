// Command pathtracer is the CLI entrypoint: parse flags, load a JSON
// scene (internal/loaders/scene is the external parser collaborator
// spec §1 treats as out of scope for the renderer itself), run the
// progressive scheduler, and write preview/final PNGs. Grounded on the
// teacher's root main.go (flag shape, progressive render loop, PNG
// save-per-pass) generalized from the teacher's many built-in scenes to
// a single JSON scene file argument.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/krrud/pathtracer-go/internal/core"
	loader "github.com/krrud/pathtracer-go/internal/loaders/scene"
	"github.com/krrud/pathtracer-go/internal/logging"
	"github.com/krrud/pathtracer-go/internal/previewsink"
	"github.com/krrud/pathtracer-go/internal/scheduler"
)

type config struct {
	ScenePath   string
	OutputPath  string
	PreviewPath string
	TileSize    int
	MaxDepth    int
	Spp         int
	Quiet       bool
	NoTUI       bool
}

func main() {
	cfg := parseFlags()
	if cfg.ScenePath == "" {
		fmt.Fprintln(os.Stderr, "pathtracer: -scene is required")
		flagUsage()
		os.Exit(2)
	}

	var logger core.Logger = logging.NewDefaultLogger()
	if cfg.Quiet {
		logger = nil
	}

	f, err := os.Open(cfg.ScenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathtracer: opening scene: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	sc, err := loader.Load(f, rnd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathtracer: loading scene: %v\n", err)
		os.Exit(1)
	}

	spp := cfg.Spp
	if spp == 0 {
		spp = sc.Settings.SamplesPerPixel
	}
	if spp == 0 {
		spp = 32
	}
	maxDepth := cfg.MaxDepth
	if maxDepth == 0 {
		maxDepth = sc.Settings.Depth
	}
	if maxDepth == 0 {
		maxDepth = 8
	}
	tileSize := cfg.TileSize
	if tileSize == 0 {
		tileSize = scheduler.DefaultTileSize
	}

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = sc.Settings.OutputFile
	}
	if outputPath == "" {
		outputPath = "render.png"
	}

	sinks := []previewsink.Sink{&previewsink.FileSink{Path: outputPath}}
	if cfg.PreviewPath != "" {
		sinks = append(sinks, &previewsink.FileSink{Path: cfg.PreviewPath})
	}
	sink := &previewsink.MultiSink{Sinks: sinks}

	buffers := scheduler.NewFrameBuffers(sc.Camera.Width, sc.Camera.Height)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var reporter progressReporter
	if !cfg.NoTUI && term.IsTerminal(int(os.Stdout.Fd())) {
		tr, err := newTUIReporter(spp)
		if err == nil {
			reporter = tr
			defer tr.Close()
		}
	}
	if reporter == nil {
		reporter = plainReporter{total: spp}
	}

	start := time.Now()
	err = scheduler.RenderProgressive(ctx, sc, buffers, tileSize, maxDepth, spp, logger, func(pass int) error {
		reporter.Update(pass + 1)
		if err := sink.OnFrame(pass, buffers); err != nil {
			return err
		}
		return nil
	})
	reporter.Done()

	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "pathtracer: render failed: %v\n", err)
		os.Exit(1)
	}

	abs, _ := filepath.Abs(outputPath)
	fmt.Printf("pathtracer: %d samples/pixel in %v, saved to %s\n", buffers.SampleCount, time.Since(start).Round(time.Millisecond), abs)
}
