package main

import (
	"flag"
	"fmt"
	"os"
)

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.ScenePath, "scene", "", "path to a JSON scene file (required)")
	flag.StringVar(&cfg.OutputPath, "out", "", "final PNG output path (default: scene's output_file, or render.png)")
	flag.StringVar(&cfg.PreviewPath, "preview", "", "optional PNG path refreshed after every sample pass")
	flag.IntVar(&cfg.TileSize, "tile-size", 0, "tile size in pixels (default 64)")
	flag.IntVar(&cfg.MaxDepth, "depth", 0, "maximum bounce depth (default: scene's depth, or 8)")
	flag.IntVar(&cfg.Spp, "spp", 0, "samples per pixel (default: scene's spp, or 32)")
	flag.BoolVar(&cfg.Quiet, "quiet", false, "suppress per-pass log lines")
	flag.BoolVar(&cfg.NoTUI, "no-tui", false, "disable the full-screen progress UI even on a TTY")
	flag.Parse()
	return cfg
}

func flagUsage() {
	fmt.Fprintln(os.Stderr, "usage: pathtracer -scene scene.json [flags]")
	flag.PrintDefaults()
}
