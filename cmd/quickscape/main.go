package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"quickscape/internal/config"
	"quickscape/internal/profiling"
	"quickscape/internal/terrain"
)

func main() {
	var (
		configPath   = flag.String("config", "", "path to terrain YAML config (optional)")
		seedFlag     = flag.String("seed", "", "noise seed; empty uses the config seed or draws a fresh one")
		algorithm    = flag.String("algorithm", "", "noise algorithm override: smooth-simplex, perlin, value")
		subdivisions = flag.Int("subdivisions", -1, "override subdivisions on both axes (-1 keeps config)")
		objPath      = flag.String("obj", "", "write the mesh as Wavefront OBJ")
		meshPath     = flag.String("mesh", "", "write the mesh as a compressed binary frame")
		heightPath   = flag.String("heightmap", "", "write a grayscale heightmap PNG")
		shadePath    = flag.String("hillshade", "", "write a hillshaded PNG")
		previewSize  = flag.Int("preview_size", 512, "long side of preview images in pixels (0 keeps one pixel per vertex)")
		variants     = flag.Int("variants", 1, "number of terrains to build; more than one builds a batch with consecutive seeds")
		workers      = flag.Int("workers", 4, "batch worker count")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[quickscape] ", log.LstdFlags|log.Lmicroseconds)

	cfg := config.Default()
	if p := strings.TrimSpace(*configPath); p != "" {
		loaded, err := config.Load(p)
		if err != nil {
			logger.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	settings := config.NewSettings(cfg)
	if s := strings.TrimSpace(*seedFlag); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			logger.Fatalf("parse -seed: %v", err)
		}
		settings.SetSeed(seed)
	}
	if a := strings.TrimSpace(*algorithm); a != "" {
		settings.SetAlgorithm(a)
	}
	if *subdivisions >= 0 {
		settings.SetSubdivisions(*subdivisions, *subdivisions)
	}

	params, err := settings.Params()
	if err != nil {
		logger.Fatalf("settings: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := exporter{
		obj:         *objPath,
		mesh:        *meshPath,
		heightmap:   *heightPath,
		hillshade:   *shadePath,
		previewSize: *previewSize,
		logger:      logger,
	}

	gen := terrain.NewGenerator()
	profiling.Reset()

	if *variants > 1 {
		runBatch(ctx, gen, params, *variants, *workers, out, logger)
		return
	}

	result, err := gen.Generate(ctx, params)
	if err != nil {
		logger.Fatalf("generate: %v", err)
	}
	logOutput(logger, result)
	logger.Printf("timings: %s", profiling.TopN(5))

	if err := out.write(gen.Slot().Current(), -1); err != nil {
		logger.Fatalf("export: %v", err)
	}
}

func runBatch(ctx context.Context, gen *terrain.Generator, base terrain.Params, n, workers int, out exporter, logger *log.Logger) {
	// Pin a base seed so the batch is reproducible from the log.
	first, err := gen.Build(base)
	if err != nil {
		logger.Fatalf("generate: %v", err)
	}
	params := make([]terrain.Params, n-1)
	for i := range params {
		params[i] = base.WithSeed(first.Seed + int64(i+1))
	}
	rest, err := gen.BuildBatch(ctx, params, workers)
	if err != nil {
		logger.Printf("batch: %v", err)
	}

	outputs := append([]*terrain.Output{first}, rest...)
	for i, o := range outputs {
		if o == nil {
			continue
		}
		logOutput(logger, o)
		if err := out.write(o, i); err != nil {
			logger.Fatalf("export %d: %v", i, err)
		}
	}
	logger.Printf("timings: %s", profiling.TopN(5))
	if err != nil {
		os.Exit(1)
	}
}

func logOutput(logger *log.Logger, o *terrain.Output) {
	lo, hi := o.Mesh.HeightRange()
	logger.Printf("terrain seed=%d algorithm=%s grid=%dx%d vertices=%d triangles=%d height=[%.3f, %.3f]",
		o.Seed, o.Params.Algorithm, o.Mesh.Columns, o.Mesh.Rows,
		o.Mesh.VertexCount(), o.Mesh.TriangleCount(), lo, hi)
}
