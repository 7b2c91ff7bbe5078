package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/glintfx/glint/internal/feature"
	"github.com/glintfx/glint/internal/overlay"
	"github.com/glintfx/glint/internal/render"
	"github.com/glintfx/glint/internal/show"
)

func main() {
	var (
		featurePath  = flag.String("features", "", "Path to a JSON feature file (empty: synthesize a demo show)")
		frames       = flag.Int("frames", 900, "Frame count for the synthetic show (ignored with -features)")
		width        = flag.Int("width", 1280, "Frame width in pixels")
		height       = flag.Int("height", 720, "Frame height in pixels")
		seed         = flag.Uint("seed", 0, "Show seed (0: take GLINT_SHOW_SEED from the environment)")
		era          = flag.String("era", "", "Era tag (empty: take GLINT_ERA from the environment)")
		outDir       = flag.String("out", "frames", "Output directory for rendered PNGs")
		workers      = flag.Int("workers", 0, "Render workers (0: one per CPU)")
		overlayNames = flag.String("overlays", "", "Comma-separated overlay names (empty: all)")
		listOverlays = flag.Bool("list-overlays", false, "List available overlays and exit")
		debug        = flag.Bool("debug", false, "Enable verbose logging")
	)

	flag.Parse()

	if *listOverlays {
		for _, name := range overlay.Names() {
			fmt.Println(name)
		}
		return
	}

	if *width <= 0 || *height <= 0 {
		log.Fatalf("invalid dimensions: width=%d height=%d", *width, *height)
	}
	if *featurePath == "" && *frames <= 0 {
		log.Fatalf("frames must be positive (got %d)", *frames)
	}

	logger := log.New(os.Stdout, "[glint] ", log.LstdFlags)
	if !*debug {
		logger.SetOutput(os.Stderr)
		logger.SetFlags(0)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	showCtx := show.FromEnv()
	if *seed != 0 {
		showCtx.ShowSeed = uint32(*seed)
	}
	if *era != "" {
		showCtx.Era = *era
	}

	var store *feature.Store
	if *featurePath != "" {
		var err error
		store, err = feature.Load(*featurePath)
		if err != nil {
			logger.Fatalf("load features: %v", err)
		}
		logger.Printf("loaded %d frames from %s", store.Len(), *featurePath)
	} else {
		store = feature.Synthesize(*frames, showCtx.ShowSeed)
		logger.Printf("synthesized %d frames (seed %d)", store.Len(), showCtx.ShowSeed)
	}

	var names []string
	if *overlayNames != "" {
		for _, name := range strings.Split(*overlayNames, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}

	scene := overlay.NewScene(store, showCtx, float64(*width), float64(*height))
	renderer, err := render.New(render.Config{
		Width:    *width,
		Height:   *height,
		Overlays: names,
		Scene:    scene,
		Log:      logger,
	})
	if err != nil {
		logger.Fatalf("failed to create renderer: %v", err)
	}

	if err := renderer.RenderAll(ctx, *outDir, *workers); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nInterrupted.")
			return
		}
		logger.Fatalf("render error: %v", err)
	}
}
