package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"runtime"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"golang.org/x/sync/errgroup"

	"github.com/glintfx/glint/internal/overlay"
)

// Config configures a Renderer.
type Config struct {
	Width    int
	Height   int
	Overlays []string // empty means the whole gallery
	Scene    *overlay.Scene
	Log      *log.Logger
}

// Renderer produces finished frames from a scene. The renderer itself
// holds only immutable session data; all per-worker mutable state (the
// overlay instances with their layout caches) lives in Sessions, one per
// worker, mirroring the independent-process model the overlays are
// written for.
type Renderer struct {
	width  int
	height int
	names  []string
	scene  *overlay.Scene
	log    *log.Logger
}

// New validates the configuration and builds a Renderer.
func New(cfg Config) (*Renderer, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: width=%d height=%d", cfg.Width, cfg.Height)
	}
	if cfg.Scene == nil {
		return nil, fmt.Errorf("renderer needs a scene")
	}
	if _, err := overlay.Build(cfg.Overlays); err != nil {
		return nil, err
	}
	if cfg.Log == nil {
		cfg.Log = log.New(os.Stderr, "", 0)
	}
	return &Renderer{
		width:  cfg.Width,
		height: cfg.Height,
		names:  cfg.Overlays,
		scene:  cfg.Scene,
		log:    cfg.Log,
	}, nil
}

// Session is one worker's view of the render: its own overlay instances
// over the shared immutable scene. Sessions are not safe for concurrent
// use; make one per goroutine.
type Session struct {
	r        *Renderer
	overlays []overlay.Overlay
}

// NewSession builds fresh overlay instances for a worker.
func (r *Renderer) NewSession() (*Session, error) {
	overlays, err := overlay.Build(r.names)
	if err != nil {
		return nil, err
	}
	return &Session{r: r, overlays: overlays}, nil
}

// Frame renders frame i. Rendering the same index any number of times, in
// any order, in any session, yields pixel-identical output.
func (s *Session) Frame(i int) *image.RGBA {
	w := float64(s.r.width)
	h := float64(s.r.height)

	c := canvas.New(w, h)
	gc := canvas.NewContext(c)
	gc.SetFillColor(color.Black)
	gc.DrawPath(0, 0, canvas.Rectangle(w, h))

	for _, ov := range s.overlays {
		ov.Draw(gc, i, s.r.scene)
	}

	// One pixel per canvas unit, so the image matches the configured size.
	return rasterizer.Draw(c, canvas.DPMM(1.0), canvas.SRGBColorSpace{})
}

// RenderAll renders every frame of the scene's store into dir as
// frame_NNNNNN.png using a pool of workers. Frames are deliberately handed
// out in arbitrary order across workers; the determinism contract makes
// the result independent of scheduling.
func (r *Renderer) RenderAll(ctx context.Context, dir string, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	total := r.scene.Store.Len()
	if total == 0 {
		return fmt.Errorf("nothing to render: empty feature store")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	indices := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			sess, err := r.NewSession()
			if err != nil {
				return err
			}
			for i := range indices {
				if err := writePNG(dir, i, sess.Frame(i)); err != nil {
					return err
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(indices)
		for i := 0; i < total; i++ {
			select {
			case indices <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	r.log.Printf("rendered %d frames to %s (%d workers)", total, dir, workers)
	return nil
}
