package overlay

import (
	"fmt"
	"sort"

	"github.com/tdewolff/canvas"

	"github.com/glintfx/glint/internal/feature"
	"github.com/glintfx/glint/internal/show"
)

// Overlay is one decorative animation layer. Draw must behave as a pure
// function of (frameIndex, scene): the host hands out frames in arbitrary
// order across workers, so nothing an overlay computes for one frame may
// leak into another through mutable state. Memoizing a seeded layout is
// fine as long as the cache key is the seed that produced it.
type Overlay interface {
	Name() string
	Draw(gc *canvas.Context, frameIndex int, scene *Scene)
}

// Scene bundles everything a draw call may read: the immutable feature
// store, prebuilt windowed series for the common channels, the show
// context, and the canvas dimensions. One Scene is shared by all workers;
// every field is read-only after NewScene returns.
type Scene struct {
	Store  *feature.Store
	Show   show.Context
	Width  float64
	Height float64

	RMS   *feature.Series
	Sub   *feature.Series
	Low   *feature.Series
	Mid   *feature.Series
	High  *feature.Series
	Onset *feature.Series
}

// NewScene builds the per-session scene, including the prefix-sum series
// each channel is smoothed through.
func NewScene(store *feature.Store, ctx show.Context, width, height float64) *Scene {
	return &Scene{
		Store:  store,
		Show:   ctx,
		Width:  width,
		Height: height,
		RMS:    feature.NewSeries(store, func(f feature.FrameRecord) float64 { return f.RMS }),
		Sub:    feature.NewSeries(store, func(f feature.FrameRecord) float64 { return f.Sub }),
		Low:    feature.NewSeries(store, func(f feature.FrameRecord) float64 { return f.Low }),
		Mid:    feature.NewSeries(store, func(f feature.FrameRecord) float64 { return f.Mid }),
		High:   feature.NewSeries(store, func(f feature.FrameRecord) float64 { return f.High }),
		Onset:  feature.NewSeries(store, func(f feature.FrameRecord) float64 { return f.Onset }),
	}
}

var registry = map[string]func() Overlay{
	"starfield": func() Overlay { return NewStarfield() },
	"lightning": func() Overlay { return NewLightning() },
	"spiro":     func() Overlay { return NewSpiro() },
	"shatter":   func() Overlay { return NewShatter() },
	"hilbert":   func() Overlay { return NewHilbertMaze() },
}

// Names returns the available overlay identifiers.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build instantiates fresh overlay instances for the given names; an empty
// list means the whole gallery. Instances are never shared between render
// workers, so each worker calls Build for itself.
func Build(names []string) ([]Overlay, error) {
	if len(names) == 0 {
		names = Names()
	}
	out := make([]Overlay, 0, len(names))
	for _, name := range names {
		ctor, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("unknown overlay %q (available: %v)", name, Names())
		}
		out = append(out, ctor())
	}
	return out, nil
}
