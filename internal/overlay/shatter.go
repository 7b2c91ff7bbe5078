package overlay

import (
	"image/color"

	"github.com/tdewolff/canvas"

	"github.com/glintfx/glint/internal/curve"
	"github.com/glintfx/glint/internal/geom"
	"github.com/glintfx/glint/internal/prng"
	"github.com/glintfx/glint/internal/timeline"
)

const (
	shatterSeed     = 61129
	shatterSites    = 12
	shatterHalfWin  = 15
	shatterLoudness = 0.28 // onset level where cracks reach full width
)

type shatterKey struct {
	seed          uint32
	width, height float64
}

// Shatter lays a web of Voronoi cracks over the frame. Crack width
// breathes with the onset aggregate and beat frames flash the whole web.
type Shatter struct {
	gate timeline.Gate

	key   shatterKey
	valid bool
	edges []geom.Segment
}

func NewShatter() *Shatter {
	return &Shatter{
		gate: timeline.Gate{
			CycleLength:     360,
			VisibleDuration: 150,
			FadeInFrames:    12,
			FadeOutFrames:   30,
			OffsetFrames:    200,
		},
	}
}

func (s *Shatter) Name() string { return "shatter" }

// web memoizes the Voronoi edges; the cache key includes the canvas size
// because the diagram is built in canvas coordinates.
func (s *Shatter) web(seed uint32, width, height float64) []geom.Segment {
	key := shatterKey{seed: seed, width: width, height: height}
	if s.valid && s.key == key {
		return s.edges
	}
	src := prng.New(seed)
	sites := make([]geom.Point, shatterSites)
	for i := range sites {
		sites[i] = geom.Point{
			X: src.Range(0.05, 0.95) * width,
			Y: src.Range(0.05, 0.95) * height,
		}
	}
	s.edges = geom.VoronoiEdges(sites, width, height)
	s.key = key
	s.valid = true
	return s.edges
}

func (s *Shatter) Draw(gc *canvas.Context, frameIndex int, scene *Scene) {
	phase := s.gate.At(frameIndex)
	if !phase.Visible || phase.Envelope == 0 {
		return
	}

	edges := s.web(scene.Show.DeriveSeed(shatterSeed), scene.Width, scene.Height)

	onset := scene.Onset.Mean(frameIndex, shatterHalfWin)
	width := curve.Remap(onset, 0, shatterLoudness, 0.4, 2.2)
	alpha := phase.Envelope * curve.Remap(onset, 0, shatterLoudness, 0.25, 0.8)
	if scene.Store.At(frameIndex).Beat {
		alpha = curve.Clamp01(alpha * 1.5)
	}

	gc.SetFillColor(color.NRGBA{})
	gc.SetStrokeColor(hsva(0.08, 0.15, 0.95, alpha))
	gc.SetStrokeWidth(width)

	for _, e := range edges {
		p := &canvas.Path{}
		p.MoveTo(e.A.X, e.A.Y)
		p.LineTo(e.B.X, e.B.Y)
		gc.DrawPath(0, 0, p)
	}
}
