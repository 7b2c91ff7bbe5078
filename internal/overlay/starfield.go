package overlay

import (
	"image/color"
	"math"

	"github.com/tdewolff/canvas"

	"github.com/glintfx/glint/internal/curve"
	"github.com/glintfx/glint/internal/prng"
	"github.com/glintfx/glint/internal/timeline"
)

const (
	starfieldSeed = 9157
	starCount     = 24

	// Mid-band level at which the twinkle reaches full brightness.
	starfieldLoudLevel = 0.55
)

type star struct {
	x, y  float64 // normalized 0..1 position
	size  float64
	phase float64 // twinkle phase offset
	speed float64 // twinkle rate multiplier
}

// Starfield scatters a fixed constellation of stars whose positions come
// from the show seed and whose twinkle rides the mid band. The field
// fades in and out on a slow cycle.
type Starfield struct {
	gate timeline.Gate

	layoutSeed uint32
	stars      []star
}

func NewStarfield() *Starfield {
	return &Starfield{
		gate: timeline.Gate{
			CycleLength:     420,
			VisibleDuration: 300,
			FadeInFrames:    45,
			FadeOutFrames:   60,
		},
	}
}

func (s *Starfield) Name() string { return "starfield" }

// layout memoizes the generated constellation; it is rebuilt whenever the
// seed input changes and never mutated afterwards.
func (s *Starfield) layout(seed uint32) []star {
	if s.stars != nil && s.layoutSeed == seed {
		return s.stars
	}
	src := prng.New(seed)
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{
			x:     src.Float64(),
			y:     src.Range(0.05, 0.95),
			size:  src.Range(1.2, 3.6),
			phase: src.Range(0, 2*math.Pi),
			speed: src.Range(0.04, 0.11),
		}
	}
	s.layoutSeed = seed
	s.stars = stars
	return stars
}

func (s *Starfield) Draw(gc *canvas.Context, frameIndex int, scene *Scene) {
	phase := s.gate.At(frameIndex)
	if !phase.Visible || phase.Envelope == 0 {
		return
	}

	stars := s.layout(scene.Show.DeriveSeed(starfieldSeed))

	gc.SetStrokeColor(color.NRGBA{})

	midLevel := scene.Mid.Mean(frameIndex, 15)
	brightness := curve.Remap(midLevel, 0.1, starfieldLoudLevel, 0.35, 1)
	hue := 0.55 + float64(scene.Store.At(frameIndex).DominantChroma())/36.0

	for _, st := range stars {
		twinkle := 0.6 + 0.4*math.Sin(st.phase+float64(frameIndex)*st.speed)
		alpha := phase.Envelope * brightness * twinkle
		if alpha <= 0.01 {
			continue
		}
		gc.SetFillColor(hsva(hue, 0.25, 1, alpha))
		gc.DrawPath(st.x*scene.Width, st.y*scene.Height, canvas.Circle(st.size))
	}
}
