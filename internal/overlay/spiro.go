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
	spiroSeed    = 27803
	spiroSamples = 360
	spiroHalfWin = 75 // ~5 s of context at 30 fps
)

// Spiro traces a spirograph rosette whose size and rotation follow the
// smoothed overall loudness. Unlike the gated overlays it never snaps on
// or off: its peak opacity is modulated continuously by energy.
type Spiro struct {
	gate timeline.Gate

	layoutSeed uint32
	haveLayout bool
	bigR       float64
	smallR     float64
	pen        float64
	hue        float64
}

func NewSpiro() *Spiro {
	return &Spiro{
		gate: timeline.Gate{
			CycleLength:     600,
			VisibleDuration: 480,
			FadeInFrames:    60,
			FadeOutFrames:   90,
			OffsetFrames:    120,
		},
	}
}

func (s *Spiro) Name() string { return "spiro" }

// layout draws the rosette's fixed ratios once per seed. Ratios are picked
// from a small set that closes after few revolutions.
func (s *Spiro) layout(seed uint32) {
	if s.haveLayout && s.layoutSeed == seed {
		return
	}
	src := prng.New(seed)
	ratios := [][2]float64{{5, 3}, {7, 3}, {8, 5}, {9, 4}, {11, 7}}
	pick := ratios[src.IntN(len(ratios))]
	s.bigR = pick[0]
	s.smallR = pick[1]
	s.pen = src.Range(0.5, 0.9)
	s.hue = src.Float64()
	s.layoutSeed = seed
	s.haveLayout = true
}

func (s *Spiro) Draw(gc *canvas.Context, frameIndex int, scene *Scene) {
	phase := s.gate.At(frameIndex)
	if !phase.Visible || phase.Envelope == 0 {
		return
	}

	s.layout(scene.Show.DeriveSeed(spiroSeed))

	energy := scene.RMS.Mean(frameIndex, spiroHalfWin)
	scale := curve.Remap(energy, 0.1, 0.7, 0.18, 0.42) * min(scene.Width, scene.Height)
	alpha := phase.Envelope * curve.Remap(energy, 0.05, 0.6, 0.15, 0.85)
	rotation := float64(frameIndex) * (0.004 + energy*0.01)

	p := &canvas.Path{}
	k := s.smallR / s.bigR
	for i := 0; i <= spiroSamples; i++ {
		t := float64(i) / spiroSamples * 2 * math.Pi * s.smallR
		x := (1-k)*math.Cos(t+rotation) + s.pen*k*math.Cos((1-k)/k*(t+rotation))
		y := (1-k)*math.Sin(t+rotation) - s.pen*k*math.Sin((1-k)/k*(t+rotation))
		if i == 0 {
			p.MoveTo(x*scale, y*scale)
		} else {
			p.LineTo(x*scale, y*scale)
		}
	}
	p.Close()

	gc.SetFillColor(color.NRGBA{})
	gc.SetStrokeColor(hsva(s.hue, 0.8, 0.95, alpha))
	gc.SetStrokeWidth(1.2)
	gc.DrawPath(scene.Width/2, scene.Height/2, p)
}
