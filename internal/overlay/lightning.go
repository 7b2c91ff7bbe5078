package overlay

import (
	"image/color"

	"github.com/tdewolff/canvas"

	"github.com/glintfx/glint/internal/curve"
	"github.com/glintfx/glint/internal/prng"
	"github.com/glintfx/glint/internal/show"
	"github.com/glintfx/glint/internal/timeline"
)

const (
	lightningSeed     = 40151
	tendrilCount      = 7
	tendrilSegments   = 9
	lightningHalfWin  = 15
	lightningLoudBase = 0.35 // high band must cross this before anything shows
)

type tendril struct {
	points []geomPoint // normalized coordinates, top to bottom
}

type geomPoint struct {
	x, y float64
}

// Lightning throws a burst of jagged tendrils whenever the high band is
// loud enough during its visibility window. The tendril shapes regenerate
// every cycle from a per-cycle seed, so repeats of the effect differ while
// staying reproducible frame-for-frame.
type Lightning struct {
	gate timeline.Gate

	layoutSeed uint32
	haveLayout bool
	tendrils   []tendril
}

func NewLightning() *Lightning {
	return &Lightning{
		gate: timeline.Gate{
			CycleLength:     180,
			VisibleDuration: 24,
			FadeInFrames:    2,
			FadeOutFrames:   14,
			OffsetFrames:    90,
			EnergyThreshold: lightningLoudBase,
		},
	}
}

func (l *Lightning) Name() string { return "lightning" }

func (l *Lightning) layout(seed uint32) []tendril {
	if l.haveLayout && l.layoutSeed == seed {
		return l.tendrils
	}
	src := prng.New(seed)
	tendrils := make([]tendril, tendrilCount)
	for i := range tendrils {
		points := make([]geomPoint, tendrilSegments+1)
		x := src.Float64()
		for j := range points {
			depth := float64(j) / float64(tendrilSegments)
			points[j] = geomPoint{
				x: curve.Clamp01(x + src.Range(-0.06, 0.06)),
				y: 1 - depth*src.Range(0.75, 1),
			}
			x = points[j].x
		}
		tendrils[i] = tendril{points: points}
	}
	l.layoutSeed = seed
	l.haveLayout = true
	l.tendrils = tendrils
	return tendrils
}

func (l *Lightning) Draw(gc *canvas.Context, frameIndex int, scene *Scene) {
	energy := scene.High.Mean(frameIndex, lightningHalfWin)
	phase := l.gate.GatedAt(frameIndex, energy)
	if !phase.Visible || phase.Envelope == 0 {
		return
	}

	base := scene.Show.DeriveSeed(lightningSeed)
	tendrils := l.layout(show.CycleSeed(base, phase.CycleIndex))

	intensity := curve.Remap(energy, lightningLoudBase, 0.8, 0.5, 1)
	alpha := phase.Envelope * intensity

	gc.SetFillColor(color.NRGBA{})
	gc.SetStrokeColor(hsva(0.62, 0.2, 1, alpha))
	gc.SetStrokeWidth(1.6)

	for _, td := range tendrils {
		p := &canvas.Path{}
		p.MoveTo(td.points[0].x*scene.Width, td.points[0].y*scene.Height)
		for _, pt := range td.points[1:] {
			p.LineTo(pt.x*scene.Width, pt.y*scene.Height)
		}
		gc.DrawPath(0, 0, p)
	}

	// A faint sheet flash behind the tendrils on the brightest frames.
	if flash := alpha - 0.75; flash > 0 {
		gc.SetStrokeColor(color.NRGBA{})
		gc.SetFillColor(whiteAlpha(flash * 0.3))
		gc.DrawPath(0, 0, canvas.Rectangle(scene.Width, scene.Height))
	}
}
