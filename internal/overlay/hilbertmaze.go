package overlay

import (
	"image/color"

	"github.com/tdewolff/canvas"

	"github.com/glintfx/glint/internal/curve"
	"github.com/glintfx/glint/internal/geom"
	"github.com/glintfx/glint/internal/timeline"
)

const (
	hilbertOrder   = 4 // 16x16 grid, 256 path cells
	hilbertHalfWin = 15
)

// HilbertMaze reveals a Hilbert space-filling path progressively across
// each cycle, so the maze draws itself in and unwinds again. Stroke width
// breathes with the sub band. The path itself is fixed geometry, no seed
// involved.
type HilbertMaze struct {
	gate timeline.Gate
}

func NewHilbertMaze() *HilbertMaze {
	return &HilbertMaze{
		gate: timeline.Gate{
			CycleLength:     540,
			VisibleDuration: 420,
			FadeInFrames:    30,
			FadeOutFrames:   45,
			OffsetFrames:    300,
		},
	}
}

func (h *HilbertMaze) Name() string { return "hilbert" }

func (h *HilbertMaze) Draw(gc *canvas.Context, frameIndex int, scene *Scene) {
	phase := h.gate.At(frameIndex)
	if !phase.Visible || phase.Envelope == 0 {
		return
	}

	side := 1 << hilbertOrder
	total := side * side
	reveal := int(curve.EaseInOutCubic(phase.Progress) * float64(total))
	if reveal < 2 {
		return
	}
	if reveal > total {
		reveal = total
	}

	// Fit the grid into a centered square spanning 60% of the short side.
	span := 0.6 * min(scene.Width, scene.Height)
	cell := span / float64(side-1)
	x0 := (scene.Width - span) / 2
	y0 := (scene.Height - span) / 2

	subLevel := scene.Sub.Mean(frameIndex, hilbertHalfWin)
	width := curve.Remap(subLevel, 0.1, 0.7, 0.8, 2.6)
	alpha := phase.Envelope * 0.7

	p := &canvas.Path{}
	for d := 0; d < reveal; d++ {
		cx, cy := geom.HilbertPoint(hilbertOrder, d)
		x := x0 + float64(cx)*cell
		y := y0 + float64(cy)*cell
		if d == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}

	gc.SetFillColor(color.NRGBA{})
	gc.SetStrokeColor(hsva(0.33, 0.6, 0.9, alpha))
	gc.SetStrokeWidth(width)
	gc.DrawPath(0, 0, p)
}
