package timeline

import "github.com/glintfx/glint/internal/curve"

// State identifies where inside its cycle a gated component sits.
type State int

const (
	Hidden State = iota
	FadingIn
	Held
	FadingOut
)

func (s State) String() string {
	switch s {
	case FadingIn:
		return "fading-in"
	case Held:
		return "held"
	case FadingOut:
		return "fading-out"
	default:
		return "hidden"
	}
}

// Gate describes a repeating visibility window. It is evaluated purely per
// frame index: computing frame N never depends on frame N-1, which is what
// lets arbitrary frames render concurrently in independent workers.
type Gate struct {
	CycleLength     int // total period in frames
	VisibleDuration int // frames visible per cycle, <= CycleLength
	FadeInFrames    int // < VisibleDuration
	FadeOutFrames   int // < VisibleDuration
	OffsetFrames    int // stagger applied before computing the cycle
	EnergyThreshold float64
}

// Phase is the per-frame result of evaluating a Gate. It is derived fresh
// on every call; nothing persists between frames.
type Phase struct {
	State      State
	Visible    bool
	Envelope   float64 // 0..1 opacity multiplier
	Progress   float64 // 0..1 position within the visible window
	CycleIndex int     // which repetition of the cycle this frame falls in
}

// At evaluates the gate for a frame index. Degenerate configurations
// (non-positive cycle length or visible duration) yield a hidden phase
// rather than dividing by zero.
func (g Gate) At(frameIndex int) Phase {
	if g.CycleLength <= 0 || g.VisibleDuration <= 0 {
		return Phase{}
	}

	shifted := frameIndex - g.OffsetFrames
	pos := shifted % g.CycleLength
	if pos < 0 {
		pos += g.CycleLength
	}
	cycle := (shifted - pos) / g.CycleLength

	if pos >= g.VisibleDuration {
		return Phase{CycleIndex: cycle}
	}

	visible := float64(g.VisibleDuration)
	progress := float64(pos) / visible

	fadeIn := curve.Remap(progress, 0, float64(g.FadeInFrames)/visible, 0, 1)
	fadeOut := curve.Remap(progress, 1-float64(g.FadeOutFrames)/visible, 1, 1, 0)

	// Overlapping fades simply lower the peak; that is accepted behaviour,
	// not an error.
	envelope := fadeIn
	if fadeOut < envelope {
		envelope = fadeOut
	}

	state := Held
	switch {
	case pos < g.FadeInFrames:
		state = FadingIn
	case pos >= g.VisibleDuration-g.FadeOutFrames:
		state = FadingOut
	}

	return Phase{
		State:      state,
		Visible:    true,
		Envelope:   envelope,
		Progress:   progress,
		CycleIndex: cycle,
	}
}

// GatedAt is At with a hard energy gate on top: unless the smoothed energy
// crosses the threshold the component stays dark for that frame. Components
// that want continuous modulation instead multiply the envelope by their
// own curve of the energy value.
func (g Gate) GatedAt(frameIndex int, energy float64) Phase {
	p := g.At(frameIndex)
	if energy <= g.EnergyThreshold {
		p.Envelope = 0
		p.State = Hidden
		p.Visible = false
	}
	return p
}
