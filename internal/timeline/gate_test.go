package timeline

import (
	"math"
	"testing"
)

func testGate() Gate {
	return Gate{
		CycleLength:     100,
		VisibleDuration: 40,
		FadeInFrames:    10,
		FadeOutFrames:   10,
	}
}

func TestEnvelopeMidwayThroughFadeIn(t *testing.T) {
	p := testGate().At(5)
	if math.Abs(p.Envelope-0.5) > 1e-9 {
		t.Fatalf("frame 5: envelope=%v want 0.5", p.Envelope)
	}
	if p.State != FadingIn {
		t.Fatalf("frame 5: state=%v want fading-in", p.State)
	}
}

func TestHiddenPastVisibleDuration(t *testing.T) {
	p := testGate().At(50)
	if p.Envelope != 0 {
		t.Fatalf("frame 50: envelope=%v want 0", p.Envelope)
	}
	if p.Visible {
		t.Fatal("frame 50: expected not visible")
	}
	if p.State != Hidden {
		t.Fatalf("frame 50: state=%v want hidden", p.State)
	}
}

func TestPeriodicity(t *testing.T) {
	g := testGate()
	for i := 0; i < 250; i++ {
		a, b := g.At(i), g.At(i+g.CycleLength)
		if a.Envelope != b.Envelope || a.State != b.State || a.Progress != b.Progress {
			t.Fatalf("frame %d and %d differ: %+v vs %+v", i, i+g.CycleLength, a, b)
		}
	}
	first, wrapped := g.At(0), g.At(100)
	if first.Envelope != wrapped.Envelope {
		t.Fatalf("gate(0)=%v gate(100)=%v", first.Envelope, wrapped.Envelope)
	}
}

func TestEnvelopeStaysInUnitInterval(t *testing.T) {
	g := testGate()
	for i := -200; i < 500; i++ {
		p := g.At(i)
		if p.Envelope < 0 || p.Envelope > 1 {
			t.Fatalf("frame %d: envelope %v out of [0,1]", i, p.Envelope)
		}
	}
}

func TestEnvelopeContinuity(t *testing.T) {
	g := testGate()
	// The biggest legal step is one frame's worth of fade slope.
	maxStep := 1.0/float64(g.FadeInFrames) + 1e-9
	prev := g.At(0).Envelope
	for i := 1; i < 300; i++ {
		cur := g.At(i).Envelope
		if math.Abs(cur-prev) > maxStep {
			t.Fatalf("frame %d: envelope jumped %v -> %v", i, prev, cur)
		}
		prev = cur
	}
}

func TestHeldRegionIsFullyOpaque(t *testing.T) {
	g := testGate()
	for i := g.FadeInFrames; i < g.VisibleDuration-g.FadeOutFrames; i++ {
		p := g.At(i)
		if math.Abs(p.Envelope-1) > 1e-9 {
			t.Fatalf("frame %d: envelope=%v want 1", i, p.Envelope)
		}
		if p.State != Held {
			t.Fatalf("frame %d: state=%v want held", i, p.State)
		}
	}
}

func TestNegativeFrameIndexUsesNonNegativeModulo(t *testing.T) {
	g := testGate()
	p := g.At(-95) // equivalent cycle position 5
	if math.Abs(p.Envelope-g.At(5).Envelope) > 1e-9 {
		t.Fatalf("frame -95: envelope=%v want %v", p.Envelope, g.At(5).Envelope)
	}
	if p.CycleIndex != -1 {
		t.Fatalf("frame -95: cycle index=%d want -1", p.CycleIndex)
	}
}

func TestOffsetStaggersTheCycle(t *testing.T) {
	g := testGate()
	g.OffsetFrames = 30
	base := testGate()
	for i := 0; i < 200; i++ {
		if g.At(i+30).Envelope != base.At(i).Envelope {
			t.Fatalf("offset gate not shifted at frame %d", i)
		}
	}
}

func TestOverlappingFadesReducePeak(t *testing.T) {
	g := Gate{CycleLength: 100, VisibleDuration: 10, FadeInFrames: 8, FadeOutFrames: 8}
	peak := 0.0
	for i := 0; i < 10; i++ {
		if e := g.At(i).Envelope; e > peak {
			peak = e
		}
	}
	if peak >= 1 {
		t.Fatalf("overlapping fades should lower the peak, got %v", peak)
	}
	if peak <= 0 {
		t.Fatal("peak collapsed to zero")
	}
}

func TestZeroLengthCycleIsHidden(t *testing.T) {
	g := Gate{CycleLength: 0, VisibleDuration: 0}
	p := g.At(17)
	if p.Visible || p.Envelope != 0 {
		t.Fatalf("degenerate gate should be hidden, got %+v", p)
	}
}

func TestZeroFadesSnapOpen(t *testing.T) {
	g := Gate{CycleLength: 60, VisibleDuration: 30}
	for _, i := range []int{0, 1, 15, 29} {
		if e := g.At(i).Envelope; math.Abs(e-1) > 1e-9 {
			t.Fatalf("frame %d: envelope=%v want 1", i, e)
		}
	}
	if e := g.At(30).Envelope; e != 0 {
		t.Fatalf("frame 30: envelope=%v want 0", e)
	}
}

func TestEnergyGate(t *testing.T) {
	g := testGate()
	g.EnergyThreshold = 0.28
	if p := g.GatedAt(20, 0.1); p.Envelope != 0 || p.Visible {
		t.Fatalf("quiet frame should be gated out, got %+v", p)
	}
	if p := g.GatedAt(20, 0.5); math.Abs(p.Envelope-1) > 1e-9 {
		t.Fatalf("loud frame should pass through, got %+v", p)
	}
}

func TestStatelessRecomputation(t *testing.T) {
	g := testGate()
	// Evaluate far apart and out of order; results for a given frame must
	// not depend on what was evaluated before.
	want := g.At(7)
	g.At(9000)
	g.At(3)
	if got := g.At(7); got != want {
		t.Fatalf("recomputed phase differs: %+v vs %+v", got, want)
	}
}

func TestCycleIndexAdvances(t *testing.T) {
	g := testGate()
	if got := g.At(5).CycleIndex; got != 0 {
		t.Fatalf("frame 5: cycle=%d want 0", got)
	}
	if got := g.At(105).CycleIndex; got != 1 {
		t.Fatalf("frame 105: cycle=%d want 1", got)
	}
	if got := g.At(250).CycleIndex; got != 2 {
		t.Fatalf("frame 250: cycle=%d want 2", got)
	}
}
