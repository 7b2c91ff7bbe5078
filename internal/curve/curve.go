package curve

// Curve maps an input scalar onto a range through piecewise-linear
// interpolation over monotonically increasing domain breakpoints. It is the
// primitive that turns raw audio features into bounded visual parameters
// (opacity, sizes, hues). Domains must be strictly increasing with at least
// two breakpoints; that is a precondition on the caller, not a runtime
// condition this package recovers from.
type Curve struct {
	Domain     []float64
	Range      []float64
	ClampLeft  bool
	ClampRight bool
	Ease       EaseFunc
}

// New builds a curve clamped on both sides, the mode used almost
// everywhere: outside the domain the output sticks to the nearest range
// endpoint instead of extrapolating.
func New(domain, codomain []float64) Curve {
	return Curve{
		Domain:     domain,
		Range:      codomain,
		ClampLeft:  true,
		ClampRight: true,
	}
}

// NewEased is New with an easing applied to the in-segment position.
// Easings are meant for envelope fades, not for energy mappings.
func NewEased(domain, codomain []float64, ease EaseFunc) Curve {
	c := New(domain, codomain)
	c.Ease = ease
	return c
}

// At evaluates the curve for value.
func (c Curve) At(value float64) float64 {
	n := len(c.Domain)
	if n < 2 || len(c.Range) != n {
		return 0
	}

	if value <= c.Domain[0] {
		if c.ClampLeft {
			return c.Range[0]
		}
		return c.segment(0, value)
	}
	if value >= c.Domain[n-1] {
		if c.ClampRight {
			return c.Range[n-1]
		}
		return c.segment(n-2, value)
	}

	for i := 0; i < n-1; i++ {
		if value <= c.Domain[i+1] {
			return c.segment(i, value)
		}
	}
	return c.Range[n-1]
}

func (c Curve) segment(i int, value float64) float64 {
	d0, d1 := c.Domain[i], c.Domain[i+1]
	if d1 == d0 {
		return c.Range[i+1]
	}
	t := (value - d0) / (d1 - d0)
	if c.Ease != nil {
		t = c.Ease(t)
	}
	return Lerp(c.Range[i], c.Range[i+1], t)
}

// Remap is the two-breakpoint clamped mapping, common enough to avoid
// building a Curve for it. A degenerate domain (d1 == d0) returns r1 for
// values at or past the breakpoint and r0 below it.
func Remap(value, d0, d1, r0, r1 float64) float64 {
	if d1 == d0 {
		if value >= d1 {
			return r1
		}
		return r0
	}
	t := (value - d0) / (d1 - d0)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Lerp(r0, r1, t)
}

// Lerp interpolates linearly between a and b; t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the unit interval.
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
