package prng

// Source is a mulberry32 pseudo-random sequence. The whole point of it is
// reproducibility: the same seed yields the same stream of values on any
// platform and in any process, so independent render workers can rebuild
// identical "random" layouts without ever exchanging them.
type Source struct {
	state uint32
}

// New creates a Source starting from seed.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// Float64 returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range returns the next value scaled into [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// IntN returns an integer in [0, n). n must be positive.
func (s *Source) IntN(n int) int {
	v := int(s.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Floats draws n consecutive values. Convenience for building layout
// tables in one call at component construction time.
func (s *Source) Floats(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Float64()
	}
	return out
}
