package curve

// EaseFunc shapes the normalized position inside a curve segment before it
// is mapped onto the range.
type EaseFunc func(t float64) float64

// EaseLinear leaves the position untouched.
func EaseLinear(t float64) float64 { return t }

// EaseInOutCubic accelerates into and decelerates out of the segment.
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOutCubic starts fast and settles smoothly.
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}
