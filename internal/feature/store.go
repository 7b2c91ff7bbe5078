package feature

// Store is an immutable, positionally indexed sequence of per-frame
// feature records. It is built once per render session and then only read,
// so any number of workers can consume it concurrently without locking.
type Store struct {
	frames []FrameRecord
}

// NewStore copies records into a fresh Store. The copy is what makes the
// immutability promise hold even if the caller keeps mutating its slice.
func NewStore(records []FrameRecord) *Store {
	frames := make([]FrameRecord, len(records))
	copy(frames, records)
	return &Store{frames: frames}
}

// Len reports the number of frames.
func (s *Store) Len() int {
	return len(s.frames)
}

// At returns the record for index i. Out-of-range indices clamp to the
// nearest valid frame; an empty store yields a zero record.
func (s *Store) At(i int) FrameRecord {
	n := len(s.frames)
	if n == 0 {
		return FrameRecord{}
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return s.frames[i]
}

// Window averages sel over the symmetric window around center.
func (s *Store) Window(center, halfWidth int, sel Selector) float64 {
	return Aggregate(s.frames, center, halfWidth, sel)
}

// Aggregate computes the mean of sel over the frames within halfWidth of
// centerIndex, inclusive on both ends. The window shrinks at the sequence
// boundaries rather than wrapping or zero-padding. It is pure and keeps no
// state, so calls may happen in any order, on any goroutine, any number of
// times, and always produce bit-identical results.
func Aggregate(frames []FrameRecord, centerIndex, halfWidth int, sel Selector) float64 {
	n := len(frames)
	if n == 0 {
		return 0
	}
	if centerIndex < 0 {
		centerIndex = 0
	}
	if centerIndex >= n {
		centerIndex = n - 1
	}
	if halfWidth < 0 {
		halfWidth = 0
	}

	lo := centerIndex - halfWidth
	if lo < 0 {
		lo = 0
	}
	hi := centerIndex + halfWidth
	if hi >= n {
		hi = n - 1
	}

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += sel(frames[i])
	}
	return sum / float64(hi-lo+1)
}

// Series is a prefix-sum view over one channel of a Store, built once per
// render session. It answers the same windowed mean as Aggregate in O(1)
// per lookup while staying immutable, which keeps per-frame cost flat when
// a channel is sampled by many overlays.
type Series struct {
	prefix []float64 // prefix[i] = sum of the first i values
}

// NewSeries extracts sel from every frame of the store and accumulates the
// prefix sums.
func NewSeries(s *Store, sel Selector) *Series {
	prefix := make([]float64, s.Len()+1)
	for i, f := range s.frames {
		prefix[i+1] = prefix[i] + sel(f)
	}
	return &Series{prefix: prefix}
}

// Len reports the number of frames covered.
func (se *Series) Len() int {
	return len(se.prefix) - 1
}

// Mean returns the windowed mean around center with the same clamping and
// boundary-shrink semantics as Aggregate.
func (se *Series) Mean(center, halfWidth int) float64 {
	n := se.Len()
	if n == 0 {
		return 0
	}
	if center < 0 {
		center = 0
	}
	if center >= n {
		center = n - 1
	}
	if halfWidth < 0 {
		halfWidth = 0
	}

	lo := center - halfWidth
	if lo < 0 {
		lo = 0
	}
	hi := center + halfWidth
	if hi >= n {
		hi = n - 1
	}

	return (se.prefix[hi+1] - se.prefix[lo]) / float64(hi-lo+1)
}
