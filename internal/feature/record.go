package feature

// FrameRecord carries the precomputed audio features for one video frame.
// Records are produced upstream, one per output frame, and consumed
// read-only; every band value is normalized to roughly 0..1.
type FrameRecord struct {
	RMS float64 `json:"rms"`

	Sub  float64 `json:"sub"`
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`

	Chroma   [12]float64 `json:"chroma"`   // pitch-class energy, C..B
	Contrast [7]float64  `json:"contrast"` // spectral-contrast bands

	Centroid float64 `json:"centroid"`
	Flatness float64 `json:"flatness"`
	Onset    float64 `json:"onset"`
	Beat     bool    `json:"beat"`
}

// Selector extracts one scalar channel from a record.
type Selector func(FrameRecord) float64

// DominantChroma returns the pitch class with the most energy.
func (f FrameRecord) DominantChroma() int {
	best := 0
	for i := 1; i < len(f.Chroma); i++ {
		if f.Chroma[i] > f.Chroma[best] {
			best = i
		}
	}
	return best
}

// BandAverage is the mean of the four band energies.
func (f FrameRecord) BandAverage() float64 {
	return (f.Sub + f.Low + f.Mid + f.High) / 4
}
