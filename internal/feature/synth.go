package feature

import (
	"math"

	"github.com/glintfx/glint/internal/prng"
)

// Synthesize builds a plausible-looking show of n frames without any real
// audio: slow sine swells per band, a steady beat grid, and seeded jitter.
// The same (n, seed) always yields the same store, so demo renders are as
// reproducible as real ones.
func Synthesize(n int, seed uint32) *Store {
	src := prng.New(seed)
	frames := make([]FrameRecord, n)

	beatEvery := 15 + src.IntN(8) // roughly 110-180 bpm at 30 fps
	chromaRoot := src.IntN(12)

	for i := range frames {
		t := float64(i) / 30.0

		sub := 0.5 + 0.45*math.Sin(t*0.6)
		low := 0.45 + 0.4*math.Sin(t*0.9+0.7)
		mid := 0.4 + 0.35*math.Sin(t*1.4+1.3)
		high := 0.3 + 0.3*math.Sin(t*2.2+2.1)

		jitter := func(v float64) float64 {
			return clamp01(v + src.Range(-0.05, 0.05))
		}

		f := FrameRecord{
			Sub:      jitter(sub),
			Low:      jitter(low),
			Mid:      jitter(mid),
			High:     jitter(high),
			Centroid: clamp01(0.3 + 0.25*math.Sin(t*0.8) + src.Range(-0.03, 0.03)),
			Flatness: clamp01(0.2 + src.Range(0, 0.1)),
			Beat:     i%beatEvery == 0,
		}
		f.RMS = clamp01(0.15 + 0.7*f.BandAverage())
		if f.Beat {
			f.Onset = src.Range(0.7, 1)
		} else {
			f.Onset = src.Range(0, 0.15)
		}

		// A drifting tonal center with some spread keeps the chroma vector
		// from looking uniform.
		root := (chromaRoot + i/240) % 12
		for c := range f.Chroma {
			f.Chroma[c] = src.Range(0, 0.2)
		}
		f.Chroma[root] = src.Range(0.6, 1)
		f.Chroma[(root+7)%12] = src.Range(0.3, 0.7)

		for c := range f.Contrast {
			f.Contrast[c] = clamp01(0.4 + 0.3*math.Sin(t*1.1+float64(c)) + src.Range(-0.05, 0.05))
		}

		frames[i] = f
	}

	return &Store{frames: frames}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
