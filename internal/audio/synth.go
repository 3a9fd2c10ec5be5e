package audio

import (
	"math"
	"math/rand"
	"time"
)

// MaxAmplitude is the largest magnitude of a signed 16-bit sample.
const MaxAmplitude = math.MaxInt16

// PopParams describes a noise burst with an exponential decay envelope.
type PopParams struct {
	SampleRate int
	Duration   time.Duration
	Decay      float64 // envelope is exp(-Decay*t), t in seconds
}

// Samples returns the number of samples a burst with these params spans.
func (p PopParams) Samples() int {
	if p.SampleRate <= 0 || p.Duration <= 0 {
		return 0
	}
	return int(float64(p.SampleRate) * p.Duration.Seconds())
}

// Synthesize renders the pop burst as mono 16-bit PCM. The waveform is
// normalized so its peak maps to MaxAmplitude. A silent burst yields an
// all-zero buffer.
func Synthesize(p PopParams, rng *rand.Rand) []int16 {
	n := p.Samples()
	if n == 0 {
		return nil
	}

	wave := make([]float64, n)
	step := 0.0
	if n > 1 {
		step = p.Duration.Seconds() / float64(n-1)
	}

	peak := 0.0
	for i := range wave {
		t := float64(i) * step
		v := rng.NormFloat64() * math.Exp(-p.Decay*t)
		wave[i] = v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	pcm := make([]int16, n)
	if peak == 0 {
		return pcm
	}
	for i, v := range wave {
		pcm[i] = int16(v / peak * MaxAmplitude)
	}
	return pcm
}
