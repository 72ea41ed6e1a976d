package synth

import (
	"math"
	"math/rand"
)

// Quantization peaks. Ambient clips are mixed at roughly half scale so they
// sit under gameplay sounds without a mixer.
const (
	PeakFull    int16 = 32767
	PeakAmbient int16 = 16383
)

// Params describes one synthesized clip.
type Params struct {
	Frequency  float64 // base frequency in Hz
	Duration   float64 // seconds
	SampleRate int
}

// timeAxis returns int(rate*duration) evenly spaced sample times spanning
// [0, duration], endpoint included.
func timeAxis(p Params) []float64 {
	n := int(float64(p.SampleRate) * p.Duration)
	if n <= 0 {
		return nil
	}
	t := make([]float64, n)
	if n > 1 {
		step := p.Duration / float64(n-1)
		for i := range t {
			t[i] = float64(i) * step
		}
	}
	return t
}

// Collision synthesizes an impact: a frequency sweep starting at twice the
// base frequency and decaying exponentially toward the low end, under an
// exponential amplitude envelope, blended with low-level noise for texture.
func Collision(p Params, rng *rand.Rand) []float64 {
	t := timeAxis(p)
	out := make([]float64, len(t))
	startFreq := p.Frequency * 2
	phase := 0.0
	for i := range t {
		freq := startFreq * math.Exp(-3*t[i]/p.Duration)
		phase += 2 * math.Pi * freq / float64(p.SampleRate)
		env := math.Exp(-5 * t[i] / p.Duration)
		out[i] = 0.8*math.Sin(phase)*env + 0.2*rng.NormFloat64()*0.1
	}
	return out
}

// Bounce synthesizes two time-disjoint segments: a short high-frequency ping
// at the start and a lower thump beginning shortly after, summed wherever
// both apply.
func Bounce(p Params) []float64 {
	const (
		pingDuration = 0.05
		thumpStart   = 0.06
	)
	t := timeAxis(p)
	out := make([]float64, len(t))
	pingFreq := p.Frequency * 4
	thumpFreq := p.Frequency * 0.8
	for i := range t {
		if t[i] < pingDuration {
			out[i] = 0.7 * math.Sin(2*math.Pi*pingFreq*t[i]) * math.Exp(-20*t[i])
		}
		if t[i] >= thumpStart {
			tt := t[i] - thumpStart
			out[i] += 0.5 * math.Sin(2*math.Pi*thumpFreq*tt) * math.Exp(-8*tt)
		}
	}
	return out
}

// Ambient synthesizes a loopable drone: three harmonically related sine
// layers under slow amplitude modulation, with additive noise and a linear
// 0.5s fade at both ends so the clip loops without a seam.
func Ambient(p Params, rng *rand.Rand) []float64 {
	t := timeAxis(p)
	out := make([]float64, len(t))
	for i := range t {
		s := 0.3*math.Sin(2*math.Pi*p.Frequency*t[i]) +
			0.2*math.Sin(2*math.Pi*p.Frequency*1.5*t[i]) +
			0.15*math.Sin(2*math.Pi*p.Frequency*2*t[i])
		s *= 1 + 0.1*math.Sin(2*math.Pi*0.5*t[i])
		out[i] = s + rng.NormFloat64()*0.05
	}
	applyFade(out, int(float64(p.SampleRate)*0.5))
	return out
}

// applyFade applies a linear fade-in over the first n samples and a linear
// fade-out over the last n.
func applyFade(samples []float64, n int) {
	if n > len(samples)/2 {
		n = len(samples) / 2
	}
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		gain := float64(i) / float64(n-1)
		samples[i] *= gain
		samples[len(samples)-1-i] *= gain
	}
}

// Quantize clamps samples to [-1, 1], scales them to peak, and duplicates
// the mono signal into interleaved stereo frames.
func Quantize(samples []float64, peak int16) []int16 {
	out := make([]int16, len(samples)*2)
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int16(s * float64(peak))
		out[i*2] = v
		out[i*2+1] = v
	}
	return out
}
