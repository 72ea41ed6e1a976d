// Package assets defines the stock fixture catalog the generators emit and
// the write paths for each asset kind.
package assets

import (
	"math/rand"
	"path/filepath"

	"corepulse-assetgen/internal/synth"
	"corepulse-assetgen/internal/wav"
)

// SoundKind selects the synthesis archetype.
type SoundKind int

const (
	SoundCollision SoundKind = iota
	SoundBounce
	SoundAmbient
)

func (k SoundKind) String() string {
	switch k {
	case SoundCollision:
		return "collision"
	case SoundBounce:
		return "bounce"
	case SoundAmbient:
		return "ambient"
	}
	return "unknown"
}

// SoundDef is one WAV fixture.
type SoundDef struct {
	File      string
	Kind      SoundKind
	Frequency float64
	Duration  float64
	Desc      string
}

// Sounds is the stock fixture set the engine's audio tests load.
var Sounds = []SoundDef{
	{File: "collision_metal.wav", Kind: SoundCollision, Frequency: 800, Duration: 0.4, Desc: "High-pitched metallic collision"},
	{File: "collision_soft.wav", Kind: SoundCollision, Frequency: 300, Duration: 0.3, Desc: "Lower-pitched soft collision"},
	{File: "bounce.wav", Kind: SoundBounce, Frequency: 240, Duration: 0.25, Desc: "Bounce/impact sound"},
	{File: "ambient_hum.wav", Kind: SoundAmbient, Frequency: 80, Duration: 5.0, Desc: "Low frequency ambient hum"},
	{File: "ambient_wind.wav", Kind: SoundAmbient, Frequency: 120, Duration: 5.0, Desc: "Higher frequency ambient atmosphere"},
}

// WriteSound synthesizes def and writes it under dir as stereo 16-bit PCM.
// The seed fixes the noise layers so reruns produce identical bytes.
func WriteSound(dir string, def SoundDef, sampleRate int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	p := synth.Params{Frequency: def.Frequency, Duration: def.Duration, SampleRate: sampleRate}

	var samples []float64
	peak := synth.PeakFull
	switch def.Kind {
	case SoundCollision:
		samples = synth.Collision(p, rng)
	case SoundBounce:
		samples = synth.Bounce(p)
	case SoundAmbient:
		samples = synth.Ambient(p, rng)
		peak = synth.PeakAmbient
	}

	pcm := synth.Quantize(samples, peak)
	return wav.WriteFile(filepath.Join(dir, def.File), sampleRate, 2, pcm)
}
