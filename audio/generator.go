package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/ctower/engine"
)

// toneSpec describes the synthesized fallback of a sound without an asset file
type toneSpec struct {
	freq     float64
	duration time.Duration
	noise    bool
	pure     bool // plain sine
}

var tones = [engine.SoundCount]toneSpec{
	engine.SoundPos:         {freq: 660, duration: 120 * time.Millisecond},
	engine.SoundScreamFight: {freq: 220, duration: 250 * time.Millisecond},
	engine.SoundKaboom:      {freq: 80, duration: 400 * time.Millisecond, noise: true},
	engine.SoundScreamBomb:  {freq: 160, duration: 400 * time.Millisecond},
	engine.SoundBonus:       {freq: 880, duration: 120 * time.Millisecond, pure: true},
}

// synthesize renders the fallback tone for s, or nil for an unknown sound
func synthesize(sr beep.SampleRate, s engine.Sound) beep.Streamer {
	if s >= engine.SoundCount {
		return nil
	}
	spec := tones[s]
	var gen beep.Streamer
	switch {
	case spec.noise:
		gen = NewRumbleGenerator(sr, spec.freq)
	case spec.pure:
		if sine, err := generators.SineTone(sr, spec.freq); err == nil {
			gen = &effects.Volume{Streamer: sine, Base: 2, Volume: -3}
			break
		}
		fallthrough
	default:
		gen = NewBuzzGenerator(sr, spec.freq)
	}
	return beep.Take(sr.N(spec.duration), gen)
}

// BuzzGenerator generates a tone with two harmonics and a short fade in
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// RumbleGenerator generates decaying noise over a low sine, used for explosions
type RumbleGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
	seed int64
}

// NewRumbleGenerator creates a rumble generator with a fixed noise seed
func NewRumbleGenerator(sr beep.SampleRate, freq float64) *RumbleGenerator {
	return &RumbleGenerator{
		sr:   sr,
		freq: freq,
		seed: 1,
	}
}

func (g *RumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 8)

		// LCG noise
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*g.freq*t)

		sample := envelope * (0.25*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *RumbleGenerator) Err() error {
	return nil
}
