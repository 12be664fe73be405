// Package audio plays the game's sound effects through the system speaker.
// Clips are synthesized on demand, so the binary ships no sound files.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Clip ids understood by Build. They match the ids the game emits.
const (
	ClipPluck     = "pluck"
	ClipExplosion = "explosion"
	ClipCollect   = "collect"
)

// Clip lengths
const (
	PluckDuration     = 120 * time.Millisecond
	ExplosionDuration = 450 * time.Millisecond
	CollectDuration   = 180 * time.Millisecond
)

// Build returns a finite streamer for clip at the given volume (0..1).
// It reports false for an unknown clip id.
func Build(clip string, rate beep.SampleRate, volume float64) (beep.Streamer, bool) {
	var s beep.Streamer
	switch clip {
	case ClipPluck:
		s = pluck(rate)
	case ClipExplosion:
		s = explosion(rate)
	case ClipCollect:
		s = collect(rate)
	default:
		return nil, false
	}
	return withVolume(s, volume), true
}

// pluck is a short decaying A5 with its octave, used for wall bounces.
func pluck(rate beep.SampleRate) beep.Streamer {
	n := rate.N(PluckDuration)
	fund, _ := generators.SineTone(rate, 880)
	over, _ := generators.SineTone(rate, 1760)
	mixed := beep.Mix(
		withVolume(beep.Take(n, fund), 0.7),
		withVolume(beep.Take(n, over), 0.3),
	)
	return &decay{streamer: mixed, rate: rate, total: n, speed: 30}
}

// explosion is filtered noise over a low rumble.
func explosion(rate beep.SampleRate) beep.Streamer {
	return &noiseBurst{
		rate:  rate,
		total: rate.N(ExplosionDuration),
		rng:   rand.New(rand.NewSource(1)),
	}
}

// collect is a fast downward square sweep, a classic pickup "zap".
func collect(rate beep.SampleRate) beep.Streamer {
	n := rate.N(CollectDuration)
	return &decay{
		streamer: &sweep{rate: rate, from: 1400, to: 500, total: n},
		rate:     rate,
		total:    n,
		speed:    10,
	}
}

// withVolume scales s linearly. Volume 0 and below is silent.
// math.Log2(0) is -Inf, so silence is a separate flag.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// decay applies an exponential fade and cuts the stream after total samples.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	total    int
	pos      int
	speed    float64 // fade rate per second
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	if d.pos >= d.total {
		return 0, false
	}
	if rest := d.total - d.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		env := math.Exp(-d.speed * float64(d.pos) / float64(d.rate))
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok || n > 0
}

func (d *decay) Err() error { return d.streamer.Err() }

// sweep is a square wave gliding linearly from one frequency to another.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.total)
		val := 0.4
		if s.phase >= 0.5 {
			val = -0.4
		}
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noiseBurst mixes seeded white noise with an 80 Hz rumble under a fast
// attack and an exponential tail.
type noiseBurst struct {
	rate  beep.SampleRate
	total int
	pos   int
	rng   *rand.Rand
	last  float64
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.rate)
		env := math.Exp(-t * 8)

		// One-pole low-pass keeps the crunch from hissing
		noise := b.rng.Float64()*2 - 1
		b.last += 0.3 * (noise - b.last)
		rumble := 0.3 * math.Sin(2*math.Pi*80*t)

		val := env * (0.6*b.last + rumble)
		samples[i][0] = val
		samples[i][1] = val
		b.pos++
	}
	return len(samples), true
}

func (b *noiseBurst) Err() error { return nil }
