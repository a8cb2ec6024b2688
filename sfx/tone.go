// Package sfx synthesizes the encounter's sound effects. Clips are generated
// with beep streamers and played either through ebiten's audio context or
// through beep's own speaker.
package sfx

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate matches the ebiten audio context used by the window front end.
const SampleRate = beep.SampleRate(44100)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// tone is a fixed-length oscillator with an optional linear pitch slide.
type tone struct {
	from, to float64
	wave     wave
	rate     beep.SampleRate
	phase    float64
	pos      int
	length   int
	rng      *rand.Rand
}

func newTone(from, to float64, d time.Duration, w wave, rate beep.SampleRate) *tone {
	return &tone{
		from:   from,
		to:     to,
		wave:   w,
		rate:   rate,
		length: rate.N(d),
		rng:    rand.New(rand.NewSource(1)),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case waveSaw:
			v = 2 * (t.phase - 0.5)
		case waveNoise:
			v = t.rng.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// decay fades a streamer linearly to silence over its length after a short
// attack.
type decay struct {
	s      beep.Streamer
	pos    int
	attack int
	length int
}

func newDecay(s beep.Streamer, d, attack time.Duration, rate beep.SampleRate) *decay {
	return &decay{s: s, attack: rate.N(attack), length: max(rate.N(d), 1)}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.pos)/float64(d.length)
		if d.pos < d.attack {
			vol = float64(d.pos) / float64(d.attack)
		}
		vol = max(vol, 0)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

func shaped(from, to float64, d time.Duration, w wave, rate beep.SampleRate) beep.Streamer {
	return newDecay(newTone(from, to, d, w, rate), d, 5*time.Millisecond, rate)
}
