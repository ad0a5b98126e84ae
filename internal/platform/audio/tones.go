package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/blastpong/internal/core"
)

// masterVolume scales every tone so the effects sit under normal
// terminal bell loudness.
const masterVolume = 0.25

// waveShape selects the oscillator waveform.
type waveShape int

const (
	waveSine waveShape = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveShape
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave waveShape, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a streamer so tones
// start and stop without clicks.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a streamer. math.Log2(0) is -Inf, so zero or
// negative volume switches the effect to silent instead.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a single enveloped tone at the given frequency.
func note(freq float64, d time.Duration, wave waveShape, vol float64, rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(freq, d, wave, rate)
	shaped := newEnvelope(osc, d, 4*time.Millisecond, d/2, rate)
	return withVolume(shaped, vol*masterVolume)
}

// chime plays two notes in sequence, used for score and start jingles.
func chime(f1, f2 float64, wave waveShape, rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(f1, 90*time.Millisecond, wave, 0.5, rate),
		note(f2, 130*time.Millisecond, wave, 0.5, rate),
	)
}

// bell mixes a fundamental with its octave overtone for pickups.
func bell(rate beep.SampleRate) beep.Streamer {
	d := 140 * time.Millisecond
	return beep.Mix(
		note(880.00, d, waveSine, 0.45, rate),
		note(1760.00, d, waveSine, 0.20, rate),
	)
}

// thud is a shaped noise hit for impacts and footsteps.
func thud(d time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(0, d, waveNoise, rate)
	shaped := newEnvelope(osc, d, 2*time.Millisecond, d*3/4, rate)
	return withVolume(shaped, vol*masterVolume)
}

// toneFor builds the one-shot streamer for a trigger event.
// Events without a sound return nil.
func toneFor(ev core.Event, rate beep.SampleRate) beep.Streamer {
	switch ev {
	case core.EventPaddleHit:
		return note(440.00, 60*time.Millisecond, waveSquare, 0.5, rate)
	case core.EventWallBounce:
		return note(220.00, 50*time.Millisecond, waveSquare, 0.4, rate)
	case core.EventScore:
		return chime(523.25, 783.99, waveSquare, rate) // C5 -> G5
	case core.EventGameStart:
		return chime(392.00, 587.33, waveSine, rate) // G4 -> D5
	case core.EventGamePause:
		return note(330.00, 80*time.Millisecond, waveSine, 0.4, rate)
	case core.EventGameOver:
		return chime(392.00, 196.00, waveSaw, rate) // G4 -> G3, falling
	case core.EventAmmoEmpty:
		return note(110.00, 120*time.Millisecond, waveSaw, 0.5, rate)
	case core.EventItemSpawned:
		return note(880.00, 70*time.Millisecond, waveSine, 0.35, rate)
	case core.EventItemCollected:
		return bell(rate)
	case core.EventBulletFired:
		return note(987.77, 40*time.Millisecond, waveSquare, 0.3, rate) // B5 pew
	case core.EventBulletImpact:
		return thud(60*time.Millisecond, 0.5, rate)
	case core.EventPaddleDamaged:
		return note(146.83, 100*time.Millisecond, waveSaw, 0.5, rate) // D3 crunch
	case core.EventFootstep:
		return thud(18*time.Millisecond, 0.15, rate)
	default:
		return nil
	}
}
