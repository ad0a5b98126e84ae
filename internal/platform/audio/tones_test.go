package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/blastpong/internal/core"
)

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// drain streams everything a streamer has and returns the samples.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer never drained")
	return nil
}

func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := newOscillator(440.0, 100*time.Millisecond, waveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	// Samples must stay within [-1, 1] on both channels
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][1] != samples[i][0] {
			t.Errorf("Sample %d channels differ: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := newOscillator(220.0, 50*time.Millisecond, waveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	// Square wave only takes the extreme values
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

func TestOscillatorNoiseVaries(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := newOscillator(0, 50*time.Millisecond, waveNoise, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	allSame := true
	for i := 1; i < n; i++ {
		if samples[i][0] != samples[0][0] {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Expected noise samples to vary, but all were the same")
	}
}

func TestOscillatorDrains(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := newOscillator(440.0, duration, waveSine, rate)

	// Request more samples than the duration holds
	samples := make([][2]float64, expected*2)
	n, _ := osc.Stream(samples)

	if n != expected {
		t.Errorf("Expected exactly %d samples, got %d", expected, n)
	}

	// Drained streamer must report 0, false from now on
	n2, ok2 := osc.Stream(samples)
	if n2 != 0 || ok2 {
		t.Errorf("Expected (0, false) after drain, got (%d, %v)", n2, ok2)
	}
}

func TestEnvelopeAttack(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond

	// Square wave gives constant amplitude so only the envelope shows
	osc := newOscillator(100.0, duration, waveSquare, rate)
	env := newEnvelope(osc, duration, attack, 10*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(attack))
	n, ok := env.Stream(samples)

	if !ok {
		t.Error("Expected envelope to stream successfully")
	}

	first := abs(samples[0][0])
	last := abs(samples[n-1][0])
	if first >= last {
		t.Errorf("Expected attack to ramp up, but first=%f >= last=%f", first, last)
	}
}

func TestEnvelopeRelease(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 60 * time.Millisecond

	osc := newOscillator(100.0, duration, waveSquare, rate)
	env := newEnvelope(osc, duration, 2*time.Millisecond, 30*time.Millisecond, rate)

	all := drain(t, env)
	if len(all) != rate.N(duration) {
		t.Fatalf("Expected %d samples, got %d", rate.N(duration), len(all))
	}

	// The tail must fade towards zero
	tail := abs(all[len(all)-1][0])
	mid := abs(all[len(all)/2][0])
	if tail > 0.01 {
		t.Errorf("Expected final sample near zero, got %f", tail)
	}
	if mid == 0 {
		t.Error("Expected mid-tone samples to be audible")
	}
}

func TestWithVolumeZeroIsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := newOscillator(440.0, 20*time.Millisecond, waveSine, rate)
	vol := withVolume(osc, 0)

	samples := make([][2]float64, 100)
	n, ok := vol.Stream(samples)

	if !ok || n == 0 {
		t.Fatal("Expected silent volume to still stream samples")
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Errorf("Expected silence, got %f at sample %d", samples[i][0], i)
			break
		}
	}
}

func TestToneForCoversEvents(t *testing.T) {
	rate := beep.SampleRate(44100)

	events := []core.Event{
		core.EventPaddleHit,
		core.EventWallBounce,
		core.EventScore,
		core.EventGameStart,
		core.EventGamePause,
		core.EventGameOver,
		core.EventAmmoEmpty,
		core.EventItemSpawned,
		core.EventItemCollected,
		core.EventBulletFired,
		core.EventBulletImpact,
		core.EventPaddleDamaged,
		core.EventFootstep,
	}

	for _, ev := range events {
		t.Run(ev.String(), func(t *testing.T) {
			tone := toneFor(ev, rate)
			if tone == nil {
				t.Fatalf("Expected a tone for %v", ev)
			}

			all := drain(t, tone)
			if len(all) == 0 {
				t.Fatal("Expected the tone to produce samples")
			}

			// Tones stay well below full scale
			for i, smp := range all {
				if abs(smp[0]) > masterVolume+0.01 {
					t.Errorf("Sample %d exceeds master volume: %f", i, smp[0])
					break
				}
			}
		})
	}
}

func TestToneForNone(t *testing.T) {
	if tone := toneFor(core.EventNone, beep.SampleRate(44100)); tone != nil {
		t.Error("Expected no tone for EventNone")
	}
}

func TestNilSinkIsSafe(t *testing.T) {
	var s *Sink

	// All of these must be no-ops, not panics
	s.Handle(core.EventPaddleHit)
	s.HandleAll([]core.Event{core.EventScore, core.EventGameOver})
	s.Close()

	if s.Enabled() {
		t.Error("Nil sink should report disabled")
	}
}

func TestDisabledSinkIgnoresEvents(t *testing.T) {
	// A sink that never initialized the speaker must swallow events
	s := &Sink{mixer: &beep.Mixer{}}

	s.Handle(core.EventScore)
	s.HandleAll([]core.Event{core.EventPaddleHit})
	s.Close()

	if s.Enabled() {
		t.Error("Uninitialized sink should report disabled")
	}
}
