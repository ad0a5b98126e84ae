// Package audio turns game trigger events into short synthesized tones.
//
// The sink is strictly best-effort: when the host has no audio device the
// speaker init fails and every Handle call becomes a no-op. Remote SSH
// sessions get no sink at all, which the nil-safe methods tolerate.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/blastpong/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond
)

// Sink plays one-shot tones for trigger events through the speaker.
type Sink struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

// NewSink opens the audio device and starts the mixer.
// When the device cannot be opened the sink comes back disabled rather
// than as an error; games must keep running without sound.
func NewSink() *Sink {
	s := &Sink{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return s
	}
	speaker.Play(s.mixer)
	s.enabled = true
	return s
}

// Enabled reports whether the audio device opened successfully.
func (s *Sink) Enabled() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Handle queues the tone for a single trigger event.
// Safe on a nil sink and after Close.
func (s *Sink) Handle(ev core.Event) {
	if s == nil {
		return
	}
	s.mu.Lock()
	enabled := s.enabled
	s.mu.Unlock()
	if !enabled {
		return
	}

	tone := toneFor(ev, sampleRate)
	if tone == nil {
		return
	}

	// The speaker pulls from the mixer on its own goroutine; mutations
	// must happen under the speaker lock.
	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
}

// HandleAll queues tones for every event in the slice, in order.
func (s *Sink) HandleAll(events []core.Event) {
	if s == nil {
		return
	}
	for _, ev := range events {
		s.Handle(ev)
	}
}

// Close silences the mixer and disables the sink. The speaker itself
// stays open because beep has no global shutdown; an empty mixer streams
// silence.
func (s *Sink) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.enabled = false
}
