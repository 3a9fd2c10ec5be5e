package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// levelWindow is how much recent output the level meter averages over.
const levelWindow = 50 * time.Millisecond

// Speaker is the audio-output service. It owns one mixer that is handed to
// the device once; every Play adds a fresh streamer over the current sample,
// so overlapping pops are mixed rather than queued.
type Speaker struct {
	mu     sync.Mutex
	sample *Sample
	mixer  *beep.Mixer
	tap    *levelTap

	lock   func()
	unlock func()
}

// NewSpeaker initializes the audio device at the sample's rate and starts
// streaming silence.
func NewSpeaker(sample *Sample) (*Speaker, error) {
	rate := sample.Format().SampleRate
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	s := newSpeaker(sample, speaker.Lock, speaker.Unlock)
	speaker.Play(s.tap)
	return s, nil
}

func newSpeaker(sample *Sample, lock, unlock func()) *Speaker {
	mixer := &beep.Mixer{}
	rate := sample.Format().SampleRate
	return &Speaker{
		sample: sample,
		mixer:  mixer,
		tap:    newLevelTap(mixer, rate.N(levelWindow)),
		lock:   lock,
		unlock: unlock,
	}
}

// Play starts the current sample and returns immediately.
func (s *Speaker) Play() {
	s.mu.Lock()
	sample := s.sample
	s.mu.Unlock()

	s.lock()
	s.mixer.Add(sample.Streamer())
	s.unlock()
}

// Replace swaps the sample used by later Play calls. Sounds already playing
// are not interrupted.
func (s *Speaker) Replace(sample *Sample) {
	s.mu.Lock()
	s.sample = sample
	s.mu.Unlock()
}

// Level reports the RMS of the most recent output, in [0, 1].
func (s *Speaker) Level() float64 {
	return s.tap.rms()
}

// Stop drops every sound still playing.
func (s *Speaker) Stop() {
	s.lock()
	s.mixer.Clear()
	s.unlock()
}
