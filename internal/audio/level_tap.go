package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap wraps a beep.Streamer and records the last N mono samples into a
// ring buffer so the renderer can react to what was just played.
type levelTap struct {
	Source    beep.Streamer
	buffer    []float64
	nextIndex int
	mu        sync.RWMutex
}

func newLevelTap(src beep.Streamer, ringSize int) *levelTap {
	return &levelTap{
		Source: src,
		buffer: make([]float64, ringSize),
	}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = (samples[i][0] + samples[i][1]) * 0.5
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *levelTap) Err() error { return t.Source.Err() }

// rms returns the root mean square of the whole ring.
func (t *levelTap) rms() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.buffer) == 0 {
		return 0
	}
	var sumSquares float64
	for _, v := range t.buffer {
		sumSquares += v * v
	}
	return math.Sqrt(sumSquares / float64(len(t.buffer)))
}
