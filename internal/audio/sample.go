package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// resampleQuality is passed to beep.Resample when a loaded file's rate
// differs from the output rate.
const resampleQuality = 4

// ErrUnsupportedFormat is returned by LoadFile for unknown extensions.
var ErrUnsupportedFormat = errors.New("unsupported audio file type")

// Sample is a fully decoded sound held in memory, ready to be replayed any
// number of times.
type Sample struct {
	buf *beep.Buffer
}

// NewSample wraps mono 16-bit PCM in a playable buffer.
func NewSample(pcm []int16, rate beep.SampleRate) *Sample {
	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	buf := beep.NewBuffer(format)

	pos := 0
	buf.Append(beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= len(pcm) {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < len(pcm) {
			v := float64(pcm[pos]) / MaxAmplitude
			samples[n][0] = v
			samples[n][1] = v
			n++
			pos++
		}
		return n, true
	}))
	return &Sample{buf: buf}
}

func (s *Sample) Format() beep.Format { return s.buf.Format() }

// Len returns the sample's length in frames.
func (s *Sample) Len() int { return s.buf.Len() }

// Streamer returns a fresh streamer over the whole sample.
func (s *Sample) Streamer() beep.StreamSeeker {
	return s.buf.Streamer(0, s.buf.Len())
}

// SaveWAV writes the sample to path as an uncompressed WAV file, creating
// parent directories as needed.
func (s *Sample) SaveWAV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := wav.Encode(f, s.Streamer(), s.buf.Format()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// LoadFile decodes a wav, mp3 or flac file into memory, resampled to rate.
func LoadFile(path string, rate beep.SampleRate) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	out := beep.Format{SampleRate: rate, NumChannels: format.NumChannels, Precision: format.Precision}
	buf := beep.NewBuffer(out)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Sample{buf: buf}, nil
}
