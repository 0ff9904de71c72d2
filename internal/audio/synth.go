package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// sweep is an oscillator whose frequency glides linearly from one value to
// another over its lifetime, shaped by a linear fade-out.
type sweep struct {
	from, to float64
	wave     WaveType
	rate     beep.SampleRate
	length   int
	pos      int
	phase    float64
	noise    *rand.Rand
}

// NewSweep creates a streamer that glides from one frequency to another.
// Noise waves use a fixed seed so every play sounds the same.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:   from,
		to:     to,
		wave:   wave,
		rate:   rate,
		length: rate.N(duration),
		noise:  rand.New(rand.NewSource(1)),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.length {
		return 0, false
	}

	for i := range samples {
		if s.pos >= s.length {
			return i, true
		}

		progress := float64(s.pos) / float64(s.length)

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = s.noise.Float64()*2 - 1
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }
