package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BlipGenerator is a sine tone with an exponential decay envelope
// Streams exactly total samples then reports exhaustion
type BlipGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	decay  float64 // envelope time constant in seconds
	pos    int
	total  int
}

// NewBlipGenerator creates a blip of the given frequency and duration
func NewBlipGenerator(sr beep.SampleRate, freq float64, duration time.Duration, volume float64) *BlipGenerator {
	total := sr.N(duration)
	return &BlipGenerator{
		sr:     sr,
		freq:   freq,
		volume: volume,
		decay:  duration.Seconds() / 5,
		total:  total,
	}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		// Short linear attack avoids a click at onset
		attack := math.Min(t/0.002, 1.0)
		env := attack * math.Exp(-t/g.decay)
		sample := g.volume * env * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// pentatonic is a major pentatonic scale starting at C5
var pentatonic = [...]float64{523.25, 587.33, 659.25, 783.99, 880.00}

// PitchFor maps a palette index to a note; unknown colors (-1) get the root
// Indices past the scale climb by octaves
func PitchFor(index int) float64 {
	if index < 0 {
		return pentatonic[0]
	}
	octave := index / len(pentatonic)
	return pentatonic[index%len(pentatonic)] * math.Pow(2, float64(octave%3))
}
