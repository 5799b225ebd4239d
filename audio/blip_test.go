package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func drain(s beep.Streamer, chunk int) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, chunk)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n < chunk {
			return out
		}
	}
}

func TestBlipGenerator_Length(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewBlipGenerator(rate, 440, 100*time.Millisecond, 0.5)

	samples := drain(g, 512)
	assert.Equal(t, rate.N(100*time.Millisecond), len(samples))

	n, ok := g.Stream(make([][2]float64, 16))
	assert.Equal(t, 0, n)
	assert.False(t, ok, "exhausted blip must report end of stream")
	assert.NoError(t, g.Err())
}

func TestBlipGenerator_DecaysAndStaysBounded(t *testing.T) {
	rate := beep.SampleRate(48000)
	g := NewBlipGenerator(rate, 523.25, 90*time.Millisecond, 0.12)
	samples := drain(g, 256)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			m = math.Max(m, math.Abs(s[0]))
			assert.Equal(t, s[0], s[1], "mono blip")
		}
		return m
	}

	quarter := len(samples) / 4
	head := peak(0, quarter)
	tail := peak(len(samples)-quarter, len(samples))

	assert.LessOrEqual(t, head, 0.12)
	assert.Greater(t, head, tail*4, "envelope should decay")
}

func TestPitchFor(t *testing.T) {
	assert.Equal(t, pentatonic[0], PitchFor(-1))
	assert.Equal(t, pentatonic[0], PitchFor(0))
	assert.Equal(t, pentatonic[4], PitchFor(4))
	assert.InDelta(t, pentatonic[0]*2, PitchFor(5), 1e-9)
	assert.InDelta(t, pentatonic[1]*4, PitchFor(11), 1e-9)
}
